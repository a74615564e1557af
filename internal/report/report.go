// Package report describes rebuild passes for people: a markdown summary of
// what a pass did and a unified diff of the transcript it changed.
package report

import (
	"fmt"
	"strings"

	"cleanchat/internal/engine"
	"cleanchat/internal/transcript"
	"cleanchat/internal/types"

	"github.com/pmezard/go-difflib/difflib"
)

// Transcript returns the visible chat lines of snapshot, oldest first.
func Transcript(snapshot types.Snapshot) []string {
	working := types.CloneSnapshot(snapshot)
	groups := transcript.Decode(working.Lines, working.ClickTargets)
	out := make([]string, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		if text := groups[i].Text(); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// Diff is a unified diff between the transcript the host drew and the one
// left after the pass. It is empty when nothing visible changed.
func Diff(name string, before, after types.Snapshot) (string, error) {
	if name == "" {
		name = "snapshot"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(joinLines(Transcript(before))),
		B:        difflib.SplitLines(joinLines(Transcript(after))),
		FromFile: name + " (host)",
		ToFile:   name + " (cleaned)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Summary writes a markdown account of one pass.
func Summary(name string, result engine.Result) string {
	var b strings.Builder
	if name == "" {
		name = "snapshot"
	}
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(name))
	if result.Skipped {
		fmt.Fprintf(&b, "Pass skipped on tab **%s**: %s.\n", result.Tab, strings.ReplaceAll(result.Reason, "_", " "))
		return b.String()
	}

	b.WriteString("| tab | lines | matched | edited | hidden | mutations |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d |\n\n",
		result.Tab, result.Stats.Groups, result.Stats.Matched, result.Stats.Edited, result.Stats.Hidden, len(result.Mutations))

	geo := result.Scrollbar
	fmt.Fprintf(&b, "Scroll height **%d**, offset **%d**", result.ScrollHeight, result.ScrollY)
	if geo.Restored {
		b.WriteString(" (restored)")
	}
	fmt.Fprintf(&b, ", thumb %dpx at y=%d.\n", geo.ThumbHeight, geo.ThumbY)

	edited := make([]engine.GroupSummary, 0, len(result.Groups))
	for _, g := range result.Groups {
		if g.Removed || g.Substituted || g.Blocked {
			edited = append(edited, g)
		}
	}
	if len(edited) == 0 {
		return b.String()
	}
	b.WriteString("\n## Changes\n\n")
	for _, g := range edited {
		switch {
		case g.Blocked:
			fmt.Fprintf(&b, "- hidden line at slot %d", g.Cursor)
			if g.Category != "" {
				fmt.Fprintf(&b, " (%s)", g.Category)
			}
			b.WriteString("\n")
		case g.Removed:
			fmt.Fprintf(&b, "- removed %s from slot %d, %dpx reclaimed: %s\n",
				escapeMarkdown(g.Channel), g.Cursor, g.RemovedWidth, escapeMarkdown(g.Text))
		case g.Substituted:
			fmt.Fprintf(&b, "- substituted %s at slot %d: %s\n",
				escapeMarkdown(g.Channel), g.Cursor, escapeMarkdown(g.Text))
		}
	}
	return b.String()
}
