package engine

import (
	"cleanchat/internal/scrollbar"
	"cleanchat/internal/transcript"
	"cleanchat/internal/types"
)

const (
	ReasonNoContainer = "no_container"
	ReasonClosed      = "chat_closed"
	ReasonInert       = "inert_policy"
)

// Result is the outcome of one pass. ScrollY doubles as the value written
// back to the host's scroll position variable.
type Result struct {
	Tab          types.ChatTab      `json:"tab" yaml:"tab"`
	Skipped      bool               `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Reason       string             `json:"reason,omitempty" yaml:"reason,omitempty"`
	Mutations    []types.Mutation   `json:"mutations" yaml:"mutations"`
	ScrollHeight int                `json:"scroll_height" yaml:"scroll_height"`
	ScrollY      int                `json:"scroll_y" yaml:"scroll_y"`
	Scrollbar    scrollbar.Geometry `json:"scrollbar" yaml:"scrollbar"`
	State        scrollbar.State    `json:"state" yaml:"state"`
	Groups       []GroupSummary     `json:"groups,omitempty" yaml:"groups,omitempty"`
	Stats        Stats              `json:"stats" yaml:"stats"`
	Snapshot     types.Snapshot     `json:"-" yaml:"-"`
}

// GroupSummary describes one decoded line after the pass, in decode order.
type GroupSummary struct {
	Cursor       int            `json:"cursor" yaml:"cursor"`
	Dialect      string         `json:"dialect" yaml:"dialect"`
	Category     types.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Channel      string         `json:"channel,omitempty" yaml:"channel,omitempty"`
	Removed      bool           `json:"removed,omitempty" yaml:"removed,omitempty"`
	Substituted  bool           `json:"substituted,omitempty" yaml:"substituted,omitempty"`
	Blocked      bool           `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	RemovedWidth int            `json:"removed_width,omitempty" yaml:"removed_width,omitempty"`
	IndentSpaces int            `json:"indent_spaces,omitempty" yaml:"indent_spaces,omitempty"`
	Y            int            `json:"y" yaml:"y"`
	Height       int            `json:"height" yaml:"height"`
	Text         string         `json:"text" yaml:"text"`
}

type Stats struct {
	Groups  int `json:"groups" yaml:"groups"`
	Matched int `json:"matched" yaml:"matched"`
	Edited  int `json:"edited" yaml:"edited"`
	Hidden  int `json:"hidden" yaml:"hidden"`
}

func (r Result) skip(reason string, state scrollbar.State) Result {
	r.Skipped = true
	r.Reason = reason
	r.State = state
	if c := r.Snapshot.Container; c != nil {
		r.ScrollHeight = c.ScrollHeight
		r.ScrollY = c.ScrollY
	}
	return r
}

// Visible returns the summaries of groups left on screen, oldest first.
func (r Result) Visible() []GroupSummary {
	out := make([]GroupSummary, 0, len(r.Groups))
	for i := len(r.Groups) - 1; i >= 0; i-- {
		if r.Groups[i].Blocked {
			continue
		}
		out = append(out, r.Groups[i])
	}
	return out
}

func summarize(groups []*transcript.Group) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summary := GroupSummary{
			Cursor:       g.Cursor,
			Dialect:      g.Dialect.String(),
			Category:     g.Category,
			Channel:      g.MatchedName,
			Removed:      g.Removed,
			Substituted:  g.Substituted,
			Blocked:      g.Blocked,
			RemovedWidth: g.RemovedWidth,
			IndentSpaces: g.IndentSpaces,
			Height:       g.MessageHeight(),
		}
		if g.Message != nil {
			summary.Y = g.Message.Y
		}
		if !g.Blocked {
			summary.Text = g.Text()
		}
		out = append(out, summary)
	}
	return out
}

func tally(groups []GroupSummary) Stats {
	stats := Stats{Groups: len(groups)}
	for _, g := range groups {
		if g.Category != "" {
			stats.Matched++
		}
		if g.Removed || g.Substituted {
			stats.Edited++
		}
		if g.Blocked {
			stats.Hidden++
		}
	}
	return stats
}

// ApplyMutations returns a copy of snapshot with mutations written over it.
// References outside the snapshot are ignored.
func ApplyMutations(snapshot types.Snapshot, mutations []types.Mutation) types.Snapshot {
	out := types.CloneSnapshot(snapshot)
	for _, m := range mutations {
		var elements []types.Element
		switch m.Target.Kind {
		case types.ElementKindLine:
			elements = out.Lines
		case types.ElementKindClickTarget:
			elements = out.ClickTargets
		}
		if m.Target.Index < 0 || m.Target.Index >= len(elements) {
			continue
		}
		elements[m.Target.Index] = m.Apply(elements[m.Target.Index])
	}
	return out
}
