package transcript

import (
	"regexp"
	"strings"

	"cleanchat/internal/blocking"
	"cleanchat/internal/channels"
	"cleanchat/internal/markup"
	"cleanchat/internal/textmetrics"
	"cleanchat/internal/types"
)

// Editor matches group tags against tracked channels and rewrites them
// under policy. One editor serves one pass.
type Editor struct {
	policy    types.Policy
	names     channels.NameSource
	blocker   *blocking.Blocker
	tab       types.ChatTab
	behaviors []channels.Behavior
	patterns  map[string]*regexp.Regexp
}

func NewEditor(policy types.Policy, names channels.NameSource, blocker *blocking.Blocker, tab types.ChatTab) *Editor {
	return &Editor{
		policy:    policy,
		names:     names,
		blocker:   blocker,
		tab:       tab,
		behaviors: channels.Behaviors(),
		patterns:  map[string]*regexp.Regexp{},
	}
}

// Edit applies literal blocking and channel tag handling to g.
func (e *Editor) Edit(g *Group) {
	if e.blocker.Blocks(textOf(g.Message), textOf(g.Name)) {
		g.Blocked = true
		return
	}
	if g.Tag == nil || g.Tag.Text == "" {
		return
	}
	tagText := plainText(g.Tag.Text)
	behavior, name, ok := e.match(tagText)
	if !ok {
		return
	}
	g.Category = behavior.Category
	g.MatchedName = name
	g.tagText = tagText
	g.bracket = markup.Brackets(name)

	if behavior.Suppressed(e.policy, e.tab) {
		g.Blocked = true
		return
	}
	if behavior.Enabled(e.policy) {
		e.remove(g, name)
		return
	}
	if substitute, ok := channels.ExpandSubstitute(behavior.Substitute(e.policy), name); ok {
		e.substitute(g, name, substitute)
	}
}

func (e *Editor) match(tagText string) (channels.Behavior, string, bool) {
	for _, behavior := range e.behaviors {
		for _, name := range behavior.Names(e.names) {
			if name != "" && strings.Contains(tagText, markup.Brackets(name)) {
				return behavior, name, true
			}
		}
	}
	return channels.Behavior{}, "", false
}

func (e *Editor) pattern(name string) *regexp.Regexp {
	if p, ok := e.patterns[name]; ok {
		return p
	}
	p := markup.ChannelPattern(name)
	e.patterns[name] = p
	return p
}

// remove deletes the first bracketed name from the tag. One trailing space
// left behind and one doubled space are collapsed, each costing one space.
func (e *Editor) remove(g *Group, name string) {
	text := g.Tag.Text
	loc := e.pattern(name).FindStringIndex(text)
	if loc == nil {
		return
	}
	text = text[:loc[0]] + text[loc[1]:]
	removed := textmetrics.Width(markup.Brackets(name))

	if trimmed, ok := cutTrailingSpace(text); ok {
		text = trimmed
		removed += textmetrics.SpaceWidth()
	}
	if i := strings.Index(text, "  "); i >= 0 {
		text = text[:i] + text[i+1:]
		removed += textmetrics.SpaceWidth()
	}

	g.Tag.Text = text
	g.Removed = true
	g.RemovedWidth = clampRemoved(removed, g.Tag.Width)
}

// substitute swaps the bracketed name for the expanded substitute. The width
// difference is reclaimed like a removal and may be negative.
func (e *Editor) substitute(g *Group, name, replacement string) {
	text := g.Tag.Text
	loc := e.pattern(name).FindStringIndex(text)
	if loc == nil {
		return
	}
	updated := text[:loc[0]] + markup.Brackets(replacement) + text[loc[1]:]
	delta := textmetrics.Width(text) - textmetrics.Width(updated)

	g.Tag.Text = updated
	g.Substituted = true
	g.RemovedWidth = clampRemoved(delta, g.Tag.Width)
	g.tagText = plainText(updated)
	g.bracket = markup.Brackets(plainText(replacement))
}

func cutTrailingSpace(text string) (string, bool) {
	if trimmed, ok := strings.CutSuffix(text, " "); ok {
		return trimmed, true
	}
	return strings.CutSuffix(text, "\u00a0")
}

func clampRemoved(removed, tagWidth int) int {
	if tagWidth < 0 {
		tagWidth = 0
	}
	if removed > tagWidth {
		return tagWidth
	}
	return removed
}
