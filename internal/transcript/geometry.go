package transcript

import (
	"strings"

	"cleanchat/internal/linewrap"
	"cleanchat/internal/textmetrics"
	"cleanchat/internal/types"
)

// Offsets tuned against the host font. Friends chat tags carry the sender
// inside the tag element, which shifts every measurement by a few pixels.
const (
	removedPrefixOffset       = -2
	removedPrefixOffsetFriend = 1
	channelOffset             = 1
	channelOffsetFriend       = 4
	nameClosingOffset         = 4
	nameClosingOffsetFriend   = -4
)

// pixelsPerSpace converts an indent in pixels to prepended spaces. It is the
// width of one space, so the first line stays within two pixels of where
// the host put it.
const pixelsPerSpace = 3

// Indent computes the wrapped-line indent of a matched group from the
// pre-shift geometry and prepends it to the message as spaces.
func Indent(g *Group, mode types.IndentMode) {
	g.IndentWidth = 0
	g.IndentSpaces = 0
	if !g.Matched() || g.Message == nil {
		return
	}

	friends := g.Category == types.CategoryFriendsChat
	prefixWidth, bracketWidth := g.measureTag()
	indent := 0

	if mode.Rank() <= types.IndentModeStart.Rank() {
		indent += prefixWidth
		if g.Removed {
			if friends {
				indent += removedPrefixOffsetFriend
			} else {
				indent += removedPrefixOffset
			}
		}
	}
	if mode.Rank() <= types.IndentModeChannel.Rank() && !g.Removed {
		indent += bracketWidth
		if friends {
			indent += channelOffsetFriend
		} else {
			indent += channelOffset
		}
	}
	if mode.Rank() <= types.IndentModeName.Rank() {
		indent += g.nameWidth(friends, prefixWidth, bracketWidth)
		if indent > 0 {
			if friends {
				indent += nameClosingOffsetFriend
			} else {
				indent += nameClosingOffset
			}
		}
	}

	if indent <= 0 {
		return
	}
	g.IndentWidth = indent
	g.IndentSpaces = indent / pixelsPerSpace
	if g.IndentSpaces <= 0 {
		return
	}
	g.Message.Text = textmetrics.Spaces(g.IndentSpaces) + g.Message.Text
	g.Message.X -= indent
	g.Message.Width += indent
}

// measureTag returns the width of the tag text before the bracketed channel
// and the width of the bracketed channel itself.
func (g *Group) measureTag() (prefix, bracket int) {
	if g.bracket == "" {
		return 0, 0
	}
	bracket = textmetrics.Width(g.bracket)
	if i := strings.Index(g.tagText, g.bracket); i > 0 {
		prefix = textmetrics.Width(g.tagText[:i])
	}
	return prefix, bracket
}

func (g *Group) nameWidth(friends bool, prefixWidth, bracketWidth int) int {
	width := 0
	switch {
	case friends:
		if g.Message != nil && g.Tag != nil {
			width = (g.Message.X - g.Tag.X) - prefixWidth - bracketWidth
			if g.Removed && g.RemovedWidth > bracketWidth {
				// Collapsed spacing moves the message closer once shifted.
				width -= g.RemovedWidth - bracketWidth
			}
		}
	case g.Name != nil && g.Name.Text != "" && !g.Name.Hidden:
		width = g.Name.Width
	}
	if g.Rank != nil && !g.Rank.Hidden {
		width += g.Rank.Width
	}
	return width
}

// Shift moves the non-tag slots left by the reclaimed tag width and hands
// that width to the message.
func Shift(g *Group) {
	if g.RemovedWidth == 0 {
		return
	}
	for _, el := range []*types.Element{g.Rank, g.Name, g.Message} {
		if el != nil {
			el.X -= g.RemovedWidth
		}
	}
	if g.Message != nil {
		g.Message.Width += g.RemovedWidth
	}
	if g.Tag != nil {
		g.Tag.Width -= g.RemovedWidth
	}
}

// Measure recomputes the message and click target height from the wrapped
// line count.
func Measure(g *Group) {
	if g.Message == nil || g.Message.Text == "" || g.Message.Width <= 0 {
		return
	}
	indentPx := textmetrics.Width(textmetrics.Spaces(g.IndentSpaces))
	height := linewrap.LineCount(g.Message.Text, g.Message.Width, indentPx) * textmetrics.LineHeight
	g.Message.Height = height
	if g.ClickTarget != nil {
		g.ClickTarget.Height = height
	}
}

// Layout runs indent, shift and measure on every group in decode order.
func Layout(groups []*Group, mode types.IndentMode) {
	for _, g := range groups {
		if g.Blocked {
			continue
		}
		Indent(g, mode)
		Shift(g)
		Measure(g)
	}
}
