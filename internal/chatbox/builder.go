// Package chatbox builds snapshots laid out the way the host lays out its
// chat log before any cleaning.
package chatbox

import (
	"cleanchat/internal/linewrap"
	"cleanchat/internal/textmetrics"
	"cleanchat/internal/types"
)

const (
	DefaultWidth       = 486
	DefaultHeight      = 114
	DefaultTrackHeight = 114
	RankIconWidth      = textmetrics.IconWidth
)

type lineKind int

const (
	kindNormal lineKind = iota
	kindBroadcast
	kindNotice
	kindOrphan
)

type line struct {
	kind    lineKind
	tag     string
	rank    bool
	name    string
	message string
}

// Builder collects chat lines oldest first.
type Builder struct {
	width       int
	height      int
	trackHeight int
	scrollY     int
	padding     int
	lines       []line
}

func NewBuilder() *Builder {
	return &Builder{
		width:       DefaultWidth,
		height:      DefaultHeight,
		trackHeight: DefaultTrackHeight,
	}
}

func (b *Builder) Size(width, height int) *Builder {
	b.width = width
	b.height = height
	return b
}

func (b *Builder) TrackHeight(height int) *Builder {
	b.trackHeight = height
	return b
}

func (b *Builder) ScrollY(y int) *Builder {
	b.scrollY = y
	return b
}

// EmptyGroups appends that many unused element groups after the log, like
// the host's preallocated children.
func (b *Builder) EmptyGroups(n int) *Builder {
	b.padding = n
	return b
}

// Chat adds a regular line: tag (timestamp and channel), optional rank icon,
// sender name and message.
func (b *Builder) Chat(tag string, rank bool, name, message string) *Builder {
	b.lines = append(b.lines, line{kind: kindNormal, tag: tag, rank: rank, name: name, message: message})
	return b
}

// Broadcast adds a line whose tag sits in the first element of its group,
// as friends chat messages and group broadcasts do.
func (b *Builder) Broadcast(tag, message string) *Builder {
	b.lines = append(b.lines, line{kind: kindBroadcast, tag: tag, message: message})
	return b
}

// Notice adds a system line whose whole text sits in the first element.
func (b *Builder) Notice(text string) *Builder {
	b.lines = append(b.lines, line{kind: kindNotice, message: text})
	return b
}

// Orphan adds a line with only a message, as broadcasts look right after a
// world hop.
func (b *Builder) Orphan(message string) *Builder {
	b.lines = append(b.lines, line{kind: kindOrphan, message: message})
	return b
}

func (b *Builder) Len() int {
	return len(b.lines)
}

// Snapshot lays the lines out newest first, four elements per line, and
// stacks them the way the host does.
func (b *Builder) Snapshot() types.Snapshot {
	total := len(b.lines) + b.padding
	elements := make([]types.Element, 0, total*4)
	clicks := make([]types.Element, 0, total)
	heights := make([]int, 0, len(b.lines))

	for i := len(b.lines) - 1; i >= 0; i-- {
		group, click := b.layout(b.lines[i])
		elements = append(elements, group[:]...)
		clicks = append(clicks, click)
		heights = append(heights, click.Height)
	}
	for i := 0; i < b.padding; i++ {
		var empty [4]types.Element
		for j := range empty {
			empty[j].Hidden = true
		}
		elements = append(elements, empty[:]...)
		clicks = append(clicks, types.Element{Hidden: true})
	}

	scrollHeight := stackHost(elements, clicks, heights, b.height)
	return types.Snapshot{
		Container: &types.Container{
			Height:       b.height,
			ScrollY:      b.scrollY,
			ScrollHeight: scrollHeight,
		},
		Scrollbar:    types.ScrollbarTrack{Height: b.trackHeight},
		Lines:        elements,
		ClickTargets: clicks,
	}
}

func (b *Builder) layout(l line) ([4]types.Element, types.Element) {
	var g [4]types.Element
	const (
		name = iota
		message
		tag
		rank
	)
	for i := range g {
		g[i].Hidden = true
	}

	switch l.kind {
	case kindNormal:
		x := 0
		g[tag] = types.Element{Text: l.tag, X: x, Width: textmetrics.Width(l.tag)}
		x += g[tag].Width
		g[rank] = types.Element{X: x, Hidden: !l.rank}
		if l.rank {
			g[rank].Width = RankIconWidth
			x += RankIconWidth
		}
		g[name] = types.Element{Text: l.name, X: x, Width: textmetrics.Width(l.name), Hidden: l.name == ""}
		x += g[name].Width
		g[message] = b.messageBox(l.message, x)
	case kindBroadcast:
		g[name] = types.Element{Text: l.tag, Width: textmetrics.Width(l.tag)}
		g[message] = b.messageBox(l.message, g[name].Width)
	case kindNotice:
		g[name] = b.messageBox(l.message, 0)
	case kindOrphan:
		g[message] = b.messageBox(l.message, 0)
	}

	height := 0
	for _, el := range g {
		if el.Height > height {
			height = el.Height
		}
	}
	if height == 0 {
		height = textmetrics.LineHeight
	}
	for i := range g {
		g[i].Height = height
	}
	click := types.Element{Width: b.width, Height: height}
	return g, click
}

func (b *Builder) messageBox(text string, x int) types.Element {
	width := b.width - x
	if width < 0 {
		width = 0
	}
	lines := linewrap.LineCount(text, width, 0)
	return types.Element{Text: text, X: x, Width: width, Height: lines * textmetrics.LineHeight}
}

func stackHost(elements, clicks []types.Element, heights []int, containerHeight int) int {
	total := 0
	for _, h := range heights {
		total += h
	}
	y := 0
	if total < containerHeight {
		y = containerHeight - total - 2
	}
	for i := len(heights) - 1; i >= 0; i-- {
		for j := 0; j < 4; j++ {
			elements[i*4+j].Y = y
		}
		clicks[i].Y = y
		y += heights[i]
	}
	if total >= containerHeight {
		y += 2
	}
	if y < containerHeight {
		y = containerHeight
	}
	return y
}
