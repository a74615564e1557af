// Package transcript decodes the host's flat chat element array into logical
// lines and rewrites their text and geometry.
package transcript

import (
	"strings"

	"cleanchat/internal/markup"
	"cleanchat/internal/types"
)

// Stride is the number of line elements the host spends on one chat line.
const Stride = 4

// Dialect names the slot layout the host used for a line.
type Dialect int

const (
	// DialectNormal: name, message, tag, rank.
	DialectNormal Dialect = iota
	// DialectNamePrefixed: a friends chat notice whose whole text sits in the
	// name slot. Message and name roles swap.
	DialectNamePrefixed
	// DialectBroadcast: the channel tag sits in the name slot and the tag
	// slot holds the (empty) name. Friends chat messages, which pack channel
	// and sender into one element, and group broadcasts use it.
	DialectBroadcast
)

func (d Dialect) String() string {
	switch d {
	case DialectNamePrefixed:
		return "name_prefixed"
	case DialectBroadcast:
		return "broadcast"
	default:
		return "normal"
	}
}

type Slot int

const (
	SlotTag Slot = iota
	SlotRank
	SlotName
	SlotMessage
)

// Group is one decoded chat line. Element pointers refer into the working
// copy of the snapshot and are nil when the computed index is out of range.
type Group struct {
	Cursor  int
	Dialect Dialect

	Tag         *types.Element
	Rank        *types.Element
	Name        *types.Element
	Message     *types.Element
	ClickTarget *types.Element

	Indexes          [4]int
	ClickTargetIndex int

	Category     types.Category
	MatchedName  string
	Removed      bool
	Substituted  bool
	RemovedWidth int
	IndentWidth  int
	IndentSpaces int
	Blocked      bool

	// tagText is the unmarked tag text indent offsets are measured against
	// and bracket is the bracketed channel as it appears in it.
	tagText string
	bracket string
}

func (g *Group) Matched() bool {
	return g.Category != ""
}

func (g *Group) Index(slot Slot) int {
	return g.Indexes[slot]
}

func (g *Group) elements() []*types.Element {
	out := make([]*types.Element, 0, 5)
	for _, el := range []*types.Element{g.Tag, g.Rank, g.Name, g.Message, g.ClickTarget} {
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}

// MessageHeight is the vertical space the group takes in the stack.
func (g *Group) MessageHeight() int {
	if g.Message == nil {
		return 0
	}
	return g.Message.Height
}

func (g *Group) place(y int) {
	for _, el := range g.elements() {
		el.Y = y
	}
}

func (g *Group) hide() {
	for _, el := range g.elements() {
		el.Hidden = true
		el.Y = 0
	}
}

// Text returns the display text of the group with markers removed, in the
// host's visual order.
func (g *Group) Text() string {
	parts := make([]string, 0, 3)
	for _, el := range []*types.Element{g.Tag, g.Name, g.Message} {
		if el == nil || el.Hidden {
			continue
		}
		if text := strings.TrimSpace(markup.RemoveTags(el.Text)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func textOf(el *types.Element) string {
	if el == nil {
		return ""
	}
	return el.Text
}

func plainText(text string) string {
	return markup.Plain.Sanitize(text)
}
