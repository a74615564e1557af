package transcript

import (
	"cleanchat/internal/blocking"
	"cleanchat/internal/markup"
	"cleanchat/internal/types"
)

// Decode walks lines in strides of four starting at offset two and returns
// one group per populated position, in array order. The scan ends at the
// first position whose tag, name and message slots are all empty.
func Decode(lines, clickTargets []types.Element) []*Group {
	var groups []*Group
	for cursor := 2; cursor < len(lines); cursor += Stride {
		tag := textAt(lines, cursor)
		name := textAt(lines, cursor-2)
		message := textAt(lines, cursor-1)
		if tag == "" && name == "" && message == "" {
			break
		}

		dialect := resolveDialect(tag, name, message)
		idx := slotIndexes(cursor, dialect)
		g := &Group{
			Cursor:           cursor,
			Dialect:          dialect,
			Indexes:          idx,
			ClickTargetIndex: (cursor - 2) / Stride,
		}
		g.Tag = at(lines, idx[SlotTag])
		g.Rank = at(lines, idx[SlotRank])
		g.Name = at(lines, idx[SlotName])
		g.Message = at(lines, idx[SlotMessage])
		g.ClickTarget = at(clickTargets, g.ClickTargetIndex)
		groups = append(groups, g)
	}
	return groups
}

// resolveDialect applies only when the tag slot is empty and the name slot
// is not. An empty message or the clan instruction in the message slot marks
// a friends chat line. Anything else is a broadcast.
func resolveDialect(tag, name, message string) Dialect {
	if tag != "" || name == "" {
		return DialectNormal
	}
	if message == "" || markup.RemoveTags(message) == blocking.ClanInstruction {
		return DialectNamePrefixed
	}
	return DialectBroadcast
}

func slotIndexes(cursor int, dialect Dialect) [4]int {
	idx := [4]int{
		SlotTag:     cursor,
		SlotRank:    cursor + 1,
		SlotName:    cursor - 2,
		SlotMessage: cursor - 1,
	}
	switch dialect {
	case DialectNamePrefixed:
		idx[SlotMessage] = cursor - 2
		idx[SlotName] = cursor - 1
	case DialectBroadcast:
		idx[SlotTag] = cursor - 2
		idx[SlotName] = cursor
	}
	return idx
}

func at(elements []types.Element, i int) *types.Element {
	if i < 0 || i >= len(elements) {
		return nil
	}
	return &elements[i]
}

func textAt(elements []types.Element, i int) string {
	return textOf(at(elements, i))
}
