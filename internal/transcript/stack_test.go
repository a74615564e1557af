package transcript

import (
	"testing"

	"cleanchat/internal/types"
)

func stackGroups(heights ...int) []*Group {
	groups := make([]*Group, 0, len(heights))
	for _, h := range heights {
		groups = append(groups, &Group{
			Tag:         &types.Element{},
			Rank:        &types.Element{},
			Name:        &types.Element{},
			Message:     &types.Element{Height: h},
			ClickTarget: &types.Element{Height: h},
		})
	}
	return groups
}

func TestStackOverflowStartsAtTop(t *testing.T) {
	groups := stackGroups(28, 14, 42, 14, 28)
	scrollHeight := Stack(groups, 100)

	if scrollHeight != 126+StackPadding {
		t.Fatalf("scroll height = %d, want %d", scrollHeight, 126+StackPadding)
	}
	// oldest line (last in decode order) sits at the top
	if groups[4].Message.Y != 0 {
		t.Fatalf("expected oldest line at y=0, got %d", groups[4].Message.Y)
	}
	if groups[0].Message.Y != 126-28 {
		t.Fatalf("expected newest line at the bottom, got %d", groups[0].Message.Y)
	}
	for _, g := range groups {
		if g.Tag.Y != g.Message.Y || g.ClickTarget.Y != g.Message.Y {
			t.Fatalf("group elements not aligned: %#v", g)
		}
	}
}

func TestStackUnderflowEndsAtBottom(t *testing.T) {
	groups := stackGroups(14, 28)
	scrollHeight := Stack(groups, 114)

	if scrollHeight != 114 {
		t.Fatalf("scroll height = %d, want 114", scrollHeight)
	}
	newest := groups[0]
	if newest.Message.Y+newest.Message.Height != 114-StackPadding {
		t.Fatalf("expected newest line to end at the padding, got %d", newest.Message.Y+newest.Message.Height)
	}
}

func TestStackHidesBlockedGroups(t *testing.T) {
	groups := stackGroups(14, 14, 14)
	groups[1].Blocked = true
	groups[1].Message.Y = 50

	scrollHeight := Stack(groups, 20)

	if scrollHeight != 28+StackPadding {
		t.Fatalf("blocked group counted in scroll height: %d", scrollHeight)
	}
	for _, el := range []*types.Element{groups[1].Tag, groups[1].Message, groups[1].ClickTarget} {
		if !el.Hidden || el.Y != 0 {
			t.Fatalf("expected blocked element hidden at y=0: %#v", el)
		}
	}
	if groups[2].Message.Y != 0 || groups[0].Message.Y != 14 {
		t.Fatalf("unexpected visible positions: %d %d", groups[2].Message.Y, groups[0].Message.Y)
	}
}

func TestStackEmpty(t *testing.T) {
	if got := Stack(nil, 114); got != 114 {
		t.Fatalf("expected container height for empty stack, got %d", got)
	}
}
