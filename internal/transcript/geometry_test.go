package transcript

import (
	"strings"
	"testing"

	"cleanchat/internal/channels"
	"cleanchat/internal/chatbox"
	"cleanchat/internal/linewrap"
	"cleanchat/internal/textmetrics"
	"cleanchat/internal/types"
)

const longMessage = "this message is long enough that it needs to wrap onto a second line in the chat box, and maybe even a third one"

func editedGroup(t *testing.T, b *chatbox.Builder, policy types.Policy, observe map[types.Category]string) *Group {
	t.Helper()
	tracker := channels.NewTracker(10)
	for category, name := range observe {
		tracker.Observe(category, name)
	}
	g, _ := decodeOne(t, b)
	NewEditor(policy, tracker, nil, types.ChatTabAll).Edit(g)
	return g
}

func TestIndentNameModeWithoutMatchIsZero(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Chat("[06:01] [Other]", false, "Zezima:", longMessage),
		types.DefaultPolicy(), map[types.Category]string{types.CategoryClan: "Clan Name"})
	before := *g.Message

	Indent(g, types.IndentModeName)

	if g.IndentSpaces != 0 || g.IndentWidth != 0 {
		t.Fatalf("expected no indent, got spaces=%d width=%d", g.IndentSpaces, g.IndentWidth)
	}
	if *g.Message != before {
		t.Fatalf("message changed: %#v", g.Message)
	}
}

func TestIndentMessageModeIsZero(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Chat("[Clan Name]", false, "Zezima:", longMessage),
		types.DefaultPolicy(), map[types.Category]string{types.CategoryClan: "Clan Name"})
	Indent(g, types.IndentModeMessage)
	if g.IndentSpaces != 0 {
		t.Fatalf("expected no indent in message mode, got %d", g.IndentSpaces)
	}
}

func TestLayoutNameModeAfterRemoval(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Chat("[06:01] [Clan Name] ", false, "Zezima:", longMessage),
		removalPolicy(types.CategoryClan), map[types.Category]string{types.CategoryClan: "Clan Name"})
	origX, origWidth := g.Message.X, g.Message.Width
	nameX := g.Name.X
	tagWidth := g.Tag.Width

	Layout([]*Group{g}, types.IndentModeName)

	nameWidth := textmetrics.Width("Zezima:")
	indent := nameWidth + nameClosingOffset
	if g.IndentWidth != indent || g.IndentSpaces != indent/3 {
		t.Fatalf("indent = %d (%d spaces), want %d", g.IndentWidth, g.IndentSpaces, indent)
	}
	if !strings.HasPrefix(g.Message.Text, strings.Repeat(" ", g.IndentSpaces)+"this") {
		t.Fatalf("expected indent spaces before message: %q", g.Message.Text)
	}
	if g.Message.X != origX-indent-g.RemovedWidth {
		t.Fatalf("message x = %d, want %d", g.Message.X, origX-indent-g.RemovedWidth)
	}
	if g.Message.Width != origWidth+indent+g.RemovedWidth {
		t.Fatalf("message width = %d, want %d", g.Message.Width, origWidth+indent+g.RemovedWidth)
	}
	if g.Name.X != nameX-g.RemovedWidth {
		t.Fatalf("name x = %d, want %d", g.Name.X, nameX-g.RemovedWidth)
	}
	if g.Tag.Width != tagWidth-g.RemovedWidth {
		t.Fatalf("tag width = %d, want %d", g.Tag.Width, tagWidth-g.RemovedWidth)
	}
	indentPx := textmetrics.Width(textmetrics.Spaces(g.IndentSpaces))
	lines := linewrap.LineCount(g.Message.Text, g.Message.Width, indentPx)
	if g.Message.Height != lines*textmetrics.LineHeight || g.ClickTarget.Height != g.Message.Height {
		t.Fatalf("unexpected heights: message=%d click=%d lines=%d", g.Message.Height, g.ClickTarget.Height, lines)
	}
	if lines < 2 {
		t.Fatalf("expected the long message to wrap, got %d line", lines)
	}
}

func TestIndentStartModeAfterRemoval(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Chat("[06:01] [Clan Name] ", false, "Zezima:", longMessage),
		removalPolicy(types.CategoryClan), map[types.Category]string{types.CategoryClan: "Clan Name"})

	Indent(g, types.IndentModeStart)

	want := textmetrics.Width("[06:01] ") + removedPrefixOffset + textmetrics.Width("Zezima:") + nameClosingOffset
	if g.IndentWidth != want {
		t.Fatalf("indent = %d, want %d", g.IndentWidth, want)
	}
}

func TestIndentChannelModeKeepsBracket(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Chat("[06:01] [Clan Name] ", true, "Zezima:", longMessage),
		types.DefaultPolicy(), map[types.Category]string{types.CategoryClan: "Clan Name"})

	Indent(g, types.IndentModeChannel)

	want := textmetrics.Width("[Clan Name]") + channelOffset + textmetrics.Width("Zezima:") + chatbox.RankIconWidth + nameClosingOffset
	if g.IndentWidth != want {
		t.Fatalf("indent = %d, want %d", g.IndentWidth, want)
	}
}

func TestIndentFriendsChatMeasuresFromTag(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Broadcast("[Fc] Zezima:", longMessage),
		types.DefaultPolicy(), map[types.Category]string{types.CategoryFriendsChat: "Fc"})

	Indent(g, types.IndentModeName)

	want := textmetrics.Width(" Zezima:") + nameClosingOffsetFriend
	if g.IndentWidth != want {
		t.Fatalf("indent = %d, want %d", g.IndentWidth, want)
	}
}

func TestIndentFriendsChatAfterCollapsedRemoval(t *testing.T) {
	g := editedGroup(t, chatbox.NewBuilder().Broadcast("[06:01] [Fc] Zezima:", longMessage),
		removalPolicy(types.CategoryFriendsChat), map[types.Category]string{types.CategoryFriendsChat: "Fc"})
	if g.Tag.Text != "[06:01] Zezima:" {
		t.Fatalf("unexpected tag text: %q", g.Tag.Text)
	}

	Indent(g, types.IndentModeName)

	want := textmetrics.Width("Zezima:") + nameClosingOffsetFriend
	if g.IndentWidth != want {
		t.Fatalf("indent = %d, want %d", g.IndentWidth, want)
	}
}

func TestMeasureSkipsEmptyMessages(t *testing.T) {
	g := &Group{Message: &types.Element{Width: 100, Height: 7}}
	Measure(g)
	if g.Message.Height != 7 {
		t.Fatalf("expected empty message height to stay, got %d", g.Message.Height)
	}
}
