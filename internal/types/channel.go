package types

import "strings"

type Category string

const (
	CategoryClan        Category = "clan"
	CategoryGuestClan   Category = "guest_clan"
	CategoryFriendsChat Category = "friends_chat"
	CategoryGroupIron   Category = "group_iron"
)

// Categories lists every channel category in match priority order.
func Categories() []Category {
	return []Category{CategoryClan, CategoryGuestClan, CategoryFriendsChat, CategoryGroupIron}
}

func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "clan":
		return CategoryClan, true
	case "guest_clan", "guest", "guestclan":
		return CategoryGuestClan, true
	case "friends_chat", "friends", "fc":
		return CategoryFriendsChat, true
	case "group_iron", "gim", "groupiron":
		return CategoryGroupIron, true
	default:
		return "", false
	}
}

// ChatTab mirrors the host's chat view client variable.
type ChatTab int

const (
	ChatTabAll     ChatTab = 0
	ChatTabGame    ChatTab = 1
	ChatTabPublic  ChatTab = 2
	ChatTabPrivate ChatTab = 3
	ChatTabChannel ChatTab = 4
	ChatTabClan    ChatTab = 5
	ChatTabTrade   ChatTab = 6
	ChatTabClosed  ChatTab = 1337
)

// TabOf maps a raw client variable value to a tab. Unknown values read as All.
func TabOf(value int) ChatTab {
	switch tab := ChatTab(value); tab {
	case ChatTabAll, ChatTabGame, ChatTabPublic, ChatTabPrivate, ChatTabChannel, ChatTabClan, ChatTabTrade, ChatTabClosed:
		return tab
	default:
		return ChatTabAll
	}
}

func ParseChatTab(raw string) (ChatTab, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return ChatTabAll, true
	case "game":
		return ChatTabGame, true
	case "public":
		return ChatTabPublic, true
	case "private":
		return ChatTabPrivate, true
	case "channel":
		return ChatTabChannel, true
	case "clan":
		return ChatTabClan, true
	case "trade":
		return ChatTabTrade, true
	case "closed":
		return ChatTabClosed, true
	default:
		return ChatTabAll, false
	}
}

func (t ChatTab) String() string {
	switch t {
	case ChatTabAll:
		return "all"
	case ChatTabGame:
		return "game"
	case ChatTabPublic:
		return "public"
	case ChatTabPrivate:
		return "private"
	case ChatTabChannel:
		return "channel"
	case ChatTabClan:
		return "clan"
	case ChatTabTrade:
		return "trade"
	case ChatTabClosed:
		return "closed"
	default:
		return "all"
	}
}

// IndentMode selects where wrapped message lines line up.
type IndentMode string

const (
	IndentModeStart   IndentMode = "start"
	IndentModeChannel IndentMode = "channel"
	IndentModeName    IndentMode = "name"
	IndentModeMessage IndentMode = "message"
)

func ParseIndentMode(raw string) (IndentMode, bool) {
	switch mode := IndentMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case IndentModeStart, IndentModeChannel, IndentModeName, IndentModeMessage:
		return mode, true
	default:
		return IndentModeMessage, false
	}
}

// Rank orders indent modes so that a mode includes every contribution of the
// modes ranked above it.
func (m IndentMode) Rank() int {
	switch m {
	case IndentModeStart:
		return 0
	case IndentModeChannel:
		return 1
	case IndentModeName:
		return 2
	default:
		return 3
	}
}

type ChannelPolicy struct {
	RemoveName bool   `json:"remove_name"`
	Substitute string `json:"substitute,omitempty"`
}

type Policy struct {
	Indent                IndentMode                 `json:"indent"`
	Channels              map[Category]ChannelPolicy `json:"channels,omitempty"`
	MoveGroupIronFromClan bool                       `json:"move_group_iron_from_clan"`
	MaxRetainedNames      int                        `json:"max_retained_names"`
}

const DefaultMaxRetainedNames = 10

func DefaultPolicy() Policy {
	return Policy{
		Indent:                IndentModeMessage,
		Channels:              map[Category]ChannelPolicy{},
		MoveGroupIronFromClan: true,
		MaxRetainedNames:      DefaultMaxRetainedNames,
	}
}

func (p Policy) Channel(category Category) ChannelPolicy {
	if p.Channels == nil {
		return ChannelPolicy{}
	}
	return p.Channels[category]
}

func (p Policy) RemovalEnabled(category Category) bool {
	return p.Channel(category).RemoveName
}

func ClonePolicy(in Policy) Policy {
	out := in
	if in.Channels != nil {
		out.Channels = make(map[Category]ChannelPolicy, len(in.Channels))
		for k, v := range in.Channels {
			out.Channels[k] = v
		}
	}
	return out
}
