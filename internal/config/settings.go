package config

import (
	"errors"
	"os"
	"strings"

	"cleanchat/internal/blocking"
	"cleanchat/internal/types"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultLogLevel = "info"

type Settings struct {
	Logging  LoggingSettings  `toml:"logging" json:"logging"`
	Layout   LayoutSettings   `toml:"layout" json:"layout"`
	Channels ChannelsSettings `toml:"channels" json:"channels"`
	Messages MessagesSettings `toml:"messages" json:"messages"`
}

type LoggingSettings struct {
	Level string `toml:"level" json:"level"`
}

type LayoutSettings struct {
	IndentMode string `toml:"indent_mode" json:"indent_mode"`
}

type ChannelsSettings struct {
	MaxRetainedNames int                 `toml:"max_retained_names" json:"max_retained_names"`
	Clan             ChannelSettings     `toml:"clan" json:"clan"`
	GuestClan        ChannelSettings     `toml:"guest_clan" json:"guest_clan"`
	FriendsChat      FriendsChatSettings `toml:"friends_chat" json:"friends_chat"`
	GroupIron        GroupIronSettings   `toml:"group_iron" json:"group_iron"`
}

type ChannelSettings struct {
	RemoveName        bool   `toml:"remove_name" json:"remove_name"`
	Substitute        string `toml:"substitute" json:"substitute"`
	RemoveInstruction bool   `toml:"remove_instruction" json:"remove_instruction"`
}

type FriendsChatSettings struct {
	RemoveName        bool   `toml:"remove_name" json:"remove_name"`
	Substitute        string `toml:"substitute" json:"substitute"`
	RemoveInstruction bool   `toml:"remove_instruction" json:"remove_instruction"`
	RemoveAttempting  bool   `toml:"remove_attempting" json:"remove_attempting"`
	RemoveNowTalking  bool   `toml:"remove_now_talking" json:"remove_now_talking"`
}

type GroupIronSettings struct {
	RemoveName        bool   `toml:"remove_name" json:"remove_name"`
	Substitute        string `toml:"substitute" json:"substitute"`
	RemoveInstruction bool   `toml:"remove_instruction" json:"remove_instruction"`
	MoveFromClanTab   bool   `toml:"move_from_clan_tab" json:"move_from_clan_tab"`
}

type MessagesSettings struct {
	RemoveWelcome bool `toml:"remove_welcome" json:"remove_welcome"`
	// Block turns on further rules by name. Unknown names are ignored.
	Block []string `toml:"block,omitempty" json:"block,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingSettings{
			Level: defaultLogLevel,
		},
		Layout: LayoutSettings{
			IndentMode: string(types.IndentModeMessage),
		},
		Channels: ChannelsSettings{
			MaxRetainedNames: types.DefaultMaxRetainedNames,
			Clan: ChannelSettings{
				RemoveInstruction: true,
			},
			GuestClan: ChannelSettings{
				RemoveInstruction: true,
			},
			FriendsChat: FriendsChatSettings{
				RemoveInstruction: true,
			},
			GroupIron: GroupIronSettings{
				RemoveInstruction: true,
				MoveFromClanTab:   true,
			},
		},
		Messages: MessagesSettings{
			RemoveWelcome: true,
		},
	}
}

func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return Settings{}, err
	}
	return LoadSettingsFromPath(path)
}

// LoadSettingsFromPath reads settings over the defaults. A missing or empty
// file yields the defaults.
func LoadSettingsFromPath(path string) (Settings, error) {
	cfg := DefaultSettings()
	if err := readTOML(path, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (s Settings) IndentMode() types.IndentMode {
	mode, _ := types.ParseIndentMode(s.Layout.IndentMode)
	return mode
}

func (s Settings) MaxRetainedNames() int {
	if s.Channels.MaxRetainedNames <= 0 {
		return types.DefaultMaxRetainedNames
	}
	return s.Channels.MaxRetainedNames
}

func (s Settings) Policy() types.Policy {
	c := s.Channels
	return types.Policy{
		Indent: s.IndentMode(),
		Channels: map[types.Category]types.ChannelPolicy{
			types.CategoryClan: {
				RemoveName: c.Clan.RemoveName,
				Substitute: strings.TrimSpace(c.Clan.Substitute),
			},
			types.CategoryGuestClan: {
				RemoveName: c.GuestClan.RemoveName,
				Substitute: strings.TrimSpace(c.GuestClan.Substitute),
			},
			types.CategoryFriendsChat: {
				RemoveName: c.FriendsChat.RemoveName,
				Substitute: strings.TrimSpace(c.FriendsChat.Substitute),
			},
			types.CategoryGroupIron: {
				RemoveName: c.GroupIron.RemoveName,
				Substitute: strings.TrimSpace(c.GroupIron.Substitute),
			},
		},
		MoveGroupIronFromClan: c.GroupIron.MoveFromClanTab,
		MaxRetainedNames:      s.MaxRetainedNames(),
	}
}

func (s Settings) BlockRules() map[blocking.Rule]bool {
	c := s.Channels
	rules := map[blocking.Rule]bool{
		blocking.RuleClanInstruction:        c.Clan.RemoveInstruction,
		blocking.RuleGuestClanInstruction:   c.GuestClan.RemoveInstruction,
		blocking.RuleGroupIronInstruction:   c.GroupIron.RemoveInstruction,
		blocking.RuleFriendsChatInstruction: c.FriendsChat.RemoveInstruction,
		blocking.RuleFriendsChatAttempting:  c.FriendsChat.RemoveAttempting,
		blocking.RuleFriendsChatNowTalking:  c.FriendsChat.RemoveNowTalking,
		blocking.RuleWelcome:                s.Messages.RemoveWelcome,
	}
	for _, name := range normalizedList(s.Messages.Block) {
		if rule, ok := blocking.ParseRule(name); ok {
			rules[rule] = true
		}
	}
	return rules
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
