package config

import (
	"cleanchat/internal/types"
)

// ChannelNames seeds one category of channel tracking. Names are listed
// oldest first and Current, when set, becomes the newest.
type ChannelNames struct {
	Names   []string `toml:"names" json:"names,omitempty" yaml:"names,omitempty"`
	Current string   `toml:"current" json:"current,omitempty" yaml:"current,omitempty"`
}

type ChannelsFile struct {
	Clan        ChannelNames `toml:"clan" json:"clan" yaml:"clan"`
	GuestClan   ChannelNames `toml:"guest_clan" json:"guest_clan" yaml:"guest_clan"`
	FriendsChat ChannelNames `toml:"friends_chat" json:"friends_chat" yaml:"friends_chat"`
	GroupIron   ChannelNames `toml:"group_iron" json:"group_iron" yaml:"group_iron"`
}

// Observer receives seeded names. channels.Tracker implements it.
type Observer interface {
	Observe(category types.Category, name string)
}

func LoadChannels() (ChannelsFile, error) {
	path, err := ChannelsPath()
	if err != nil {
		return ChannelsFile{}, err
	}
	return LoadChannelsFromPath(path)
}

func LoadChannelsFromPath(path string) (ChannelsFile, error) {
	var out ChannelsFile
	if err := readTOML(path, &out); err != nil {
		return ChannelsFile{}, err
	}
	return out, nil
}

func (f ChannelsFile) byCategory() map[types.Category]ChannelNames {
	return map[types.Category]ChannelNames{
		types.CategoryClan:        f.Clan,
		types.CategoryGuestClan:   f.GuestClan,
		types.CategoryFriendsChat: f.FriendsChat,
		types.CategoryGroupIron:   f.GroupIron,
	}
}

// Seed feeds every configured name to observer in priority order.
func (f ChannelsFile) Seed(observer Observer) {
	entries := f.byCategory()
	for _, category := range types.Categories() {
		entry := entries[category]
		for _, name := range normalizedList(entry.Names) {
			observer.Observe(category, name)
		}
		if entry.Current != "" {
			observer.Observe(category, entry.Current)
		}
	}
}
