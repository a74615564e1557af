package channels

import (
	"strings"

	"cleanchat/internal/types"
)

// NameSource is what the matcher needs from channel tracking.
type NameSource interface {
	NamesFor(category types.Category) []string
	Current(category types.Category) string
}

// SubstitutePlaceholder in a configured substitute expands to the matched
// channel name.
const SubstitutePlaceholder = "{name}"

// Behavior describes how one category reacts to a pass.
type Behavior struct {
	Category   types.Category
	Enabled    func(types.Policy) bool
	Names      func(NameSource) []string
	Substitute func(types.Policy) string
	Suppressed func(types.Policy, types.ChatTab) bool
}

func never(types.Policy, types.ChatTab) bool { return false }

func behaviorFor(category types.Category) Behavior {
	b := Behavior{
		Category: category,
		Enabled: func(p types.Policy) bool {
			return p.RemovalEnabled(category)
		},
		Names: func(src NameSource) []string {
			if src == nil {
				return nil
			}
			return src.NamesFor(category)
		},
		Substitute: func(p types.Policy) string {
			return strings.TrimSpace(p.Channel(category).Substitute)
		},
		Suppressed: never,
	}
	if category == types.CategoryGroupIron {
		b.Suppressed = func(p types.Policy, tab types.ChatTab) bool {
			return p.MoveGroupIronFromClan && tab == types.ChatTabClan
		}
	}
	return b
}

var behaviors = func() []Behavior {
	out := make([]Behavior, 0, 4)
	for _, category := range types.Categories() {
		out = append(out, behaviorFor(category))
	}
	return out
}()

// Behaviors returns the behavior table in match priority order.
func Behaviors() []Behavior {
	return append([]Behavior{}, behaviors...)
}

// ExpandSubstitute returns the display text that replaces name, or false when
// the configured substitute would leave the tag as it is.
func ExpandSubstitute(substitute, name string) (string, bool) {
	substitute = strings.TrimSpace(substitute)
	if substitute == "" || substitute == SubstitutePlaceholder {
		return "", false
	}
	expanded := strings.ReplaceAll(substitute, SubstitutePlaceholder, name)
	if expanded == name {
		return "", false
	}
	return expanded, true
}
