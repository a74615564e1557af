package blocking

import (
	"strings"

	"cleanchat/internal/types"
)

// ClanInstruction is the system line shown after joining a clan channel.
const ClanInstruction = "To talk in your clan's channel, start each line of chat with // or /c."

type Rule string

const (
	RuleClanInstruction        Rule = "clan_instruction"
	RuleGuestClanInstruction   Rule = "guest_clan_instruction"
	RuleGroupIronInstruction   Rule = "group_iron_instruction"
	RuleFriendsChatInstruction Rule = "friends_chat_instruction"
	RuleFriendsChatAttempting  Rule = "friends_chat_attempting"
	RuleFriendsChatNowTalking  Rule = "friends_chat_now_talking"
	RuleWelcome                Rule = "welcome"
)

// AllRules lists every rule in evaluation order.
func AllRules() []Rule {
	return []Rule{
		RuleClanInstruction,
		RuleGuestClanInstruction,
		RuleGroupIronInstruction,
		RuleFriendsChatInstruction,
		RuleFriendsChatAttempting,
		RuleFriendsChatNowTalking,
		RuleWelcome,
	}
}

// CurrentNames is the slice of channel tracking the dynamic rule texts need.
type CurrentNames interface {
	Current(category types.Category) string
}

// Text returns the literal line rule blocks. Rules that embed a channel name
// return false while that channel is unknown.
func (r Rule) Text(names CurrentNames) (string, bool) {
	switch r {
	case RuleClanInstruction:
		return ClanInstruction, true
	case RuleGuestClanInstruction:
		name := current(names, types.CategoryGuestClan)
		if name == "" {
			return "", false
		}
		return "You are now a guest of " + name + ".\nTo talk, start each line of chat with /// or /gc", true
	case RuleGroupIronInstruction:
		return "To talk in your Ironman Group's channel, start each line of chat with //// or /g.", true
	case RuleFriendsChatInstruction:
		return "To talk, start each line of chat with the / symbol.", true
	case RuleFriendsChatAttempting:
		return "Attempting to join chat-channel...", true
	case RuleFriendsChatNowTalking:
		name := current(names, types.CategoryFriendsChat)
		if name == "" {
			return "", false
		}
		return "Now talking in chat-channel " + name, true
	case RuleWelcome:
		return "Welcome to Old School RuneScape.", true
	default:
		return "", false
	}
}

func ParseRule(raw string) (Rule, bool) {
	rule := Rule(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllRules() {
		if rule == known {
			return rule, true
		}
	}
	return "", false
}

func current(names CurrentNames, category types.Category) string {
	if names == nil {
		return ""
	}
	return names.Current(category)
}
