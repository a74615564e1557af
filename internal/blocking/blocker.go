// Package blocking hides system lines by exact text.
package blocking

import "cleanchat/internal/markup"

type Blocker struct {
	enabled map[Rule]bool
	names   CurrentNames
}

func NewBlocker(enabled map[Rule]bool, names CurrentNames) *Blocker {
	copied := make(map[Rule]bool, len(enabled))
	for rule, on := range enabled {
		copied[rule] = on
	}
	return &Blocker{enabled: copied, names: names}
}

func (b *Blocker) Enabled(rule Rule) bool {
	if b == nil {
		return false
	}
	return b.enabled[rule]
}

// Active reports whether any rule is switched on.
func (b *Blocker) Active() bool {
	if b == nil {
		return false
	}
	for _, on := range b.enabled {
		if on {
			return true
		}
	}
	return false
}

// Match returns the first enabled rule whose text equals message once
// markers are removed.
func (b *Blocker) Match(message string) (Rule, bool) {
	if b == nil || message == "" {
		return "", false
	}
	plain := normalize(message)
	for _, rule := range AllRules() {
		if !b.enabled[rule] {
			continue
		}
		text, ok := rule.Text(b.names)
		if ok && plain == text {
			return rule, true
		}
	}
	return "", false
}

// Blocks reports whether a line should be hidden given its message and name
// slot texts. After a world hop the host can put the clan instruction in the
// name slot, which is blocked as well.
func (b *Blocker) Blocks(message, name string) bool {
	if _, ok := b.Match(message); ok {
		return true
	}
	if b.Enabled(RuleClanInstruction) && name != "" && normalize(name) == ClanInstruction {
		return true
	}
	return false
}

func normalize(text string) string {
	return markup.Lines.Sanitize(text)
}
