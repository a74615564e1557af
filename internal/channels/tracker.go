package channels

import (
	"sync"

	"cleanchat/internal/markup"
	"cleanchat/internal/types"
)

// Tracker remembers the channel names seen per category. A name stays
// matchable after the player leaves the channel until it is pushed out by
// newer names.
type Tracker struct {
	mu      sync.Mutex
	max     int
	names   map[types.Category][]string
	current map[types.Category]string
}

func NewTracker(maxRetained int) *Tracker {
	if maxRetained <= 0 {
		maxRetained = types.DefaultMaxRetainedNames
	}
	return &Tracker{
		max:     maxRetained,
		names:   map[types.Category][]string{},
		current: map[types.Category]string{},
	}
}

// Observe records name as the current channel for category. Re-observing a
// retained name moves it to the newest position.
func (t *Tracker) Observe(category types.Category, name string) {
	name = markup.SanitizeName(name)
	if name == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current[category] = name
	names := t.names[category]
	for i, existing := range names {
		if existing == name {
			names = append(names[:i], names[i+1:]...)
			break
		}
	}
	names = append(names, name)
	if len(names) > t.max {
		names = append([]string{}, names[len(names)-t.max:]...)
	}
	t.names[category] = names
}

// Leave clears the current channel for category but keeps its name retained.
func (t *Tracker) Leave(category types.Category) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.current, category)
}

// NamesFor returns the retained names for category, oldest first.
func (t *Tracker) NamesFor(category types.Category) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.names[category]...)
}

func (t *Tracker) Current(category types.Category) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current[category]
}

func (t *Tracker) SetMaxRetained(maxRetained int) {
	if maxRetained <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.max = maxRetained
	for category, names := range t.names {
		if len(names) > maxRetained {
			t.names[category] = append([]string{}, names[len(names)-maxRetained:]...)
		}
	}
}
