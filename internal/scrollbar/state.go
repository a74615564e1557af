package scrollbar

import "cleanchat/internal/types"

// State is carried from one pass to the next. Diff is the distance from the
// bottom of the content to the viewport offset and is only meaningful when
// Set is true.
type State struct {
	Diff int           `json:"diff" yaml:"diff"`
	Tab  types.ChatTab `json:"tab" yaml:"tab"`
	Set  bool          `json:"set" yaml:"set"`
}

// NewState returns the unset state.
func NewState() State {
	return State{Tab: types.ChatTabClosed}
}

// Reset clears the state, as on log close, world hop or the login screen.
func (s *State) Reset() {
	*s = NewState()
}

// RecordScroll stores the position after the player dragged or wheeled the
// scrollbar, so the next rebuild can restore it.
func (s *State) RecordScroll(scrollHeight, scrollY int) {
	s.Diff = scrollHeight - scrollY
	s.Set = true
}

// Restorable reports whether a pass on tab should restore the saved distance
// from the bottom instead of trusting the host offset.
func (s State) Restorable(tab types.ChatTab) bool {
	return s.Set && s.Tab != types.ChatTabClosed && s.Tab != tab
}
