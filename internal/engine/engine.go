// Package engine runs one rebuild pass over a chat log snapshot: decode,
// edit, lay out, stack and scrollbar emulation, reported as element
// mutations against the snapshot it was given.
package engine

import (
	"cleanchat/internal/blocking"
	"cleanchat/internal/channels"
	"cleanchat/internal/logging"
	"cleanchat/internal/scrollbar"
	"cleanchat/internal/transcript"
	"cleanchat/internal/types"
)

type Options struct {
	Logger  logging.Logger
	Policy  types.Policy
	Rules   map[blocking.Rule]bool
	Tracker *channels.Tracker
}

// Engine holds the state that survives between passes. It is not safe for
// concurrent passes; the tracker may be fed from any goroutine.
type Engine struct {
	logger  logging.Logger
	policy  types.Policy
	rules   map[blocking.Rule]bool
	tracker *channels.Tracker
	blocker *blocking.Blocker
	state   scrollbar.State
}

func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = channels.NewTracker(opts.Policy.MaxRetainedNames)
	}
	e := &Engine{
		logger:  logger,
		tracker: tracker,
		state:   scrollbar.NewState(),
	}
	e.SetPolicy(opts.Policy, opts.Rules)
	return e
}

// SetPolicy replaces the policy and blocking rules used by later passes.
func (e *Engine) SetPolicy(policy types.Policy, rules map[blocking.Rule]bool) {
	e.policy = types.ClonePolicy(policy)
	e.rules = make(map[blocking.Rule]bool, len(rules))
	for rule, on := range rules {
		e.rules[rule] = on
	}
	if e.policy.MaxRetainedNames > 0 {
		e.tracker.SetMaxRetained(e.policy.MaxRetainedNames)
	}
	e.blocker = blocking.NewBlocker(e.rules, e.tracker)
}

func (e *Engine) Policy() types.Policy {
	return types.ClonePolicy(e.policy)
}

func (e *Engine) Tracker() *channels.Tracker {
	return e.tracker
}

func (e *Engine) State() scrollbar.State {
	return e.state
}

func (e *Engine) SetState(state scrollbar.State) {
	e.state = state
}

// Reset forgets the saved scroll position, as on log close, world hop or the
// login screen.
func (e *Engine) Reset() {
	e.state.Reset()
}

// OnGameState resets the saved scroll position when the client hops worlds
// or drops to the login screen.
func (e *Engine) OnGameState(state types.GameState) {
	if !state.ResetsScroll() {
		return
	}
	e.logger.Debug("scroll_reset", logging.F("game_state", string(state)))
	e.Reset()
}

// OnScroll records a scroll interaction from the player.
func (e *Engine) OnScroll(scrollHeight, scrollY int) {
	e.state.RecordScroll(scrollHeight, scrollY)
}

// Inert reports whether no configured behavior can change a pass.
func (e *Engine) Inert() bool {
	if e.policy.Indent.Rank() < types.IndentModeMessage.Rank() || e.policy.MoveGroupIronFromClan {
		return false
	}
	if e.blocker.Active() {
		return false
	}
	for _, category := range types.Categories() {
		channel := e.policy.Channel(category)
		if channel.RemoveName || channel.Substitute != "" {
			return false
		}
	}
	return true
}

// Rebuild runs one pass over snapshot for the selected tab. The snapshot is
// not modified; the result carries the rebuilt copy and the mutations that
// turn one into the other.
func (e *Engine) Rebuild(snapshot types.Snapshot, tab types.ChatTab) Result {
	log, _ := logging.ForPass(e.logger, tab)
	result := Result{Tab: tab, Snapshot: types.CloneSnapshot(snapshot)}

	switch {
	case snapshot.Container == nil:
		e.state.Reset()
		log.Debug("pass_skipped", logging.F("reason", ReasonNoContainer))
		return result.skip(ReasonNoContainer, e.state)
	case tab == types.ChatTabClosed:
		e.state.Reset()
		log.Debug("pass_skipped", logging.F("reason", ReasonClosed))
		return result.skip(ReasonClosed, e.state)
	case e.Inert():
		e.state.Tab = tab
		log.Debug("pass_skipped", logging.F("reason", ReasonInert))
		return result.skip(ReasonInert, e.state)
	}

	working := result.Snapshot
	groups := transcript.Decode(working.Lines, working.ClickTargets)
	editor := transcript.NewEditor(e.policy, e.tracker, e.blocker, tab)
	missing := 0
	for _, g := range groups {
		if g.Message == nil {
			missing++
		}
		editor.Edit(g)
	}
	transcript.Layout(groups, e.policy.Indent)

	container := working.Container
	scrollHeight := transcript.Stack(groups, container.Height)
	geometry, next := scrollbar.Emulate(scrollbar.Input{
		Tab:             tab,
		ContainerHeight: container.Height,
		ScrollY:         container.ScrollY,
		ScrollHeight:    scrollHeight,
		TrackHeight:     working.Scrollbar.Height,
	}, e.state)
	e.state = next
	container.ScrollHeight = geometry.ScrollHeight
	container.ScrollY = geometry.ScrollY

	result.Scrollbar = geometry
	result.ScrollHeight = geometry.ScrollHeight
	result.ScrollY = geometry.ScrollY
	result.State = next
	result.Groups = summarize(groups)
	result.Mutations = diffSnapshots(snapshot, working)
	result.Stats = tally(result.Groups)

	if missing > 0 {
		log.Debug("slots_missing", logging.F("groups", missing))
	}
	log.Debug("pass_done",
		logging.F("groups", result.Stats.Groups),
		logging.F("edited", result.Stats.Edited),
		logging.F("hidden", result.Stats.Hidden),
		logging.F("mutations", len(result.Mutations)),
		logging.F("scroll_height", geometry.ScrollHeight),
		logging.F("scroll_y", geometry.ScrollY),
		logging.F("restored", geometry.Restored),
	)
	return result
}

func diffSnapshots(before, after types.Snapshot) []types.Mutation {
	var out []types.Mutation
	out = appendDiffs(out, types.ElementKindLine, before.Lines, after.Lines)
	out = appendDiffs(out, types.ElementKindClickTarget, before.ClickTargets, after.ClickTargets)
	return out
}

func appendDiffs(out []types.Mutation, kind types.ElementKind, before, after []types.Element) []types.Mutation {
	for i := range after {
		if i >= len(before) {
			break
		}
		if m, ok := types.DiffElement(types.ElementRef{Kind: kind, Index: i}, before[i], after[i]); ok {
			out = append(out, m)
		}
	}
	return out
}
