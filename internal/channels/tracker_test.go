package channels

import (
	"testing"

	"cleanchat/internal/types"
)

func TestTrackerEvictsOldestAndDeduplicates(t *testing.T) {
	tracker := NewTracker(3)
	for _, name := range []string{"One", "Two", "Three", "Two", "Four"} {
		tracker.Observe(types.CategoryClan, name)
	}
	names := tracker.NamesFor(types.CategoryClan)
	want := []string{"Three", "Two", "Four"}
	if len(names) != len(want) {
		t.Fatalf("unexpected names: %#v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q (all=%#v)", i, names[i], want[i], names)
		}
	}
	if got := tracker.Current(types.CategoryClan); got != "Four" {
		t.Fatalf("unexpected current name: %q", got)
	}
}

func TestTrackerSanitizesNames(t *testing.T) {
	tracker := NewTracker(0)
	tracker.Observe(types.CategoryFriendsChat, "<col=ff0000>Fc Name</col>")
	tracker.Observe(types.CategoryFriendsChat, "Fc Name")
	tracker.Observe(types.CategoryFriendsChat, "   ")
	names := tracker.NamesFor(types.CategoryFriendsChat)
	if len(names) != 1 || names[0] != "Fc Name" {
		t.Fatalf("unexpected names: %#v", names)
	}
}

func TestTrackerLeaveKeepsRetainedNames(t *testing.T) {
	tracker := NewTracker(5)
	tracker.Observe(types.CategoryGuestClan, "Guests")
	tracker.Leave(types.CategoryGuestClan)
	if got := tracker.Current(types.CategoryGuestClan); got != "" {
		t.Fatalf("expected no current guest clan, got %q", got)
	}
	if names := tracker.NamesFor(types.CategoryGuestClan); len(names) != 1 {
		t.Fatalf("expected name to stay retained: %#v", names)
	}
}

func TestTrackerShrinkingMaxEvictsOldest(t *testing.T) {
	tracker := NewTracker(4)
	for _, name := range []string{"a", "b", "c", "d"} {
		tracker.Observe(types.CategoryClan, name)
	}
	tracker.SetMaxRetained(2)
	names := tracker.NamesFor(types.CategoryClan)
	if len(names) != 2 || names[0] != "c" || names[1] != "d" {
		t.Fatalf("unexpected names after shrink: %#v", names)
	}
}

func TestBehaviorsFollowPriorityOrder(t *testing.T) {
	table := Behaviors()
	want := types.Categories()
	if len(table) != len(want) {
		t.Fatalf("unexpected behavior count: %d", len(table))
	}
	for i := range want {
		if table[i].Category != want[i] {
			t.Fatalf("behavior %d = %s, want %s", i, table[i].Category, want[i])
		}
	}
}

func behaviorOf(t *testing.T, category types.Category) Behavior {
	t.Helper()
	for _, b := range Behaviors() {
		if b.Category == category {
			return b
		}
	}
	t.Fatalf("no behavior for %s", category)
	return Behavior{}
}

func TestGroupIronSuppressedOnlyInClanTab(t *testing.T) {
	policy := types.DefaultPolicy()
	gim := behaviorOf(t, types.CategoryGroupIron)
	clan := behaviorOf(t, types.CategoryClan)
	if !gim.Suppressed(policy, types.ChatTabClan) {
		t.Fatalf("expected group iron to be suppressed in clan tab")
	}
	if gim.Suppressed(policy, types.ChatTabAll) {
		t.Fatalf("expected group iron to show in all tab")
	}
	if clan.Suppressed(policy, types.ChatTabClan) {
		t.Fatalf("expected clan never to be suppressed")
	}
	policy.MoveGroupIronFromClan = false
	if gim.Suppressed(policy, types.ChatTabClan) {
		t.Fatalf("expected suppression to follow policy")
	}
}

func TestExpandSubstitute(t *testing.T) {
	tests := []struct {
		substitute string
		name       string
		want       string
		ok         bool
	}{
		{substitute: "", name: "Clan", ok: false},
		{substitute: "{name}", name: "Clan", ok: false},
		{substitute: "Clan", name: "Clan", ok: false},
		{substitute: "C", name: "Clan", want: "C", ok: true},
		{substitute: "{name}!", name: "Clan", want: "Clan!", ok: true},
	}
	for _, tt := range tests {
		got, ok := ExpandSubstitute(tt.substitute, tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExpandSubstitute(%q, %q) = %q, %v; want %q, %v", tt.substitute, tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
