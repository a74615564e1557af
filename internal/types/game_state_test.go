package types

import "testing"

func TestParseGameState(t *testing.T) {
	tests := []struct {
		raw    string
		want   GameState
		resets bool
	}{
		{raw: "", want: GameStateLoggedIn},
		{raw: " Hopping ", want: GameStateHopping, resets: true},
		{raw: "login_screen", want: GameStateLoginScreen, resets: true},
	}
	for _, tc := range tests {
		got, ok := ParseGameState(tc.raw)
		if !ok || got != tc.want {
			t.Fatalf("ParseGameState(%q) = %q %v, want %q", tc.raw, got, ok, tc.want)
		}
		if got.ResetsScroll() != tc.resets {
			t.Fatalf("%q resets = %v, want %v", got, got.ResetsScroll(), tc.resets)
		}
	}
	if _, ok := ParseGameState("loading"); ok {
		t.Fatalf("expected unknown state to fail")
	}
}

func TestParseCategoryAliases(t *testing.T) {
	tests := map[string]Category{
		"clan":         CategoryClan,
		" Guest ":      CategoryGuestClan,
		"fc":           CategoryFriendsChat,
		"friends_chat": CategoryFriendsChat,
		"GIM":          CategoryGroupIron,
	}
	for raw, want := range tests {
		if got, ok := ParseCategory(raw); !ok || got != want {
			t.Fatalf("ParseCategory(%q) = %q %v, want %q", raw, got, ok, want)
		}
	}
	if _, ok := ParseCategory("public"); ok {
		t.Fatalf("expected unknown category to fail")
	}
}
