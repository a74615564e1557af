package types

import "strings"

// GameState is the client login state as far as a pass cares about it.
type GameState string

const (
	GameStateLoggedIn    GameState = "logged_in"
	GameStateHopping     GameState = "hopping"
	GameStateLoginScreen GameState = "login_screen"
)

func ParseGameState(raw string) (GameState, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "logged_in", "loggedin":
		return GameStateLoggedIn, true
	case "hopping", "hop":
		return GameStateHopping, true
	case "login_screen", "loginscreen", "login":
		return GameStateLoginScreen, true
	default:
		return "", false
	}
}

// ResetsScroll reports whether entering s discards the saved scroll position.
func (s GameState) ResetsScroll() bool {
	return s == GameStateHopping || s == GameStateLoginScreen
}
