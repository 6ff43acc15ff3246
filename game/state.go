package game

// State is the game mode's play state.
type State int32

const (
	StatePaused State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "PAUSED"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// CanTransition reports whether from -> to is a legal move. GameOver is
// terminal.
func CanTransition(from, to State) bool {
	switch from {
	case StatePaused:
		return to == StatePlaying
	case StatePlaying:
		return to == StateGameOver
	default:
		return false
	}
}
