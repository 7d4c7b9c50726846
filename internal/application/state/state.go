package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateReloading
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReloading:
		return "Reloading"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
