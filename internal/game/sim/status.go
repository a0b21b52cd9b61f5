package sim

// Status is the simulation's terminal state.
type Status int

// Statuses. Victory and GameOver are terminal.
const (
	Running Status = iota
	Victory
	GameOver
)

func (s Status) String() string {
	switch s {
	case Victory:
		return "victory"
	case GameOver:
		return "game_over"
	default:
		return "running"
	}
}

// Terminal reports whether s ends the simulation.
func (s Status) Terminal() bool { return s != Running }
