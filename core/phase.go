package core

// Phase represents the run state machine's current node
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseCountdown
	PhaseGameOver
	PhaseShop
)

// String returns the phase name for diagnostics and logging
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseCountdown:
		return "countdown"
	case PhaseGameOver:
		return "gameover"
	case PhaseShop:
		return "shop"
	default:
		return "unknown"
	}
}
