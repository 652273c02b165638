package engine

import (
	"time"

	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/core"
)

// GameState is the authoritative run state machine plus the
// meta-progression ledger (high score, currency, craft ownership).
//
// Main-loop exclusive: read and written only from the game loop
// goroutine, so no synchronization is required
type GameState struct {
	phase core.Phase

	// Countdown sub-state, valid while phase == PhaseCountdown.
	// Carries its own real-time start so the digit is advanced from a
	// single delta instead of re-derived wall-clock sampling in branches
	countdownStart time.Time
	countdownDigit int

	// Meta progression
	highScore int
	currency  int
	owned     []string
	ownedSet  map[string]bool
	selected  string

	// Final score of the last finished run, for the game-over screen
	lastScore int

	// Guard so a run is finalized exactly once
	finalized bool
}

// NewGameState creates a state machine in the menu phase with default
// progression
func NewGameState() *GameState {
	s := &GameState{
		phase:    core.PhaseMenu,
		ownedSet: make(map[string]bool),
		selected: content.DefaultCraftID,
	}
	s.addOwned(content.DefaultCraftID)
	return s
}

// Phase returns the current state machine node
func (s *GameState) Phase() core.Phase { return s.phase }

// LoadProgress applies persisted progression. Unknown or duplicate
// craft ids are dropped; the default craft is always owned
func (s *GameState) LoadProgress(highScore, currency int, owned []string, selected string) {
	s.highScore = max(highScore, 0)
	s.currency = max(currency, 0)

	s.owned = s.owned[:0]
	s.ownedSet = make(map[string]bool)
	s.addOwned(content.DefaultCraftID)
	for _, id := range owned {
		s.addOwned(id)
	}

	s.selected = content.DefaultCraftID
	if s.ownedSet[selected] {
		s.selected = selected
	}
}

func (s *GameState) addOwned(id string) {
	if id == "" || s.ownedSet[id] {
		return
	}
	if content.ByID(id).ID != id {
		return // Unknown craft id from a stale save
	}
	s.ownedSet[id] = true
	s.owned = append(s.owned, id)
}

// ===== Run lifecycle =====

// StartRun enters playing. Valid from menu and gameover (restart)
func (s *GameState) StartRun() bool {
	if s.phase != core.PhaseMenu && s.phase != core.PhaseGameOver {
		return false
	}
	s.phase = core.PhasePlaying
	s.finalized = false
	return true
}

// Pause freezes the clock and enters paused. Valid only from playing
func (s *GameState) Pause(clock *PausableClock) bool {
	if s.phase != core.PhasePlaying {
		return false
	}
	s.phase = core.PhasePaused
	clock.Pause()
	return true
}

// BeginCountdown starts the resume countdown. Valid only from paused
func (s *GameState) BeginCountdown(realNow time.Time) bool {
	if s.phase != core.PhasePaused {
		return false
	}
	s.phase = core.PhaseCountdown
	s.countdownStart = realNow
	s.countdownDigit = constant.CountdownStart
	return true
}

// TickCountdown advances the displayed digit from the wall-clock delta
// since the countdown started. The first digit holds for the initial
// delay, each following digit for the digit interval. When the count
// drops below one, the clock resumes (folding the full paused span into
// the pause accumulator) and the phase returns to playing
func (s *GameState) TickCountdown(realNow time.Time, clock *PausableClock) {
	if s.phase != core.PhaseCountdown {
		return
	}

	elapsed := realNow.Sub(s.countdownStart)
	if elapsed < constant.CountdownInitialDelay {
		s.countdownDigit = constant.CountdownStart
		return
	}

	steps := int((elapsed-constant.CountdownInitialDelay)/constant.CountdownDigitInterval) + 1
	digit := constant.CountdownStart - steps
	if digit < 1 {
		clock.Resume()
		s.phase = core.PhasePlaying
		return
	}
	s.countdownDigit = digit
}

// CountdownDigit returns the digit to display
func (s *GameState) CountdownDigit() int { return s.countdownDigit }

// AbandonRun leaves a paused run for the menu. The run's score is
// discarded; progression mutates only on game over
func (s *GameState) AbandonRun(clock *PausableClock) bool {
	if s.phase != core.PhasePaused {
		return false
	}
	clock.Resume()
	s.phase = core.PhaseMenu
	return true
}

// FinalizeRun reconciles progression at the end of a run: high score
// becomes the max of old and new, the run score converts to currency.
// Idempotent per run; repeated ticks after death award nothing
func (s *GameState) FinalizeRun(score int) bool {
	if s.phase != core.PhasePlaying || s.finalized {
		return false
	}
	s.finalized = true
	s.lastScore = score
	if score > s.highScore {
		s.highScore = score
	}
	s.currency += score
	s.phase = core.PhaseGameOver
	return true
}

// ReturnToMenu leaves the game-over screen
func (s *GameState) ReturnToMenu() bool {
	if s.phase != core.PhaseGameOver {
		return false
	}
	s.phase = core.PhaseMenu
	return true
}

// ===== Shop =====

// EnterShop and LeaveShop move between menu and shop
func (s *GameState) EnterShop() bool {
	if s.phase != core.PhaseMenu {
		return false
	}
	s.phase = core.PhaseShop
	return true
}

func (s *GameState) LeaveShop() bool {
	if s.phase != core.PhaseShop {
		return false
	}
	s.phase = core.PhaseMenu
	return true
}

// Purchase buys a craft from the catalog. Buying an owned craft is a
// currency no-op; insufficient funds fail. A successful purchase also
// selects the craft
func (s *GameState) Purchase(c content.Craft) bool {
	if s.ownedSet[c.ID] {
		return false
	}
	if s.currency < c.Price {
		return false
	}
	s.currency -= c.Price
	s.addOwned(c.ID)
	s.selected = c.ID
	return true
}

// Select switches the active loadout to an owned craft
func (s *GameState) Select(id string) bool {
	if !s.ownedSet[id] {
		return false
	}
	s.selected = id
	return true
}

// ===== Accessors =====

func (s *GameState) HighScore() int   { return s.highScore }
func (s *GameState) Currency() int    { return s.currency }
func (s *GameState) LastScore() int   { return s.lastScore }
func (s *GameState) Selected() string { return s.selected }

// Owned returns the owned craft ids in acquisition order
func (s *GameState) Owned() []string {
	out := make([]string, len(s.owned))
	copy(out, s.owned)
	return out
}

// IsOwned reports craft ownership
func (s *GameState) IsOwned(id string) bool { return s.ownedSet[id] }
