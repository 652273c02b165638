package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/core"
)

func newStateWithClock() (*GameState, *PausableClock, *MockTimeProvider) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	provider := NewMockTimeProvider(start)
	return NewGameState(), NewPausableClock(provider), provider
}

func TestGameState_PhaseTransitions(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *GameState, c *PausableClock, p *MockTimeProvider)
		action    func(s *GameState, c *PausableClock, p *MockTimeProvider) bool
		wantOK    bool
		wantPhase core.Phase
	}{
		{
			name:      "menu to playing",
			setup:     func(s *GameState, c *PausableClock, p *MockTimeProvider) {},
			action:    func(s *GameState, c *PausableClock, p *MockTimeProvider) bool { return s.StartRun() },
			wantOK:    true,
			wantPhase: core.PhasePlaying,
		},
		{
			name:  "playing to paused",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) { s.StartRun() },
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.Pause(c)
			},
			wantOK:    true,
			wantPhase: core.PhasePaused,
		},
		{
			name: "paused to countdown",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) {
				s.StartRun()
				s.Pause(c)
			},
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.BeginCountdown(p.Now())
			},
			wantOK:    true,
			wantPhase: core.PhaseCountdown,
		},
		{
			name: "paused to menu abandons",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) {
				s.StartRun()
				s.Pause(c)
			},
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.AbandonRun(c)
			},
			wantOK:    true,
			wantPhase: core.PhaseMenu,
		},
		{
			name:  "menu to shop and back",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) { s.EnterShop() },
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.LeaveShop()
			},
			wantOK:    true,
			wantPhase: core.PhaseMenu,
		},
		{
			name:  "pause from menu rejected",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) {},
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.Pause(c)
			},
			wantOK:    false,
			wantPhase: core.PhaseMenu,
		},
		{
			name:  "countdown from playing rejected",
			setup: func(s *GameState, c *PausableClock, p *MockTimeProvider) { s.StartRun() },
			action: func(s *GameState, c *PausableClock, p *MockTimeProvider) bool {
				return s.BeginCountdown(p.Now())
			},
			wantOK:    false,
			wantPhase: core.PhasePlaying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, clock, provider := newStateWithClock()
			tt.setup(state, clock, provider)
			if got := tt.action(state, clock, provider); got != tt.wantOK {
				t.Errorf("Action returned %v, want %v", got, tt.wantOK)
			}
			if state.Phase() != tt.wantPhase {
				t.Errorf("Phase = %v, want %v", state.Phase(), tt.wantPhase)
			}
		})
	}
}

func TestGameState_CountdownDigits(t *testing.T) {
	tests := []struct {
		elapsed   time.Duration
		wantDigit int
		wantPhase core.Phase
	}{
		{0, 3, core.PhaseCountdown},
		{400 * time.Millisecond, 3, core.PhaseCountdown},
		{600 * time.Millisecond, 2, core.PhaseCountdown},
		{1400 * time.Millisecond, 2, core.PhaseCountdown},
		{1600 * time.Millisecond, 1, core.PhaseCountdown},
		{2400 * time.Millisecond, 1, core.PhaseCountdown},
		{2600 * time.Millisecond, 0, core.PhasePlaying},
	}

	for _, tt := range tests {
		state, clock, provider := newStateWithClock()
		state.StartRun()
		state.Pause(clock)
		state.BeginCountdown(provider.Now())

		provider.Advance(tt.elapsed)
		state.TickCountdown(provider.Now(), clock)

		if state.Phase() != tt.wantPhase {
			t.Errorf("elapsed %v: phase = %v, want %v", tt.elapsed, state.Phase(), tt.wantPhase)
		}
		if tt.wantPhase == core.PhaseCountdown && state.CountdownDigit() != tt.wantDigit {
			t.Errorf("elapsed %v: digit = %d, want %d", tt.elapsed, state.CountdownDigit(), tt.wantDigit)
		}
	}
}

func TestGameState_PauseCountdownExcludedFromGameTime(t *testing.T) {
	state, clock, provider := newStateWithClock()
	state.StartRun()

	provider.Advance(10 * time.Second)
	pausePoint := clock.Now()

	// Pause, idle 2s, then run the full countdown
	state.Pause(clock)
	provider.Advance(2 * time.Second)
	state.BeginCountdown(provider.Now())
	for state.Phase() == core.PhaseCountdown {
		provider.Advance(100 * time.Millisecond)
		state.TickCountdown(provider.Now(), clock)
	}

	if state.Phase() != core.PhasePlaying {
		t.Fatalf("Expected playing after countdown, got %v", state.Phase())
	}

	// Total paused covers the idle time plus the whole countdown
	minPaused := 2*time.Second + constant.CountdownInitialDelay +
		2*constant.CountdownDigitInterval
	if got := clock.TotalPaused(); got < minPaused {
		t.Errorf("Total paused %v, want at least %v", got, minPaused)
	}

	// A cooldown scheduled 100ms past the pause point is unaffected by
	// the pause duration
	provider.Advance(100 * time.Millisecond)
	if got := clock.Now().Sub(pausePoint); got != 100*time.Millisecond {
		t.Errorf("Adjusted time advanced %v across pause, want 100ms", got)
	}
}

func TestGameState_FinalizeRun(t *testing.T) {
	state, _, _ := newStateWithClock()
	state.LoadProgress(4000, 250, []string{content.DefaultCraftID}, content.DefaultCraftID)
	state.StartRun()

	if !state.FinalizeRun(3000) {
		t.Fatal("FinalizeRun failed from playing")
	}
	if state.Phase() != core.PhaseGameOver {
		t.Errorf("Phase = %v, want gameover", state.Phase())
	}
	if state.HighScore() != 4000 {
		t.Errorf("High score = %d, want 4000 (previous high)", state.HighScore())
	}
	if state.Currency() != 3250 {
		t.Errorf("Currency = %d, want 3250", state.Currency())
	}

	// Finalize is idempotent per run
	if state.FinalizeRun(3000) {
		t.Error("Second FinalizeRun succeeded")
	}
	if state.Currency() != 3250 {
		t.Errorf("Currency double-counted: %d", state.Currency())
	}

	// A higher score replaces the record on the next run
	state.StartRun()
	state.FinalizeRun(9000)
	if state.HighScore() != 9000 {
		t.Errorf("High score = %d, want 9000", state.HighScore())
	}
}

func TestGameState_PurchaseRoundTrip(t *testing.T) {
	state, _, _ := newStateWithClock()
	craft := content.ByID("viper")
	state.LoadProgress(0, craft.Price+100, []string{content.DefaultCraftID}, content.DefaultCraftID)

	if !state.Purchase(craft) {
		t.Fatal("Purchase failed with sufficient funds")
	}
	if got := state.Currency(); got != 100 {
		t.Errorf("Currency = %d, want exactly price deducted (100 left)", got)
	}
	if !state.IsOwned(craft.ID) {
		t.Error("Craft not owned after purchase")
	}
	if state.Selected() != craft.ID {
		t.Error("Purchase did not select the craft")
	}

	// Owned list gained exactly one id
	if got := len(state.Owned()); got != 2 {
		t.Errorf("Owned count = %d, want 2", got)
	}

	// Re-purchasing an owned craft is a currency no-op
	if state.Purchase(craft) {
		t.Error("Purchasing owned craft succeeded")
	}
	if got := state.Currency(); got != 100 {
		t.Errorf("Currency changed on owned re-purchase: %d", got)
	}
}

func TestGameState_PurchaseInsufficientFunds(t *testing.T) {
	state, _, _ := newStateWithClock()
	craft := content.ByID("titan")
	state.LoadProgress(0, craft.Price-1, nil, "")

	if state.Purchase(craft) {
		t.Error("Purchase succeeded without funds")
	}
	if state.Currency() != craft.Price-1 {
		t.Errorf("Currency mutated on failed purchase: %d", state.Currency())
	}
}

func TestGameState_LoadProgressSanitizes(t *testing.T) {
	state, _, _ := newStateWithClock()
	state.LoadProgress(-5, -10, []string{"viper", "viper", "bogus", ""}, "bogus")

	if state.HighScore() != 0 || state.Currency() != 0 {
		t.Errorf("Negative progression not clamped: %d/%d", state.HighScore(), state.Currency())
	}
	owned := state.Owned()
	if len(owned) != 2 || owned[0] != content.DefaultCraftID || owned[1] != "viper" {
		t.Errorf("Owned = %v, want [standard viper]", owned)
	}
	if state.Selected() != content.DefaultCraftID {
		t.Errorf("Selected = %q, want default for unknown id", state.Selected())
	}
}

func TestGameState_SelectRequiresOwnership(t *testing.T) {
	state, _, _ := newStateWithClock()
	if state.Select("titan") {
		t.Error("Selected an unowned craft")
	}
	if state.Selected() != content.DefaultCraftID {
		t.Errorf("Selection changed to unowned craft: %q", state.Selected())
	}
}
