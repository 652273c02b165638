package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action is a gameplay input the simulation samples each tick
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	actionCount
)

// HoldWindow is how long a key press counts as "held". Terminals report
// presses and auto-repeats but never releases, so a key is considered
// down while repeats keep arriving inside this window
const HoldWindow = 150 * time.Millisecond

// Snapshot is the per-tick view of currently-held inputs.
// Only current-held state matters; presses are not buffered or queued
type Snapshot struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// Tracker converts tcell key events into held-key state.
// HandleKey runs on the event-poll goroutine; Snapshot runs on the game
// loop, so the press table is mutex-guarded
type Tracker struct {
	mu      sync.Mutex
	pressed [actionCount]time.Time
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// HandleKey records a press timestamp for mapped gameplay keys.
// Returns false when the key is not a gameplay input so the caller can
// route it to menu/command handling instead
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	action, ok := mapKey(ev)
	if !ok {
		return false
	}

	t.mu.Lock()
	t.pressed[action] = now
	t.mu.Unlock()
	return true
}

// Snapshot samples held state at tick time
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	held := func(a Action) bool {
		p := t.pressed[a]
		return !p.IsZero() && now.Sub(p) < HoldWindow
	}

	return Snapshot{
		Up:    held(ActionUp),
		Down:  held(ActionDown),
		Left:  held(ActionLeft),
		Right: held(ActionRight),
		Fire:  held(ActionFire),
	}
}

// Reset clears all held state, used on phase transitions so stale
// presses do not leak into a resumed run
func (t *Tracker) Reset() {
	t.mu.Lock()
	for i := range t.pressed {
		t.pressed[i] = time.Time{}
	}
	t.mu.Unlock()
}

// mapKey resolves arrows, vi keys and WASD to gameplay actions
func mapKey(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp, true
	case tcell.KeyDown:
		return ActionDown, true
	case tcell.KeyLeft:
		return ActionLeft, true
	case tcell.KeyRight:
		return ActionRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return ActionUp, true
		case 's', 'j':
			return ActionDown, true
		case 'a', 'h':
			return ActionLeft, true
		case 'd', 'l':
			return ActionRight, true
		case ' ':
			return ActionFire, true
		}
	}
	return 0, false
}
