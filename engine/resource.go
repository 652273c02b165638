package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/input"
)

// Resources are singleton values shared by all systems. Written only in
// well-defined tick phases from the main goroutine
type Resources struct {
	Config *ConfigResource
	Time   *TimeResource
	Input  *InputResource
	State  *GameState
	Player *PlayerResource
	Rand   *rand.Rand
}

// ConfigResource holds the logical playfield bounds
type ConfigResource struct {
	FieldWidth  float64
	FieldHeight float64
}

// TimeResource is the per-tick time snapshot. Now is adjusted
// simulation time: raw timestamp minus accumulated paused duration.
// All gameplay timers compare against Now, never RealNow
type TimeResource struct {
	Now      time.Time // Adjusted simulation time
	RealNow  time.Time // Wall clock, pause-unaware
	Delta    time.Duration
	Frame    int64
	RunStart time.Time // Adjusted time the current run began
}

// Elapsed returns the adjusted run time
func (t *TimeResource) Elapsed() time.Duration {
	return t.Now.Sub(t.RunStart)
}

// InputResource is the held-input snapshot sampled at tick start
type InputResource struct {
	Snapshot input.Snapshot
}

// PlayerResource names the singleton player entity
type PlayerResource struct {
	Entity core.Entity
}
