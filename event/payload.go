package event

import (
	"time"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/core"
)

// GameEvent is a single queued event with an optional typed payload
type GameEvent struct {
	Type    EventType
	Frame   int64
	Payload any
}

// SoundRequestPayload names the cue to synthesize
type SoundRequestPayload struct {
	Cue core.SoundCue
}

// ExplosionRequestPayload places a particle burst
type ExplosionRequestPayload struct {
	X, Y  float64
	Color component.ParticleColor
	Count int
}

// BossDefeatedPayload carries the defeat anchor in adjusted time
type BossDefeatedPayload struct {
	At time.Time
}

// GameOverPayload carries the final run score
type GameOverPayload struct {
	Score int
}
