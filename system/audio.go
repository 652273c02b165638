package system

import (
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// CuePlayer is the audio collaborator contract: fire-and-forget cues,
// no return value consumed
type CuePlayer interface {
	Play(cue core.SoundCue)
}

// AudioSystem forwards sound requests to the cue player. A nil player
// degrades to silence without affecting the tick
type AudioSystem struct {
	world  *engine.World
	player CuePlayer
}

func NewAudioSystem(world *engine.World, player CuePlayer) engine.System {
	s := &AudioSystem{world: world, player: player}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return constant.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(p.Cue)
	}
}

func (s *AudioSystem) Update() {}
