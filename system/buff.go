package system

import (
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// BuffSystem expires the player's time-bounded modifiers. It runs first
// in the tick so every later system queries already-filtered buff state
type BuffSystem struct {
	world *engine.World
}

func NewBuffSystem(world *engine.World) engine.System {
	s := &BuffSystem{world: world}
	s.Init()
	return s
}

func (s *BuffSystem) Init() {}

func (s *BuffSystem) Name() string { return "buff" }

func (s *BuffSystem) Priority() int { return constant.PriorityBuff }

func (s *BuffSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *BuffSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *BuffSystem) Update() {
	res := s.world.Resources
	now := res.Time.Now
	playerEnt := res.Player.Entity

	buff, ok := s.world.Components.Buff.Get(playerEnt)
	if !ok {
		return
	}

	changed := false
	for kind, expiry := range buff.Expiry {
		if !expiry.After(now) {
			delete(buff.Expiry, kind)
			changed = true
		}
	}
	if changed {
		s.world.Components.Buff.Set(playerEnt, buff)
	}
}
