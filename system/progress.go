package system

import (
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// ProgressSystem watches for the terminal condition. When the player's
// health is exhausted it finalizes the run exactly once: high score
// reconciliation, score-to-currency conversion and the phase change all
// happen inside GameState
type ProgressSystem struct {
	world *engine.World
}

func NewProgressSystem(world *engine.World) engine.System {
	s := &ProgressSystem{world: world}
	s.Init()
	return s
}

func (s *ProgressSystem) Init() {}

func (s *ProgressSystem) Name() string { return "progress" }

func (s *ProgressSystem) Priority() int { return constant.PriorityProgress }

func (s *ProgressSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ProgressSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ProgressSystem) Update() {
	c := &s.world.Components
	res := s.world.Resources
	playerEnt := res.Player.Entity

	health, ok := c.Health.Get(playerEnt)
	if !ok || !health.Dead() {
		return
	}

	score := 0
	if player, ok := c.Player.Get(playerEnt); ok {
		score = player.Score
	}

	if res.State.FinalizeRun(score) {
		s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{Score: score})
	}
}
