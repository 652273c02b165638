package system

import (
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// CullSystem removes entities tagged for death. It runs last in the
// tick so every other system sees the tagged state before compaction
type CullSystem struct {
	world *engine.World
}

func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{world: world}
	s.Init()
	return s
}

func (s *CullSystem) Init() {}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return constant.PriorityCleanup }

func (s *CullSystem) EventTypes() []event.EventType { return nil }

func (s *CullSystem) HandleEvent(ev event.GameEvent) {}

func (s *CullSystem) Update() {
	for _, e := range s.world.Components.Death.All() {
		s.world.DestroyEntity(e)
	}
}
