package system

import (
	"math"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// ParticleSystem owns cosmetic debris: it spawns bursts on explosion
// requests and integrates position and life each tick. Particles never
// affect gameplay
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) engine.System {
	s := &ParticleSystem{world: world}
	s.Init()
	return s
}

func (s *ParticleSystem) Init() {}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Priority() int { return constant.PriorityParticle }

func (s *ParticleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventExplosionRequest, event.EventGameReset}
}

func (s *ParticleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventExplosionRequest:
		if p, ok := ev.Payload.(*event.ExplosionRequestPayload); ok {
			s.spawnBurst(p)
		}
	}
}

func (s *ParticleSystem) spawnBurst(p *event.ExplosionRequestPayload) {
	c := &s.world.Components
	rng := s.world.Resources.Rand

	for i := 0; i < p.Count; i++ {
		angle := 2 * math.Pi * rng.Float64()
		speed := 0.5 + rng.Float64()*2.5

		e := s.world.CreateEntity()
		c.Position.Set(e, component.Position{X: p.X, Y: p.Y, W: 2, H: 2})
		c.Particle.Set(e, component.Particle{
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1.0,
			Size:  1 + rng.Float64()*2,
			Color: p.Color,
		})
	}
}

func (s *ParticleSystem) Update() {
	c := &s.world.Components

	for _, e := range c.Particle.All() {
		particle, ok := c.Particle.Get(e)
		if !ok {
			continue
		}

		particle.Life -= constant.ParticleLifeDecrement
		if particle.Life <= 0 {
			c.Death.Set(e, component.Death{})
			continue
		}
		c.Particle.Set(e, particle)

		if pos, ok := c.Position.Get(e); ok {
			pos.X += particle.VX
			pos.Y += particle.VY
			c.Position.Set(e, pos)
		}
	}
}
