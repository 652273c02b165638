package system

import (
	"math"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
	"github.com/lixenwraith/nova-fighter/physics"
)

// MovementSystem advances every entity's position for the tick:
// player steering with bounds clamping, enemy descent, boss descent and
// oscillation, bullet trajectories and power-up drift
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return constant.PriorityMovement }

func (s *MovementSystem) EventTypes() []event.EventType { return nil }

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {}

func (s *MovementSystem) Update() {
	s.movePlayer()
	s.moveEnemies()
	s.moveBullets()
	s.movePowerUps()
}

// movePlayer applies fixed per-axis deltas for each held direction.
// Diagonal movement is allowed and deliberately not normalized. The
// position is clamped into the playfield every tick
func (s *MovementSystem) movePlayer() {
	res := s.world.Resources
	c := &s.world.Components
	playerEnt := res.Player.Entity

	pos, ok := c.Position.Get(playerEnt)
	if !ok {
		return
	}

	in := res.Input.Snapshot
	if in.Left {
		pos.X -= pos.Speed
	}
	if in.Right {
		pos.X += pos.Speed
	}
	if in.Up {
		pos.Y -= pos.Speed
	}
	if in.Down {
		pos.Y += pos.Speed
	}

	pos.X = physics.Clamp(pos.X, 0, res.Config.FieldWidth-pos.W)
	pos.Y = physics.Clamp(pos.Y, 0, res.Config.FieldHeight-pos.H)
	c.Position.Set(playerEnt, pos)
}

func (s *MovementSystem) moveEnemies() {
	res := s.world.Resources
	c := &s.world.Components
	elapsed := res.Time.Elapsed().Seconds()

	for _, e := range c.Enemy.All() {
		enemy, ok := c.Enemy.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}

		if enemy.Kind == component.EnemyBoss {
			if pos.Y < constant.BossHoldY {
				// Entrance descent; y freezes at the hold line
				pos.Y += pos.Speed
				if pos.Y > constant.BossHoldY {
					pos.Y = constant.BossHoldY
				}
			} else {
				pos.X += math.Sin(elapsed*constant.BossOscillationFreq) * constant.BossOscillationAmplitude
				pos.X = physics.Clamp(pos.X,
					constant.BossEdgeMargin,
					res.Config.FieldWidth-constant.BossEdgeMargin-pos.W)
			}
		} else {
			pos.Y += pos.Speed
		}
		c.Position.Set(e, pos)
	}
}

func (s *MovementSystem) moveBullets() {
	c := &s.world.Components

	for _, e := range c.Bullet.All() {
		bullet, ok := c.Bullet.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}

		if bullet.HasVelocity {
			pos.X += bullet.VX
			pos.Y += bullet.VY
		} else if bullet.Owner == component.OwnerPlayer {
			pos.Y -= pos.Speed
		} else {
			pos.Y += pos.Speed
		}
		c.Position.Set(e, pos)
	}
}

func (s *MovementSystem) movePowerUps() {
	c := &s.world.Components

	for _, e := range c.PowerUp.All() {
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		pos.Y += pos.Speed
		c.Position.Set(e, pos)
	}
}
