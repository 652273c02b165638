package system

import (
	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
	"github.com/lixenwraith/nova-fighter/physics"
)

// CollisionSystem detects and resolves every pairwise interaction:
// bullet vs enemy, bullet vs player, enemy body vs player and power-up
// vs player, then applies the removal policy. Entities are tagged for
// death and compacted by the cull system at end of tick, so iteration
// here never invalidates
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType { return nil }

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {}

func (s *CollisionSystem) Update() {
	s.resolveBullets()
	s.resolveBodyContact()
	s.resolvePickups()
	s.applyRemovalPolicy()
}

// shielded reports whether the player's shield buff is active.
// BuffSystem has already filtered expired entries this tick
func (s *CollisionSystem) shielded() bool {
	res := s.world.Resources
	buff, ok := s.world.Components.Buff.Get(res.Player.Entity)
	return ok && buff.Active(component.BuffShield, res.Time.Now)
}

func (s *CollisionSystem) resolveBullets() {
	c := &s.world.Components
	res := s.world.Resources
	playerEnt := res.Player.Entity
	playerPos, playerAlive := c.Position.Get(playerEnt)

	for _, e := range c.Bullet.All() {
		if c.Death.Has(e) {
			continue
		}
		bullet, ok := c.Bullet.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}

		if bullet.Owner == component.OwnerPlayer {
			for _, target := range c.Enemy.All() {
				if c.Death.Has(target) {
					continue
				}
				targetPos, ok := c.Position.Get(target)
				if !ok || !physics.Overlaps(pos, targetPos) {
					continue
				}
				if health, ok := c.Health.Get(target); ok {
					health.Current -= bullet.Damage
					c.Health.Set(target, health)
				}
				c.Death.Set(e, component.Death{})
				s.burst(pos.CenterX(), pos.CenterY(), component.ParticleWhite)
				break
			}
		} else if playerAlive && physics.Overlaps(pos, playerPos) {
			color := component.ParticleRed
			if s.shielded() {
				color = component.ParticleBlue
			} else {
				s.damagePlayer(bullet.Damage)
			}
			// Bullet is consumed whether or not the shield held
			c.Death.Set(e, component.Death{})
			s.burst(pos.CenterX(), pos.CenterY(), color)
		}
	}
}

// resolveBodyContact handles direct enemy-player overlap: flat contact
// damage (absorbed by shield) and the enemy is always destroyed
func (s *CollisionSystem) resolveBodyContact() {
	c := &s.world.Components
	res := s.world.Resources
	playerEnt := res.Player.Entity

	playerPos, ok := c.Position.Get(playerEnt)
	if !ok {
		return
	}

	for _, e := range c.Enemy.All() {
		if c.Death.Has(e) {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok || !physics.Overlaps(pos, playerPos) {
			continue
		}

		// Contact burst color signals whether the shield absorbed it
		if s.shielded() {
			s.burst(pos.CenterX(), pos.CenterY(), component.ParticleBlue)
		} else {
			s.damagePlayer(constant.PlayerContactDamage)
			s.burst(pos.CenterX(), pos.CenterY(), component.ParticleRed)
		}

		// Body contact is always lethal to the enemy regardless of its
		// remaining pool; the removal pass below awards the score
		if health, ok := c.Health.Get(e); ok {
			health.Current = 0
			c.Health.Set(e, health)
		}
	}
}

func (s *CollisionSystem) resolvePickups() {
	c := &s.world.Components
	res := s.world.Resources
	playerEnt := res.Player.Entity
	now := res.Time.Now

	playerPos, ok := c.Position.Get(playerEnt)
	if !ok {
		return
	}

	for _, e := range c.PowerUp.All() {
		if c.Death.Has(e) {
			continue
		}
		powerUp, ok := c.PowerUp.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok || !physics.Overlaps(pos, playerPos) {
			continue
		}

		// Apply or refresh: one entry per kind, expiry pushed forward
		if buff, ok := c.Buff.Get(playerEnt); ok {
			buff.Expiry[powerUp.Kind] = now.Add(constant.PowerUpDuration)
			c.Buff.Set(playerEnt, buff)
		}

		c.Death.Set(e, component.Death{})
		s.burst(pos.CenterX(), pos.CenterY(), component.ParticleGreen)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CuePowerUp})
	}
}

// applyRemovalPolicy tags dead and out-of-field entities. Each defeated
// enemy awards its score exactly once: the death tag set here excludes
// it from every later pass, and the cull system removes it this tick
func (s *CollisionSystem) applyRemovalPolicy() {
	c := &s.world.Components
	res := s.world.Resources
	fieldW := res.Config.FieldWidth
	fieldH := res.Config.FieldHeight

	for _, e := range c.Enemy.All() {
		if c.Death.Has(e) {
			continue
		}
		enemy, ok := c.Enemy.Get(e)
		if !ok {
			continue
		}
		pos, hasPos := c.Position.Get(e)

		if health, ok := c.Health.Get(e); ok && health.Dead() {
			s.awardKill(enemy.Kind)
			c.Death.Set(e, component.Death{})
			if hasPos {
				s.burst(pos.CenterX(), pos.CenterY(), component.ParticleOrange)
			}
			s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CueExplosion})
			if enemy.Kind == component.EnemyBoss {
				s.world.PushEvent(event.EventBossDefeated, &event.BossDefeatedPayload{At: res.Time.Now})
			}
			continue
		}

		if hasPos && pos.Y > fieldH {
			c.Death.Set(e, component.Death{})
		}
	}

	for _, e := range c.Bullet.All() {
		if c.Death.Has(e) {
			continue
		}
		if pos, ok := c.Position.Get(e); ok && outOfField(pos, fieldW, fieldH) {
			c.Death.Set(e, component.Death{})
		}
	}

	for _, e := range c.PowerUp.All() {
		if c.Death.Has(e) {
			continue
		}
		if pos, ok := c.Position.Get(e); ok && pos.Y > fieldH+constant.CullMargin {
			c.Death.Set(e, component.Death{})
		}
	}
}

func outOfField(pos component.Position, fieldW, fieldH float64) bool {
	return pos.X+pos.W < -constant.CullMargin ||
		pos.X > fieldW+constant.CullMargin ||
		pos.Y+pos.H < -constant.CullMargin ||
		pos.Y > fieldH+constant.CullMargin
}

func (s *CollisionSystem) awardKill(kind component.EnemyKind) {
	c := &s.world.Components
	playerEnt := s.world.Resources.Player.Entity

	player, ok := c.Player.Get(playerEnt)
	if !ok {
		return
	}
	switch kind {
	case component.EnemyBoss:
		player.Score += constant.ScoreBoss
	case component.EnemyHeavy:
		player.Score += constant.ScoreHeavy
	default:
		player.Score += constant.ScoreBasic
	}
	c.Player.Set(playerEnt, player)
}

func (s *CollisionSystem) damagePlayer(amount int) {
	c := &s.world.Components
	playerEnt := s.world.Resources.Player.Entity

	if health, ok := c.Health.Get(playerEnt); ok {
		health.Current -= amount
		c.Health.Set(playerEnt, health)
	}
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CueHit})
}

func (s *CollisionSystem) burst(x, y float64, color component.ParticleColor) {
	s.world.PushEvent(event.EventExplosionRequest, &event.ExplosionRequestPayload{
		X: x, Y: y, Color: color, Count: constant.ParticleBurstCount,
	})
}
