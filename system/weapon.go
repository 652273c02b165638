package system

import (
	"math"
	"time"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
	"github.com/lixenwraith/nova-fighter/physics"
)

// bossSpreadAngles are the five-way spread pattern angles in radians
var bossSpreadAngles = [5]float64{-0.4, -0.2, 0, 0.2, 0.4}

// WeaponSystem generates projectiles: the player's cannon (with rapid
// and spread modifiers), regular enemy straight shots, and the rotating
// boss patterns. All cooldowns compare against adjusted time
type WeaponSystem struct {
	world *engine.World
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{world: world}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return constant.PriorityWeapon }

func (s *WeaponSystem) EventTypes() []event.EventType { return nil }

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {}

func (s *WeaponSystem) Update() {
	s.firePlayer()
	s.fireEnemies()
}

func (s *WeaponSystem) firePlayer() {
	res := s.world.Resources
	c := &s.world.Components
	playerEnt := res.Player.Entity
	now := res.Time.Now

	if !res.Input.Snapshot.Fire {
		return
	}

	player, ok := c.Player.Get(playerEnt)
	if !ok {
		return
	}
	pos, ok := c.Position.Get(playerEnt)
	if !ok {
		return
	}

	buff, _ := c.Buff.Get(playerEnt)

	effective := player.FireRate
	if buff.Active(component.BuffRapidFire, now) {
		effective /= 2
	}
	if now.Sub(player.LastShot) <= effective {
		return
	}

	dmg, w, h := playerBulletStats(player.CraftID)
	cx := pos.CenterX()
	top := pos.Y

	if buff.Active(component.BuffSpreadShot, now) {
		// Three simultaneous bullets: center plus both side offsets
		s.spawnPlayerBullet(cx-constant.SpreadShotOffset-w/2, top, w, h, dmg)
		s.spawnPlayerBullet(cx-w/2, top, w, h, dmg)
		s.spawnPlayerBullet(cx+constant.SpreadShotOffset-w/2, top, w, h, dmg)
	} else {
		s.spawnPlayerBullet(cx-w/2, top, w, h, dmg)
	}

	player.LastShot = now
	c.Player.Set(playerEnt, player)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CueShoot})
}

// playerBulletStats returns damage and bullet box per craft loadout
func playerBulletStats(craftID string) (dmg int, w, h float64) {
	switch craftID {
	case "blast":
		return 25, 12, constant.BulletHeight
	case "tech":
		return 15, constant.BulletWidth, 25
	default:
		return 10, constant.BulletWidth, constant.BulletHeight
	}
}

func (s *WeaponSystem) spawnPlayerBullet(x, y, w, h float64, dmg int) {
	c := &s.world.Components
	e := s.world.CreateEntity()
	c.Position.Set(e, component.Position{X: x, Y: y - h, W: w, H: h, Speed: constant.PlayerBulletSpeed})
	c.Bullet.Set(e, component.Bullet{Owner: component.OwnerPlayer, Damage: dmg})
}

func (s *WeaponSystem) fireEnemies() {
	res := s.world.Resources
	c := &s.world.Components
	now := res.Time.Now

	for _, e := range c.Enemy.All() {
		enemy, ok := c.Enemy.Get(e)
		if !ok || c.Death.Has(e) {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		// Hold fire until on-screen
		if pos.Y < 0 {
			continue
		}
		if now.Sub(enemy.LastShot) <= enemy.FireRate {
			continue
		}

		if enemy.Kind == component.EnemyBoss {
			s.fireBossPattern(pos, now, res.Time.Elapsed())
		} else {
			s.spawnEnemyBullet(
				pos.CenterX()-constant.EnemyBulletSize/2, pos.Y+pos.H,
				0, 0, false,
				constant.EnemyBulletDamage,
			)
		}

		enemy.LastShot = now
		c.Enemy.Set(e, enemy)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Cue: core.CueEnemyShoot})
	}
}

// fireBossPattern generates whichever pattern is due. Selection rotates
// deterministically every pattern period of adjusted run time
func (s *WeaponSystem) fireBossPattern(bossPos component.Position, now time.Time, elapsed time.Duration) {
	// Origin near the boss's lower center
	ox := bossPos.CenterX() - constant.EnemyBulletSize/2
	oy := bossPos.Y + bossPos.H - constant.EnemyBulletSize

	switch (elapsed / constant.BossPatternPeriod) % 3 {
	case 0: // Five-way spread
		for _, angle := range bossSpreadAngles {
			vx := math.Sin(angle) * constant.BossSpreadSpeed
			vy := math.Cos(angle) * constant.BossSpreadSpeed
			s.spawnEnemyBullet(ox, oy, vx, vy, true, constant.BossSpreadDamage)
		}

	case 1: // Circular burst
		for i := 0; i < constant.BossCircleCount; i++ {
			angle := 2 * math.Pi * float64(i) / constant.BossCircleCount
			vx := math.Sin(angle) * constant.BossCircleSpeed
			vy := math.Cos(angle) * constant.BossCircleSpeed
			s.spawnEnemyBullet(ox, oy, vx, vy, true, constant.BossCircleDamage)
		}

	case 2: // Targeted burst aimed at the player's current center
		target, ok := s.world.Components.Position.Get(s.world.Resources.Player.Entity)
		if !ok {
			return
		}
		vx, vy := physics.Aim(
			ox+constant.EnemyBulletSize/2, oy+constant.EnemyBulletSize/2,
			target.CenterX(), target.CenterY(),
			constant.BossTargetedSpeed,
		)
		s.spawnEnemyBullet(ox, oy, vx, vy, true, constant.BossTargetedDamage)
	}
}

func (s *WeaponSystem) spawnEnemyBullet(x, y, vx, vy float64, aimed bool, dmg int) {
	c := &s.world.Components
	e := s.world.CreateEntity()
	c.Position.Set(e, component.Position{
		X: x, Y: y,
		W: constant.EnemyBulletSize, H: constant.EnemyBulletSize,
		Speed: constant.EnemyBulletSpeed,
	})
	c.Bullet.Set(e, component.Bullet{
		Owner:       component.OwnerEnemy,
		Damage:      dmg,
		VX:          vx,
		VY:          vy,
		HasVelocity: aimed,
	})
}
