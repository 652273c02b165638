package system

import (
	"time"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// SpawnSystem introduces enemies, power-ups and bosses based on
// adjusted run time and current populations. Boss presence and normal
// enemy spawning are mutually exclusive
type SpawnSystem struct {
	world *engine.World

	lastEnemySpawn   time.Time
	lastPowerUpSpawn time.Time

	// bossAnchor is the eligibility anchor for the next boss: run start
	// for the first, the adjusted defeat time afterwards
	bossAnchor time.Time
	bossCount  int
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	start := time.Time{}
	if s.world.Resources.Time != nil {
		start = s.world.Resources.Time.RunStart
	}
	s.lastEnemySpawn = start
	s.lastPowerUpSpawn = start
	s.bossAnchor = start
	s.bossCount = 0
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return constant.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset, event.EventBossDefeated}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventBossDefeated:
		if p, ok := ev.Payload.(*event.BossDefeatedPayload); ok {
			s.bossAnchor = p.At
		}
	}
}

func (s *SpawnSystem) Update() {
	res := s.world.Resources
	now := res.Time.Now

	bossAlive := s.bossAlive()

	if !bossAlive && now.Sub(s.lastEnemySpawn) >= s.enemyInterval(res.Time.Elapsed()) {
		s.spawnEnemy(now)
		s.lastEnemySpawn = now
	}

	if now.Sub(s.lastPowerUpSpawn) >= constant.PowerUpSpawnInterval {
		s.spawnPowerUp()
		s.lastPowerUpSpawn = now
	}

	if !bossAlive && now.Sub(s.bossAnchor) >= constant.BossSpawnDelay {
		s.spawnBoss(now)
	}
}

func (s *SpawnSystem) bossAlive() bool {
	for _, e := range s.world.Components.Enemy.All() {
		if en, ok := s.world.Components.Enemy.Get(e); ok && en.Kind == component.EnemyBoss {
			return true
		}
	}
	return false
}

// enemyInterval shrinks linearly from the start interval to the floor
// as adjusted run time approaches the ramp duration, clamped beyond
func (s *SpawnSystem) enemyInterval(elapsed time.Duration) time.Duration {
	if elapsed >= constant.EnemySpawnRampDuration {
		return constant.EnemySpawnIntervalFloor
	}
	if elapsed <= 0 {
		return constant.EnemySpawnIntervalStart
	}
	span := constant.EnemySpawnIntervalStart - constant.EnemySpawnIntervalFloor
	frac := float64(elapsed) / float64(constant.EnemySpawnRampDuration)
	return constant.EnemySpawnIntervalStart - time.Duration(float64(span)*frac)
}

func (s *SpawnSystem) spawnEnemy(now time.Time) {
	res := s.world.Resources
	c := &s.world.Components

	kind := component.EnemyBasic
	speed := constant.EnemySpeedBasic
	health := constant.EnemyHealthBasic
	fireRate := constant.EnemyFireRateBasic

	switch res.Rand.Intn(3) {
	case 1:
		kind = component.EnemyFast
		speed = constant.EnemySpeedFast
	case 2:
		kind = component.EnemyHeavy
		speed = constant.EnemySpeedHeavy
		health = constant.EnemyHealthHeavy
		fireRate = constant.EnemyFireRateHeavy
	}

	e := s.world.CreateEntity()
	c.Position.Set(e, component.Position{
		X:     res.Rand.Float64() * (res.Config.FieldWidth - constant.EnemyWidth),
		Y:     -constant.EnemyHeight,
		W:     constant.EnemyWidth,
		H:     constant.EnemyHeight,
		Speed: speed,
	})
	c.Health.Set(e, component.Health{Current: health, Max: health})
	c.Enemy.Set(e, component.Enemy{Kind: kind, LastShot: now, FireRate: fireRate})
}

func (s *SpawnSystem) spawnPowerUp() {
	res := s.world.Resources
	c := &s.world.Components

	kind := component.BuffKind(res.Rand.Intn(int(component.BuffKindCount)))

	e := s.world.CreateEntity()
	c.Position.Set(e, component.Position{
		X:     res.Rand.Float64() * (res.Config.FieldWidth - constant.PowerUpSize),
		Y:     -constant.PowerUpSize,
		W:     constant.PowerUpSize,
		H:     constant.PowerUpSize,
		Speed: constant.PowerUpSpeed,
	})
	c.PowerUp.Set(e, component.PowerUp{Kind: kind})
}

func (s *SpawnSystem) spawnBoss(now time.Time) {
	res := s.world.Resources
	c := &s.world.Components

	// Health scales with the lifetime spawn count, which never resets
	health := constant.BossBaseHealth + constant.BossHealthStep*s.bossCount
	s.bossCount++

	e := s.world.CreateEntity()
	c.Position.Set(e, component.Position{
		X:     (res.Config.FieldWidth - constant.BossWidth) / 2,
		Y:     -constant.BossHeight,
		W:     constant.BossWidth,
		H:     constant.BossHeight,
		Speed: constant.BossSpeed,
	})
	c.Health.Set(e, component.Health{Current: health, Max: health})
	c.Enemy.Set(e, component.Enemy{Kind: component.EnemyBoss, LastShot: now, FireRate: constant.BossFireRate})
}
