package system

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/event"
)

// newTestContext builds a context on a mock clock with a fixed rand
// seed and a freshly reset run (player spawned, run anchored)
func newTestContext() (*engine.GameContext, *engine.MockTimeProvider) {
	provider := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := engine.NewGameContext(provider)
	ctx.World.Resources.Rand = rand.New(rand.NewSource(1))
	ctx.State.StartRun()
	ctx.ResetRun()
	ctx.DrainEvents() // Dispose the queued reset event
	return ctx, provider
}

// syncTime refreshes the time resource from the clock, as Tick would
func syncTime(ctx *engine.GameContext, provider *engine.MockTimeProvider) {
	res := ctx.World.Resources
	res.Time.Now = ctx.Clock.Now()
	res.Time.RealNow = provider.Now()
}

// spawnTestEnemy places an enemy with explicit stats
func spawnTestEnemy(ctx *engine.GameContext, kind component.EnemyKind, x, y float64, health int) core.Entity {
	c := &ctx.World.Components
	e := ctx.World.CreateEntity()
	w, h := constant.EnemyWidth, constant.EnemyHeight
	if kind == component.EnemyBoss {
		w, h = constant.BossWidth, constant.BossHeight
	}
	c.Position.Set(e, component.Position{X: x, Y: y, W: w, H: h, Speed: 1})
	c.Health.Set(e, component.Health{Current: health, Max: health})
	c.Enemy.Set(e, component.Enemy{Kind: kind, LastShot: ctx.Clock.Now(), FireRate: constant.EnemyFireRateBasic})
	return e
}

// spawnTestBullet places a bullet without an explicit velocity
func spawnTestBullet(ctx *engine.GameContext, owner component.BulletOwner, x, y float64, dmg int) core.Entity {
	c := &ctx.World.Components
	e := ctx.World.CreateEntity()
	c.Position.Set(e, component.Position{
		X: x, Y: y,
		W: constant.EnemyBulletSize, H: constant.EnemyBulletSize,
		Speed: constant.EnemyBulletSpeed,
	})
	c.Bullet.Set(e, component.Bullet{Owner: owner, Damage: dmg})
	return e
}

// playerPos returns the player's current bounding box
func playerPos(ctx *engine.GameContext) component.Position {
	pos, _ := ctx.World.Components.Position.Get(ctx.World.Resources.Player.Entity)
	return pos
}

// grantBuff sets a buff expiring after the given duration of adjusted time
func grantBuff(ctx *engine.GameContext, kind component.BuffKind, d time.Duration) {
	playerEnt := ctx.World.Resources.Player.Entity
	buff, _ := ctx.World.Components.Buff.Get(playerEnt)
	buff.Expiry[kind] = ctx.Clock.Now().Add(d)
	ctx.World.Components.Buff.Set(playerEnt, buff)
}

// countCues tallies queued sound requests for a cue
func countCues(events []event.GameEvent, cue core.SoundCue) int {
	n := 0
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && p.Cue == cue {
			n++
		}
	}
	return n
}

// countBursts tallies queued explosion requests for a color
func countBursts(events []event.GameEvent, color component.ParticleColor) int {
	n := 0
	for _, ev := range events {
		if ev.Type != event.EventExplosionRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.ExplosionRequestPayload); ok && p.Color == color {
			n++
		}
	}
	return n
}
