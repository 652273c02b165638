package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/event"
	"github.com/lixenwraith/nova-fighter/input"
)

// GameContext owns the simulation: the ECS world, the run state
// machine, the pausable clock, the input tracker and the event queue.
// One tick equals one presentation frame; all per-tick work is
// synchronous and completes before the next frame is scheduled
type GameContext struct {
	World   *World
	State   *GameState
	Clock   *PausableClock
	Tracker *input.Tracker

	provider TimeProvider
	queue    *event.Queue
	routes   map[event.EventType][]System
	frame    int64
}

// NewGameContext builds a fully wired context on the given time source
func NewGameContext(provider TimeProvider) *GameContext {
	world := NewWorld()
	clock := NewPausableClock(provider)
	state := NewGameState()
	now := clock.Now()

	ctx := &GameContext{
		World:    world,
		State:    state,
		Clock:    clock,
		Tracker:  input.NewTracker(),
		provider: provider,
		queue:    event.NewQueue(),
		routes:   make(map[event.EventType][]System),
	}

	world.SetEventMetadata(ctx.queue, &ctx.frame)

	world.Resources.Config = &ConfigResource{
		FieldWidth:  constant.PlayfieldWidth,
		FieldHeight: constant.PlayfieldHeight,
	}
	world.Resources.Time = &TimeResource{
		Now:      now,
		RealNow:  provider.Now(),
		Delta:    constant.FrameDuration,
		RunStart: now,
	}
	world.Resources.Input = &InputResource{}
	world.Resources.State = state
	world.Resources.Player = &PlayerResource{}
	world.Resources.Rand = rand.New(rand.NewSource(provider.Now().UnixNano()))

	return ctx
}

// AddSystem registers a system with the world and the event router
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	for _, t := range s.EventTypes() {
		ctx.routes[t] = append(ctx.routes[t], s)
	}
}

// PushEvent queues an event stamped with the current frame
func (ctx *GameContext) PushEvent(t event.EventType, payload any) {
	ctx.queue.Push(event.GameEvent{Type: t, Frame: ctx.frame, Payload: payload})
}

// DrainEvents routes all pending events to their subscribed systems and
// returns any unrouted events relevant to the outer loop (game over)
func (ctx *GameContext) DrainEvents() []event.GameEvent {
	pending := ctx.queue.Consume()
	var unrouted []event.GameEvent
	for _, ev := range pending {
		targets := ctx.routes[ev.Type]
		if len(targets) == 0 {
			unrouted = append(unrouted, ev)
			continue
		}
		for _, s := range targets {
			s.HandleEvent(ev)
		}
	}
	return unrouted
}

// Tick advances the simulation by one frame: refresh the time and input
// resources, deliver events, then run every system in priority order.
// Callers invoke Tick only while the run is playing; paused and
// countdown phases perform no entity mutation
func (ctx *GameContext) Tick() []event.GameEvent {
	ctx.frame++

	res := ctx.World.Resources
	realNow := ctx.provider.Now()
	now := ctx.Clock.Now()
	res.Time.Delta = constant.FrameDuration
	res.Time.Now = now
	res.Time.RealNow = realNow
	res.Time.Frame = ctx.frame
	res.Input.Snapshot = ctx.Tracker.Snapshot(realNow)

	unrouted := ctx.DrainEvents()
	ctx.World.Update()
	return unrouted
}

// ResetRun clears the world, spawns the player from the selected
// loadout's base stats and re-anchors the run clock. Systems drop their
// run-local state via the reset event delivered on the next tick
func (ctx *GameContext) ResetRun() {
	ctx.World.Clear()

	craft := content.ByID(ctx.State.Selected())
	c := &ctx.World.Components

	player := ctx.World.CreateEntity()
	c.Position.Set(player, component.Position{
		X:     (constant.PlayfieldWidth - constant.PlayerWidth) / 2,
		Y:     constant.PlayfieldHeight - constant.PlayerHeight - 40,
		W:     constant.PlayerWidth,
		H:     constant.PlayerHeight,
		Speed: craft.Speed,
	})
	c.Health.Set(player, component.Health{Current: craft.Health, Max: craft.Health})
	c.Player.Set(player, component.Player{CraftID: craft.ID, FireRate: craft.FireRate})
	c.Buff.Set(player, component.NewBuff())

	ctx.World.Resources.Player.Entity = player
	ctx.World.Resources.Time.RunStart = ctx.Clock.Now()

	ctx.Tracker.Reset()
	ctx.PushEvent(event.EventGameReset, nil)
}

// ===== Presentation projection =====

// BuffStatus is one active buff with its remaining adjusted time
type BuffStatus struct {
	Kind      component.BuffKind
	Remaining time.Duration
}

// BossStatus is the optional boss health snapshot
type BossStatus struct {
	Current, Max int
}

// HUD is the read-only per-tick projection consumed by presentation.
// It never feeds back into the simulation
type HUD struct {
	Health    int
	MaxHealth int
	Score     int
	Elapsed   time.Duration
	Buffs     []BuffStatus
	Boss      *BossStatus
}

// Snapshot derives the HUD from the current world state
func (ctx *GameContext) Snapshot() HUD {
	c := &ctx.World.Components
	res := ctx.World.Resources
	playerEnt := res.Player.Entity
	now := res.Time.Now

	hud := HUD{Elapsed: res.Time.Elapsed()}

	if h, ok := c.Health.Get(playerEnt); ok {
		hud.Health = max(h.Current, 0)
		hud.MaxHealth = h.Max
	}
	if p, ok := c.Player.Get(playerEnt); ok {
		hud.Score = p.Score
	}
	if b, ok := c.Buff.Get(playerEnt); ok {
		for kind := component.BuffKind(0); kind < component.BuffKindCount; kind++ {
			if exp, active := b.Expiry[kind]; active && exp.After(now) {
				hud.Buffs = append(hud.Buffs, BuffStatus{Kind: kind, Remaining: exp.Sub(now)})
			}
		}
	}
	for _, e := range c.Enemy.All() {
		en, ok := c.Enemy.Get(e)
		if !ok || en.Kind != component.EnemyBoss {
			continue
		}
		if h, ok := c.Health.Get(e); ok {
			hud.Boss = &BossStatus{Current: max(h.Current, 0), Max: h.Max}
		}
		break
	}
	return hud
}
