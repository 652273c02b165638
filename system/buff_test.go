package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/nova-fighter/component"
)

func TestBuffSystem_ExpiresOnlyElapsedEntries(t *testing.T) {
	ctx, provider := newTestContext()
	s := NewBuffSystem(ctx.World)

	grantBuff(ctx, component.BuffRapidFire, 3*time.Second)
	grantBuff(ctx, component.BuffShield, 10*time.Second)

	provider.Advance(5 * time.Second)
	syncTime(ctx, provider)
	s.Update()

	playerEnt := ctx.World.Resources.Player.Entity
	buff, _ := ctx.World.Components.Buff.Get(playerEnt)
	now := ctx.World.Resources.Time.Now

	if buff.Active(component.BuffRapidFire, now) {
		t.Error("rapid fire should have expired")
	}
	if !buff.Active(component.BuffShield, now) {
		t.Error("shield should still be active")
	}
	if _, ok := buff.Expiry[component.BuffRapidFire]; ok {
		t.Error("expired entry should be deleted, not merely inactive")
	}
}

func TestBuffSystem_PauseExtendsEffectiveDuration(t *testing.T) {
	ctx, provider := newTestContext()
	s := NewBuffSystem(ctx.World)

	grantBuff(ctx, component.BuffShield, 3*time.Second)

	// A pause freezes adjusted time, so wall time spent paused does not
	// count against the buff
	ctx.Clock.Pause()
	provider.Advance(time.Minute)
	ctx.Clock.Resume()

	provider.Advance(2 * time.Second)
	syncTime(ctx, provider)
	s.Update()

	playerEnt := ctx.World.Resources.Player.Entity
	buff, _ := ctx.World.Components.Buff.Get(playerEnt)
	if !buff.Active(component.BuffShield, ctx.World.Resources.Time.Now) {
		t.Error("shield should survive a pause of any wall-clock length")
	}

	provider.Advance(2 * time.Second)
	syncTime(ctx, provider)
	s.Update()

	buff, _ = ctx.World.Components.Buff.Get(playerEnt)
	if buff.Active(component.BuffShield, ctx.World.Resources.Time.Now) {
		t.Error("shield should expire once adjusted time passes the deadline")
	}
}
