package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/component"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/engine"
)

var (
	styleStarDim = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleStar    = tcell.StyleDefault.Foreground(tcell.ColorSilver)

	styleEnemyBasic = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEnemyFast  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleEnemyHeavy = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleBoss       = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	stylePlayerShot = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// particleStyles maps burst color hints to terminal styles
var particleStyles = map[component.ParticleColor]tcell.Style{
	component.ParticleWhite:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	component.ParticleRed:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	component.ParticleBlue:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	component.ParticleGreen:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	component.ParticleOrange: tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

// powerUpGlyphs shows the buff letter inside the pickup
var powerUpGlyphs = map[component.BuffKind]rune{
	component.BuffRapidFire:  'R',
	component.BuffShield:     'S',
	component.BuffSpreadShot: 'W',
}

// DrawPlayfield paints every live entity. Read-only over the world;
// draw order is particles, pickups, bullets, enemies, player so the
// craft is never occluded
func DrawPlayfield(ctx *Context, world *engine.World) {
	c := &world.Components

	drawStarfield(ctx, world.Resources.Time.Elapsed())

	for _, e := range c.Particle.All() {
		particle, ok := c.Particle.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		style := particleStyles[particle.Color]
		if particle.Life < 0.35 {
			style = style.Dim(true)
		}
		cx, cy := ctx.Cell(pos.X, pos.Y)
		ctx.put(cx, cy, '*', style)
	}

	for _, e := range c.PowerUp.All() {
		powerUp, ok := c.PowerUp.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		ctx.put(cx, cy, powerUpGlyphs[powerUp.Kind],
			tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	for _, e := range c.Bullet.All() {
		bullet, ok := c.Bullet.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		if bullet.Owner == component.OwnerPlayer {
			ctx.put(cx, cy, '|', stylePlayerShot)
		} else {
			ctx.put(cx, cy, '•', styleEnemyShot)
		}
	}

	for _, e := range c.Enemy.All() {
		enemy, ok := c.Enemy.Get(e)
		if !ok {
			continue
		}
		pos, ok := c.Position.Get(e)
		if !ok {
			continue
		}
		drawEnemy(ctx, enemy.Kind, pos)
	}

	drawPlayer(ctx, world)
}

// drawStarfield paints the scrolling background. Each star's column and
// base row come from a fixed hash of its index so the field is stable
// frame to frame; three depth layers drift downward at different rates
// for parallax. Adjusted time drives the drift, so the field freezes
// with the rest of the playfield while paused
func drawStarfield(ctx *Context, elapsed time.Duration) {
	for i := 0; i < constant.StarCount; i++ {
		h := uint64(i+1) * 0x9E3779B97F4A7C15
		x := float64(h % uint64(constant.PlayfieldWidth))
		layer := float64(i%3 + 1)
		drift := elapsed.Seconds() * constant.StarScrollSpeed * layer
		y := math.Mod(float64((h>>20)%uint64(constant.PlayfieldHeight))+drift, constant.PlayfieldHeight)

		glyph, style := '.', styleStarDim
		if i%3 == 2 {
			glyph, style = '·', styleStar
		}
		cx, cy := ctx.Cell(x, y)
		ctx.put(cx, cy, glyph, style)
	}
}

func drawEnemy(ctx *Context, kind component.EnemyKind, pos component.Position) {
	switch kind {
	case component.EnemyBoss:
		// The boss spans multiple cells; fill its box
		left, top := ctx.Cell(pos.X, pos.Y)
		right, bottom := ctx.Cell(pos.X+pos.W, pos.Y+pos.H)
		for cy := top; cy <= bottom; cy++ {
			for cx := left; cx <= right; cx++ {
				ctx.put(cx, cy, '▓', styleBoss)
			}
		}
	case component.EnemyFast:
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		ctx.put(cx, cy, 'v', styleEnemyFast)
	case component.EnemyHeavy:
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		ctx.put(cx, cy, 'W', styleEnemyHeavy)
	default:
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		ctx.put(cx, cy, 'v', styleEnemyBasic)
	}
}

func drawPlayer(ctx *Context, world *engine.World) {
	c := &world.Components
	playerEnt := world.Resources.Player.Entity

	player, ok := c.Player.Get(playerEnt)
	if !ok {
		return
	}
	pos, ok := c.Position.Get(playerEnt)
	if !ok {
		return
	}

	style := tcell.StyleDefault.Foreground(content.ByID(player.CraftID).Color).Bold(true)

	// Shield halo when the buff is active
	if buff, ok := c.Buff.Get(playerEnt); ok &&
		buff.Active(component.BuffShield, world.Resources.Time.Now) {
		cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
		halo := tcell.StyleDefault.Foreground(tcell.ColorBlue)
		ctx.put(cx-1, cy, '(', halo)
		ctx.put(cx+1, cy, ')', halo)
	}

	cx, cy := ctx.Cell(pos.CenterX(), pos.CenterY())
	ctx.put(cx, cy, '▲', style)
}
