package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/engine"
)

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUDWarn = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBossBar = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
)

// DrawHUD paints the top status line and, when a boss is alive, its
// health bar on the second line of the game area
func DrawHUD(ctx *Context, hud engine.HUD, highScore int) {
	healthStyle := styleHUD
	if hud.MaxHealth > 0 && hud.Health*4 <= hud.MaxHealth {
		healthStyle = styleHUDWarn
	}

	left := fmt.Sprintf(" HP %d/%d  SCORE %d  HI %d  %s",
		hud.Health, hud.MaxHealth, hud.Score, highScore, formatElapsed(hud))
	ctx.text(0, 0, left, healthStyle)

	if len(hud.Buffs) > 0 {
		var parts []string
		for _, b := range hud.Buffs {
			parts = append(parts, fmt.Sprintf("%s %.0fs", b.Kind, b.Remaining.Seconds()))
		}
		s := "[" + strings.Join(parts, "  ") + "] "
		ctx.text(ctx.Width-len(s), 0, s, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	if hud.Boss != nil {
		drawBossBar(ctx, hud.Boss)
	}
}

func formatElapsed(hud engine.HUD) string {
	total := int(hud.Elapsed.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func drawBossBar(ctx *Context, boss *engine.BossStatus) {
	if boss.Max <= 0 {
		return
	}
	barWidth := ctx.Width * 2 / 3
	filled := barWidth * boss.Current / boss.Max

	y := ctx.GameY
	x := (ctx.Width - barWidth) / 2
	for i := 0; i < barWidth; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		ctx.Screen.SetContent(x+i, y, r, nil, styleBossBar)
	}
}
