package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/engine"
)

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMenu     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMenuDim  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// DrawMenu paints the title screen
func DrawMenu(ctx *Context, state *engine.GameState) {
	mid := ctx.Height / 2
	ctx.textCentered(mid-4, "N O V A - F I G H T E R", styleTitle)
	ctx.textCentered(mid-1, fmt.Sprintf("High Score %d    Credits %d", state.HighScore(), state.Currency()), styleMenu)
	ctx.textCentered(mid+1, "[enter] launch", styleMenu)
	ctx.textCentered(mid+2, "[b] hangar", styleMenu)
	ctx.textCentered(mid+3, "[m] sound   [q] quit", styleMenuDim)
	ctx.textCentered(mid+5, fmt.Sprintf("craft: %s", content.ByID(state.Selected()).Name), styleMenuDim)
}

// DrawShop paints the craft hangar. cursor indexes the catalog entry
// under selection
func DrawShop(ctx *Context, state *engine.GameState, cursor int) {
	catalog := content.Catalog()
	top := ctx.Height/2 - len(catalog) - 2

	ctx.textCentered(top, "H A N G A R", styleTitle)
	ctx.textCentered(top+1, fmt.Sprintf("Credits %d", state.Currency()), styleMenu)

	for i, craft := range catalog {
		line := fmt.Sprintf("  %-10s HP %-4d SPD %-4.1f  ", craft.Name, craft.Health, craft.Speed)
		switch {
		case state.Selected() == craft.ID:
			line += "[active]  "
		case state.IsOwned(craft.ID):
			line += "[owned]   "
		default:
			line += fmt.Sprintf("%-6d cr ", craft.Price)
		}

		style := styleMenu
		if i == cursor {
			style = styleSelected
		} else if !state.IsOwned(craft.ID) && state.Currency() < craft.Price {
			style = styleMenuDim
		}
		ctx.textCentered(top+3+i*2, line, style)
		if i == cursor {
			ctx.textCentered(top+4+i*2, craft.Description, styleMenuDim)
		}
	}

	ctx.textCentered(top+4+len(catalog)*2, "[enter] buy/select   [esc] back", styleMenuDim)
}

// DrawPauseOverlay paints on top of the frozen playfield
func DrawPauseOverlay(ctx *Context) {
	mid := ctx.Height / 2
	ctx.textCentered(mid-1, "P A U S E D", styleTitle)
	ctx.textCentered(mid+1, "[esc] resume   [m] abandon run", styleMenu)
}

// DrawCountdown paints the resume digit over the playfield
func DrawCountdown(ctx *Context, digit int) {
	ctx.textCentered(ctx.Height/2, fmt.Sprintf("  %d  ", digit), styleSelected)
}

// DrawGameOver paints the terminal screen with the run summary
func DrawGameOver(ctx *Context, state *engine.GameState) {
	mid := ctx.Height / 2
	ctx.textCentered(mid-3, "G A M E   O V E R", styleTitle)
	ctx.textCentered(mid-1, fmt.Sprintf("Score %d", state.LastScore()), styleMenu)
	if state.LastScore() >= state.HighScore() && state.LastScore() > 0 {
		ctx.textCentered(mid, "new high score", styleSelected)
	} else {
		ctx.textCentered(mid, fmt.Sprintf("High Score %d", state.HighScore()), styleMenuDim)
	}
	ctx.textCentered(mid+2, "[enter] retry   [esc] menu", styleMenu)
}
