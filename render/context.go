package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/constant"
)

// Context maps the logical playfield onto the terminal and carries the
// screen handle for the painters. Recomputed on resize
type Context struct {
	Screen tcell.Screen

	// Terminal dimensions
	Width, Height int

	// Game area offset and size in terminal cells
	GameX, GameY          int
	GameWidth, GameHeight int

	// Logical pixels per terminal cell
	scaleX, scaleY float64
}

// NewContext creates a render context for the screen's current size
func NewContext(screen tcell.Screen) *Context {
	ctx := &Context{Screen: screen}
	w, h := screen.Size()
	ctx.Layout(w, h)
	return ctx
}

// Layout recomputes the game area for the terminal size. One line is
// reserved at the top for the HUD and one at the bottom for status
func (ctx *Context) Layout(width, height int) {
	ctx.Width = width
	ctx.Height = height

	gameH := height - 2
	if gameH < 1 {
		gameH = 1
	}
	gameW := width
	if gameW < 1 {
		gameW = 1
	}

	ctx.GameX = 0
	ctx.GameY = 1
	ctx.GameWidth = gameW
	ctx.GameHeight = gameH
	ctx.scaleX = constant.PlayfieldWidth / float64(gameW)
	ctx.scaleY = constant.PlayfieldHeight / float64(gameH)
}

// Cell converts logical playfield pixels to a terminal cell
func (ctx *Context) Cell(x, y float64) (int, int) {
	cx := ctx.GameX + int(x/ctx.scaleX)
	cy := ctx.GameY + int(y/ctx.scaleY)
	return cx, cy
}

// CellSpan converts a logical width to a cell span, at least one cell
func (ctx *Context) CellSpan(w float64) int {
	span := int(w / ctx.scaleX)
	if span < 1 {
		span = 1
	}
	return span
}

// inGameArea reports whether a terminal cell lies inside the game area
func (ctx *Context) inGameArea(cx, cy int) bool {
	return cx >= ctx.GameX && cx < ctx.GameX+ctx.GameWidth &&
		cy >= ctx.GameY && cy < ctx.GameY+ctx.GameHeight
}

// put draws a single rune clipped to the game area
func (ctx *Context) put(cx, cy int, r rune, style tcell.Style) {
	if ctx.inGameArea(cx, cy) {
		ctx.Screen.SetContent(cx, cy, r, nil, style)
	}
}

// text draws a string at an absolute terminal position
func (ctx *Context) text(cx, cy int, s string, style tcell.Style) {
	for i, r := range s {
		if cx+i >= ctx.Width {
			break
		}
		ctx.Screen.SetContent(cx+i, cy, r, nil, style)
	}
}

// textCentered draws a string centered on the terminal width
func (ctx *Context) textCentered(cy int, s string, style tcell.Style) {
	ctx.text((ctx.Width-len(s))/2, cy, s, style)
}
