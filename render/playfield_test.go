package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/engine"
)

func newTestScreen(t *testing.T) (tcell.SimulationScreen, *Context) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 40)
	ctx := NewContext(screen)
	ctx.Layout(80, 40)
	return screen, ctx
}

// starCells returns the positions of painted starfield glyphs
func starCells(screen tcell.SimulationScreen) map[int]bool {
	cells, w, _ := screen.GetContents()
	out := make(map[int]bool)
	for i, cell := range cells {
		if len(cell.Runes) == 0 {
			continue
		}
		if r := cell.Runes[0]; r == '.' || r == '·' {
			out[i%w<<16|i/w] = true
		}
	}
	return out
}

func TestDrawPlayfield_StarfieldBackground(t *testing.T) {
	screen, renderCtx := newTestScreen(t)
	defer screen.Fini()

	provider := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	game := engine.NewGameContext(provider)
	game.State.StartRun()
	game.ResetRun()

	DrawPlayfield(renderCtx, game.World)
	screen.Show()

	first := starCells(screen)
	if len(first) == 0 {
		t.Fatal("playfield should paint a starfield background")
	}

	// Adjusted time drives the scroll, so a later frame shifts stars
	provider.Advance(5 * time.Second)
	game.World.Resources.Time.Now = game.Clock.Now()

	screen.Clear()
	DrawPlayfield(renderCtx, game.World)
	screen.Show()

	second := starCells(screen)
	if len(second) == 0 {
		t.Fatal("starfield should persist across frames")
	}

	same := true
	for pos := range first {
		if !second[pos] {
			same = false
			break
		}
	}
	if same && len(first) == len(second) {
		t.Error("starfield should scroll as adjusted time advances")
	}
}

func TestDrawPlayfield_PlayerGlyphDrawn(t *testing.T) {
	screen, renderCtx := newTestScreen(t)
	defer screen.Fini()

	provider := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	game := engine.NewGameContext(provider)
	game.State.StartRun()
	game.ResetRun()

	DrawPlayfield(renderCtx, game.World)
	screen.Show()

	cells, _, _ := screen.GetContents()
	found := false
	for _, cell := range cells {
		if len(cell.Runes) > 0 && cell.Runes[0] == '▲' {
			found = true
			break
		}
	}
	if !found {
		t.Error("player craft glyph should be painted")
	}
}
