package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-fighter/audio"
	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/content"
	"github.com/lixenwraith/nova-fighter/core"
	"github.com/lixenwraith/nova-fighter/engine"
	"github.com/lixenwraith/nova-fighter/persist"
	"github.com/lixenwraith/nova-fighter/render"
	"github.com/lixenwraith/nova-fighter/system"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug log to ./log")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nNOVA-FIGHTER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	game := newGame(screen)
	game.run()
}

// game ties the simulation context to the terminal collaborators
type game struct {
	screen    tcell.Screen
	ctx       *engine.GameContext
	renderCtx *render.Context
	store     *persist.Store
	audio     *audio.Engine

	provider engine.TimeProvider

	shopCursor int
	quit       bool
}

func newGame(screen tcell.Screen) *game {
	provider := engine.NewMonotonicTimeProvider()
	ctx := engine.NewGameContext(provider)

	g := &game{
		screen:    screen,
		ctx:       ctx,
		renderCtx: render.NewContext(screen),
		store:     persist.NewStore(),
		provider:  provider,
	}

	profile := g.store.Load()
	ctx.State.LoadProgress(profile.HighScore, profile.Currency, profile.Owned, profile.Selected)

	// Audio degrades silently: a nil engine means a nil cue player
	var cuePlayer system.CuePlayer
	if audioEngine, err := audio.NewEngine(); err == nil {
		audioEngine.SetMuted(*muteFlag)
		g.audio = audioEngine
		cuePlayer = audioEngine
	} else {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}

	world := ctx.World
	ctx.AddSystem(system.NewBuffSystem(world))
	ctx.AddSystem(system.NewSpawnSystem(world))
	ctx.AddSystem(system.NewMovementSystem(world))
	ctx.AddSystem(system.NewWeaponSystem(world))
	ctx.AddSystem(system.NewCollisionSystem(world))
	ctx.AddSystem(system.NewParticleSystem(world))
	ctx.AddSystem(system.NewProgressSystem(world))
	ctx.AddSystem(system.NewAudioSystem(world, cuePlayer))
	ctx.AddSystem(system.NewCullSystem(world))

	return g
}

func (g *game) run() {
	if g.audio != nil {
		defer g.audio.Close()
	}

	// Input handling goroutine; the tracker and queue are safe for
	// concurrent producers
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- g.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(constant.FrameDuration)
	defer ticker.Stop()

	for !g.quit {
		// Drain all pending terminal events without blocking
	drain:
		for {
			select {
			case ev := <-events:
				g.handleEvent(ev)
			default:
				break drain
			}
		}

		g.advance()
		g.draw()

		<-ticker.C
	}
}

// advance runs the per-frame work for the current phase. Only playing
// ticks the simulation; paused and countdown mutate no entities, but
// pending events still flow so queued audio cues are not lost
func (g *game) advance() {
	state := g.ctx.State

	switch state.Phase() {
	case core.PhasePlaying:
		g.ctx.Tick()
		// FinalizeRun flips the phase inside the tick itself, before
		// the queued game-over event can be drained, so the phase is
		// the signal to persist on
		if state.Phase() == core.PhaseGameOver {
			g.saveProfile()
		}
	case core.PhaseCountdown:
		state.TickCountdown(g.provider.Now(), g.ctx.Clock)
		g.ctx.DrainEvents()
	default:
		g.ctx.DrainEvents()
	}
}

func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		g.renderCtx.Layout(w, h)
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(ev)
	}
}

func (g *game) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.quit = true
		return
	}

	state := g.ctx.State

	// Global mute toggle; 'm' means abandon while paused
	if ev.Rune() == 'm' && state.Phase() != core.PhasePaused {
		g.toggleMute()
		return
	}
	switch state.Phase() {
	case core.PhasePlaying:
		if g.ctx.Tracker.HandleKey(ev, g.provider.Now()) {
			return
		}
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'p' {
			state.Pause(g.ctx.Clock)
		}

	case core.PhasePaused:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'p':
			state.BeginCountdown(g.provider.Now())
		case ev.Rune() == 'm':
			state.AbandonRun(g.ctx.Clock)
		}

	case core.PhaseMenu:
		switch {
		case ev.Key() == tcell.KeyEnter:
			if state.StartRun() {
				g.ctx.ResetRun()
			}
		case ev.Rune() == 'b':
			state.EnterShop()
			g.shopCursor = 0
		case ev.Rune() == 'q':
			g.quit = true
		}

	case core.PhaseShop:
		g.handleShopKey(ev)

	case core.PhaseGameOver:
		switch ev.Key() {
		case tcell.KeyEnter:
			if state.StartRun() {
				g.ctx.ResetRun()
			}
		case tcell.KeyEscape:
			state.ReturnToMenu()
		}
	}
}

func (g *game) handleShopKey(ev *tcell.EventKey) {
	state := g.ctx.State
	catalog := content.Catalog()

	switch {
	case ev.Key() == tcell.KeyEscape:
		state.LeaveShop()
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		if g.shopCursor > 0 {
			g.shopCursor--
		}
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		if g.shopCursor < len(catalog)-1 {
			g.shopCursor++
		}
	case ev.Key() == tcell.KeyEnter:
		craft := catalog[g.shopCursor]
		changed := false
		if state.IsOwned(craft.ID) {
			changed = state.Select(craft.ID)
		} else {
			changed = state.Purchase(craft)
		}
		if changed {
			g.saveProfile()
		}
	}
}

func (g *game) toggleMute() {
	if g.audio != nil {
		g.audio.SetMuted(!g.audio.Muted())
	}
}

func (g *game) saveProfile() {
	state := g.ctx.State
	g.store.Save(persist.Profile{
		HighScore: state.HighScore(),
		Currency:  state.Currency(),
		Owned:     state.Owned(),
		Selected:  state.Selected(),
	})
}

func (g *game) draw() {
	g.screen.Clear()
	state := g.ctx.State

	switch state.Phase() {
	case core.PhaseMenu:
		render.DrawMenu(g.renderCtx, state)

	case core.PhaseShop:
		render.DrawShop(g.renderCtx, state, g.shopCursor)

	case core.PhasePlaying:
		render.DrawPlayfield(g.renderCtx, g.ctx.World)
		render.DrawHUD(g.renderCtx, g.ctx.Snapshot(), state.HighScore())

	case core.PhasePaused:
		render.DrawPlayfield(g.renderCtx, g.ctx.World)
		render.DrawHUD(g.renderCtx, g.ctx.Snapshot(), state.HighScore())
		render.DrawPauseOverlay(g.renderCtx)

	case core.PhaseCountdown:
		render.DrawPlayfield(g.renderCtx, g.ctx.World)
		render.DrawHUD(g.renderCtx, g.ctx.Snapshot(), state.HighScore())
		render.DrawCountdown(g.renderCtx, state.CountdownDigit())

	case core.PhaseGameOver:
		render.DrawPlayfield(g.renderCtx, g.ctx.World)
		render.DrawGameOver(g.renderCtx, state)
	}

	g.screen.Show()
}
