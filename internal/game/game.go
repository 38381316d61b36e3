// Package game ties the engine, scene and audio together into the playable
// loop body. It owns no window; the desktop shell feeds it actions and
// elapsed time and draws what it returns.
package game

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"snakegl/internal/audio/synth"
	"snakegl/internal/engine"
	"snakegl/internal/scene"
)

// Sounds plays effects. *audio.Player satisfies it, including a nil one.
type Sounds interface {
	Play(kind synth.Kind)
}

type silent struct{}

func (silent) Play(synth.Kind) {}

// Game is one play session.
type Game struct {
	session *engine.Session
	clock   *engine.Clock
	pal     scene.Palette
	log     *log.Logger
	sounds  Sounds
	start   time.Time

	quit    bool
	overlay *image.RGBA
	shown   bool // overlay built for the current game over
}

// New creates a session seeded with seed. sounds may be nil.
func New(seed uint64, pal scene.Palette, logger *log.Logger, sounds Sounds) *Game {
	if sounds == nil {
		sounds = silent{}
	}
	g := &Game{
		session: engine.NewSession(seed, nil),
		clock:   engine.NewClock(engine.TickInterval),
		pal:     pal,
		log:     logger,
		sounds:  sounds,
		start:   time.Now(),
	}
	g.subscribe(g.session.Bus())
	return g
}

func (g *Game) subscribe(bus *engine.EventBus) {
	bus.Subscribe(engine.EventFoodEaten, func(e engine.Event) {
		g.log.Debug("food eaten", "cell", e.Cell, "score", e.Score, "length", e.Len)
		g.sounds.Play(synth.Eat)
	})
	bus.Subscribe(engine.EventGameOver, func(e engine.Event) {
		st := g.session.State()
		g.log.Info("game over", "score", e.Score, "length", e.Len, "ticks", st.Ticks, "won", st.Won)
		g.sounds.Play(synth.GameOver)
	})
	bus.Subscribe(engine.EventRestart, func(e engine.Event) {
		g.log.Info("restart", "game", g.session.Games)
		g.sounds.Play(synth.Restart)
	})
	bus.Subscribe(engine.EventTurn, func(e engine.Event) {
		g.log.Debug("turn", "dir", e.Dir, "head", e.Cell)
		g.sounds.Play(synth.Turn)
	})
}

// Apply handles one player action.
func (g *Game) Apply(a Action) {
	if d, ok := a.Direction(); ok {
		g.session.Turn(d)
		return
	}
	switch a {
	case ActionRestart:
		if g.session.Restart() {
			g.clock.Reset()
		}
	case ActionQuit:
		g.quit = true
	}
}

// Update advances game time by dt and returns how many ticks ran.
func (g *Game) Update(dt time.Duration) int {
	n := g.clock.Advance(dt)
	for i := 0; i < n; i++ {
		g.session.Tick()
	}
	return n
}

// Quit reports whether the player asked to leave.
func (g *Game) Quit() bool { return g.quit }

// State returns the current snapshot.
func (g *Game) State() engine.State { return g.session.Snapshot() }

// Frame builds the drawable frame for the current state.
func (g *Game) Frame() scene.Frame {
	return scene.Build(g.session.State(), g.pal)
}

// Overlay returns the game-over overlay while the game is over. changed is
// true the first time it is returned for a given game over, so the renderer
// uploads it once.
func (g *Game) Overlay() (img *image.RGBA, changed bool) {
	st := g.session.State()
	if !st.GameOver {
		g.shown = false
		return nil, false
	}
	if g.shown {
		return g.overlay, false
	}
	g.overlay = scene.Overlay(scene.OverlayLines(st), g.pal, engine.SurfaceSize, engine.SurfaceSize)
	g.shown = true
	return g.overlay, true
}

// Title is the window title for the current score.
func (g *Game) Title(base string) string {
	st := g.session.State()
	if st.GameOver {
		return fmt.Sprintf("%s - Game Over - Score: %d", base, st.Score)
	}
	return fmt.Sprintf("%s - Score: %d", base, st.Score)
}

// Summary reports the session totals.
func (g *Game) Summary() Summary {
	st := g.session.State()
	return Summary{
		Games:     g.session.Games,
		BestScore: g.session.BestScore,
		LastScore: st.Score,
		Length:    st.Len(),
		Played:    time.Since(g.start).Round(time.Second),
	}
}
