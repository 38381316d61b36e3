package game

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"snakegl/internal/audio/synth"
	"snakegl/internal/config"
	"snakegl/internal/engine"
	"snakegl/internal/scene"
)

type recorder struct {
	played []synth.Kind
}

func (r *recorder) Play(k synth.Kind) { r.played = append(r.played, k) }

func (r *recorder) count(k synth.Kind) int {
	n := 0
	for _, p := range r.played {
		if p == k {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(1, scene.DefaultPalette(), log.New(io.Discard), rec), rec
}

func tick(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Update(engine.TickInterval)
	}
}

func TestApplyTurnThenTick(t *testing.T) {
	g, rec := newTestGame(t)

	g.Apply(ActionDown)
	if n := g.Update(engine.TickInterval); n != 1 {
		t.Fatalf("Expected 1 tick, got %d", n)
	}

	if head := g.State().Head(); head != (engine.Point{X: 10, Y: 11}) {
		t.Errorf("Expected head {10 11}, got %v", head)
	}
	if rec.count(synth.Turn) != 1 {
		t.Errorf("Expected one turn sound, got %v", rec.played)
	}

	// A reversal is rejected silently.
	g.Apply(ActionUp)
	if rec.count(synth.Turn) != 1 {
		t.Errorf("Rejected turn should not play a sound, got %v", rec.played)
	}
}

func TestEatingPlaysSound(t *testing.T) {
	g, rec := newTestGame(t)

	tick(g, 5)
	g.Apply(ActionDown)
	tick(g, 5)

	if g.State().Score != 1 {
		t.Fatalf("Expected score 1, got %d", g.State().Score)
	}
	if rec.count(synth.Eat) != 1 {
		t.Errorf("Expected one eat sound, got %v", rec.played)
	}
	if s := g.Summary(); s.BestScore != 1 || s.Length != 2 {
		t.Errorf("Unexpected summary %+v", s)
	}
}

func TestGameOverOverlayAndRestart(t *testing.T) {
	g, rec := newTestGame(t)

	g.Apply(ActionRestart)
	if g.State().Ticks != 0 || rec.count(synth.Restart) != 0 {
		t.Fatal("Restart should be ignored while playing")
	}
	if img, _ := g.Overlay(); img != nil {
		t.Fatal("No overlay expected while playing")
	}

	tick(g, engine.CellCount)
	if !g.State().GameOver {
		t.Fatal("Expected game over at the right wall")
	}
	if rec.count(synth.GameOver) != 1 {
		t.Errorf("Expected one game over sound, got %v", rec.played)
	}

	img, changed := g.Overlay()
	if img == nil || !changed {
		t.Fatal("Expected a fresh overlay on game over")
	}
	if _, changed := g.Overlay(); changed {
		t.Error("Overlay should be uploaded only once per game over")
	}
	if title := g.Title("Snake"); !strings.Contains(title, "Game Over") {
		t.Errorf("Expected game over title, got %q", title)
	}

	g.Apply(ActionRestart)
	st := g.State()
	if st.GameOver || st.Head() != engine.StartCell {
		t.Errorf("Expected fresh game after restart, got %+v", st)
	}
	if rec.count(synth.Restart) != 1 {
		t.Errorf("Expected one restart sound, got %v", rec.played)
	}
	if img, _ := g.Overlay(); img != nil {
		t.Error("Overlay should clear after restart")
	}
	if s := g.Summary(); s.Games != 2 {
		t.Errorf("Expected 2 games, got %d", s.Games)
	}
	if title := g.Title("Snake"); title != "Snake - Score: 0" {
		t.Errorf("Unexpected title %q", title)
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t)
	if g.Quit() {
		t.Fatal("Should not quit initially")
	}
	g.Apply(ActionQuit)
	if !g.Quit() {
		t.Error("Expected quit after ActionQuit")
	}
}

func TestFrameReflectsState(t *testing.T) {
	g, _ := newTestGame(t)
	f := g.Frame()
	if len(f.Rects) != 2 {
		t.Fatalf("Expected head and food rects, got %d", len(f.Rects))
	}
	if f.Rects[0].X != 200 || f.Rects[0].Y != 200 {
		t.Errorf("Expected head at {200 200}, got {%v %v}", f.Rects[0].X, f.Rects[0].Y)
	}
}

func TestNilSoundsIsSilent(t *testing.T) {
	g := New(3, scene.DefaultPalette(), log.New(io.Discard), nil)
	tick(g, engine.CellCount) // plays game over through the no-op sink
	if !g.State().GameOver {
		t.Error("Expected game over")
	}
}

func TestPaletteFromConfig(t *testing.T) {
	pal, err := PaletteFromConfig(config.PaletteConfig{Food: "#0000ff"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pal.Food != (scene.RGB{B: 255}) {
		t.Errorf("Expected blue food, got %v", pal.Food)
	}
	if pal.Head != scene.DefaultPalette().Head {
		t.Errorf("Empty entry should keep default head, got %v", pal.Head)
	}

	if _, err := PaletteFromConfig(config.PaletteConfig{Body: "green"}); err == nil ||
		!strings.Contains(err.Error(), "palette.body") {
		t.Errorf("Expected palette.body error, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger(io.Discard, "chatty"); err == nil {
		t.Error("Expected error for unknown level")
	}

	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g := New(1, scene.DefaultPalette(), logger, nil)
	g.Apply(ActionUp)
	if !strings.Contains(buf.String(), "turn") {
		t.Errorf("Expected debug turn log, got %q", buf.String())
	}
}

func TestSummaryRender(t *testing.T) {
	s := Summary{Games: 3, BestScore: 12, LastScore: 4, Length: 5}
	out := s.Render()
	for _, want := range []string{"Games played: 3", "Best score:   12", "Last length:  5"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in summary:\n%s", want, out)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		a    Action
		want engine.Direction
		ok   bool
	}{
		{ActionUp, engine.Up, true},
		{ActionDown, engine.Down, true},
		{ActionLeft, engine.Left, true},
		{ActionRight, engine.Right, true},
		{ActionRestart, engine.Direction{}, false},
		{ActionNone, engine.Direction{}, false},
	}
	for _, tt := range tests {
		d, ok := tt.a.Direction()
		if d != tt.want || ok != tt.ok {
			t.Errorf("%v: expected %v/%v, got %v/%v", tt.a, tt.want, tt.ok, d, ok)
		}
	}
}
