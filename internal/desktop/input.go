package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"snakegl/internal/game"
)

// keyActions lists every recognised key. Anything else is ignored.
var keyActions = []struct {
	key    glfw.Key
	action game.Action
}{
	{glfw.KeyUp, game.ActionUp},
	{glfw.KeyDown, game.ActionDown},
	{glfw.KeyLeft, game.ActionLeft},
	{glfw.KeyRight, game.ActionRight},
	{glfw.KeyR, game.ActionRestart},
	{glfw.KeyEscape, game.ActionQuit},
}

// Input turns held keys into edge-triggered actions.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll returns the actions whose keys went down since the last call, in
// keyActions order.
func (in *Input) Poll(window *glfw.Window) []game.Action {
	var out []game.Action
	for _, ka := range keyActions {
		if in.JustPressed(window, ka.key) {
			out = append(out, ka.action)
		}
	}
	return out
}
