// Package desktop runs the game in a GLFW window with an OpenGL renderer.
package desktop

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"

	"snakegl/internal/audio"
	"snakegl/internal/config"
	"snakegl/internal/game"
	"snakegl/internal/render"
)

// Options configures one desktop run.
type Options struct {
	Seed   uint64
	Config config.Config
	Mute   bool
	Logger *log.Logger
}

// logger returns the configured logger, or the package default.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Run opens the window and plays until it is closed, Escape is pressed or
// ctx is cancelled. Graphics failures are fatal and returned; audio failures
// only disable sound.
func Run(ctx context.Context, opts Options) (game.Summary, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := opts.logger()
	cfg := opts.Config

	pal, err := game.PaletteFromConfig(cfg.Palette)
	if err != nil {
		return game.Summary{}, err
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		logger.Error("graphics unavailable", "err", err)
		return game.Summary{}, err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := render.Init(); err != nil {
		logger.Error("graphics unavailable", "err", err)
		return game.Summary{}, err
	}
	rend, err := render.New()
	if err != nil {
		logger.Error("renderer setup failed", "err", err)
		return game.Summary{}, fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	logger.Info("renderer ready", "gl", render.Version())

	var player *audio.Player
	if cfg.Audio.Enabled && !opts.Mute {
		player, err = audio.New(cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio init failed (continuing without sound)", "err", err)
			player = nil
		}
	}
	defer player.Close()

	g := game.New(opts.Seed, pal, logger, player)
	input := NewInput()
	logger.Info("game started", "seed", opts.Seed)

	title := ""
	last := glfw.GetTime()
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			logger.Info("shutting down", "reason", context.Cause(ctx))
			window.SetShouldClose(true)
			continue
		default:
		}

		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		for _, a := range input.Poll(window) {
			g.Apply(a)
		}
		if g.Quit() {
			window.SetShouldClose(true)
			continue
		}

		g.Update(time.Duration(dt * float64(time.Second)))

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.Draw(g.Frame(), fbW, fbH)
		if img, changed := g.Overlay(); img != nil {
			if changed {
				rend.SetOverlay(img)
			}
			rend.DrawOverlay()
		}

		if t := g.Title(cfg.Window.Title); t != title {
			window.SetTitle(t)
			title = t
		}

		window.SwapBuffers()
	}

	summary := g.Summary()
	logger.Info("session ended", "games", summary.Games, "best", summary.BestScore)
	return summary, nil
}
