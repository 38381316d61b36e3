// snakegl is a grid Snake game drawn with OpenGL.
//
// Usage:
//
//	snakegl [flags]
//
// Controls:
//
//	Arrow keys - Steer
//	R          - Restart (after game over)
//	Esc        - Quit
//
// Flags:
//
//	--seed <value>       - RNG seed for food placement (0 = random based on time)
//	--config <path>      - Path to a settings YAML
//	--log-level <level>  - debug, info, warn or error (overrides the config)
//	--mute               - Disable sound effects
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"snakegl/internal/config"
	"snakegl/internal/desktop"
	"snakegl/internal/game"
)

var (
	flagSeed     uint64
	flagConfig   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakegl",
	Short: "Snake on a 20x20 grid, rendered with OpenGL",
	Long: `snakegl opens a 400x400 window and plays classic Snake.

Steer with the arrow keys. Eating food grows the snake by one and scores a
point. Hitting a wall or the snake's own body ends the game; press R to play
again or Esc to quit.

Examples:
  snakegl
  snakegl --seed 42
  snakegl --config ./my-snakegl.yaml --log-level debug
  snakegl --mute`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := game.NewLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := desktop.Run(ctx, desktop.Options{
		Seed:   seed,
		Config: cfg,
		Mute:   flagMute,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Render())
	return nil
}

