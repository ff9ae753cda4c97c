package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given variant (default: tetris).

Controls:
  Left/Right, h/l, a/d   - Move
  Down, j/s              - Soft drop
  Up, k/w/x              - Rotate clockwise
  z                      - Rotate counter-clockwise
  Space                  - Hard drop
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Q/Ctrl+C               - Quit

Examples:
  tetris play
  tetris play tetris_wide
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tetris list' to see the variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", gameID, "seed", flagSeed, "fps", flagFPS, "config", config.ResolvePath(flagConfig))

	result, err := tui.Run(game, store, runtimeConfig(), logger)
	if err != nil {
		return err
	}
	if result.Score > 0 {
		fmt.Printf("Score: %d  Lines: %d\n", result.Score, result.Lines)
	}
	return nil
}

// runtimeConfig sizes the screen from the current terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
