package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapeswap/internal/core"
	"github.com/vovakirdan/shapeswap/internal/games/shapes"
	"github.com/vovakirdan/shapeswap/internal/platform/tui"
	"github.com/vovakirdan/shapeswap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without --preset a board menu is shown first.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Pick a tile, then pick a neighbour to swap
  Mouse click  - Pick the clicked tile
  Esc          - Drop the current pick
  P            - Pause
  R            - New board
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  shapeswap play
  shapeswap play shapes --preset hard
  shapeswap play --config ./my-shapes.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := shapes.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'shapeswap list' to see available games.", gameID)
	}

	// Get terminal size early for the preset menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if gameID == shapes.GameID {
		if flagPreset == "" {
			preset, err := tui.RunPresetSelector(cfg)
			if err != nil {
				fail("%v", err)
			}
			if preset == nil {
				return
			}
			flagPreset = string(*preset)
		}
		// Fail before entering the alt screen if the config is bad.
		loadGameConfig()
	}

	logger, closer := fileLogger()
	shapes.SetLogger(logger)

	err := playGame(gameID, cfg, logger)
	if err != nil {
		logger.Error("tui exited", "err", err)
	}
	// fail exits without running deferred calls, so close first.
	closer.Close()
	if err != nil {
		fail("%v", err)
	}
}

func playGame(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, cfg, logger)
}
