// shapeswap is a match-4 tile puzzle for the terminal.
//
// Usage:
//
//	shapeswap list              - List available games
//	shapeswap play [game]       - Play (default: shapes)
//	shapeswap board             - Print a generated board and its matches
//	shapeswap simulate          - Autoplay swaps and print every cascade step
//	shapeswap config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Load a custom shapes.yaml
//	--preset <name>     - Board preset: easy, normal, hard, mini
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file used while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeswap/internal/config"
	"github.com/vovakirdan/shapeswap/internal/games/shapes"
	"github.com/vovakirdan/shapeswap/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapeswap",
	Short: "Shape Swap - a match-4 tile puzzle in your terminal",
	Long: `Shape Swap is a tile-matching puzzle. Swap two neighbouring shapes to
line up four or more of a kind in a row or column. Matched shapes vanish,
the ones above fall into the gaps, new shapes drop in from the top, and any
new lines they form clear too until the board settles.

Available commands:
  list      - Show all available games
  play      - Play (default game: shapes)
  board     - Print a generated board and its matches
  simulate  - Autoplay random valid swaps headlessly
  config    - Print the effective configuration

Examples:
  shapeswap play
  shapeswap play --preset mini --seed 42
  shapeswap board --stable
  shapeswap simulate --moves 5 --verbose`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shapes config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset: easy, normal, hard, mini")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.shapeswap/shapeswap.log", "Log file used while playing")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// applyGameFlags hands the config path and preset to the shapes package.
func applyGameFlags() {
	shapes.SetConfigPath(flagConfig)
	if flagPreset == "" {
		shapes.SetPreset("")
		return
	}
	p, err := config.ParsePreset(flagPreset)
	if err != nil {
		fail("%v", err)
	}
	shapes.SetPreset(p)
}

// loadGameConfig applies the flags and loads the validated config.
func loadGameConfig() config.ShapesConfig {
	applyGameFlags()
	cfg, err := shapes.LoadConfig()
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// stderrLogger returns the logger for headless commands.
func stderrLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return logger
}

// fileLogger returns the logger used while the alt-screen TUI owns the terminal.
func fileLogger() (*log.Logger, io.Closer) {
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	logger, closer, err := logging.OpenFile(path, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}
