package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeswap/internal/config"
	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

var (
	flagStable  bool
	flagFrom    string
	flagLetters bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a board with its matches and valid swaps",
	Long: `Generates a board (or reads one with --from) and prints it with matched
cells marked by '*', followed by the swaps that would produce a match.

A --from file holds one row of tile letters per line (A = first shape).

Examples:
  shapeswap board --seed 42
  shapeswap board --stable --preset mini
  shapeswap board --from ./board.txt --letters`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagStable, "stable", false, "Settle the board so it holds no matches")
	boardCmd.Flags().StringVar(&flagFrom, "from", "", "Read the board from a file of tile letters")
	boardCmd.Flags().BoolVar(&flagLetters, "letters", false, "Print tile letters instead of symbols")
}

func runBoard(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()
	logger := stderrLogger()

	seed := seedOrNow()
	opts := cascadeOptions(cfg, core.NewRNG(seed))

	var (
		grid *core.Grid
		err  error
	)
	switch {
	case flagFrom != "":
		grid, err = readBoard(flagFrom, cfg.Board.Kinds)
	case flagStable:
		grid, err = core.GenerateStable(cfg.Board.Size, cfg.Board.Size, opts)
	default:
		grid, err = core.InitGrid(cfg.Board.Size, cfg.Board.Kinds, opts.RNG)
	}
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("board ready", "rows", grid.Rows(), "cols", grid.Cols(), "seed", seed)

	matches := core.DetectMatches(grid, cfg.Board.Threshold)
	fmt.Print(formatBoard(grid, cfg, matches, flagLetters))
	fmt.Printf("\nMatched cells: %d\n", matches.Len())

	swaps := core.ValidSwaps(grid, cfg.Board.Threshold)
	fmt.Printf("Valid swaps: %d\n", len(swaps))
	for _, s := range swaps {
		fmt.Printf("  %s\n", s)
	}
}

// readBoard parses a letter grid, skipping blank lines. Every tile must be
// one of the first kinds shapes.
func readBoard(path string, kinds int) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board %s: %w", path, err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", path, err)
	}

	grid, err := core.ParseGrid(rows...)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	if err := grid.CheckKinds(kinds); err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	return grid, nil
}

// formatBoard renders the grid one row per line, marking matched cells.
func formatBoard(g *core.Grid, cfg config.ShapesConfig, marks core.MatchSet, letters bool) string {
	var sb strings.Builder
	for r := range g.Rows() {
		for c, t := range g.Row(r) {
			mark := ' '
			if marks.Has(core.C(r, c)) {
				mark = '*'
			}
			sym := cfg.Symbol(int(t))
			if letters || sym == "" {
				sym = string(t.Letter())
			}
			sb.WriteRune(mark)
			sb.WriteString(sym)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cascadeOptions(cfg config.ShapesConfig, rng core.RNG) core.CascadeOptions {
	return core.CascadeOptions{
		Threshold: cfg.Board.Threshold,
		Kinds:     cfg.Board.Kinds,
		RNG:       rng,
		MaxSteps:  cfg.Cascade.MaxSteps,
	}
}

func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
