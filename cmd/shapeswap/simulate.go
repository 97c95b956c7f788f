package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

var (
	flagMoves   int
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay random valid swaps and print every cascade step",
	Long: `Starts from a stable board and plays --moves random swaps chosen from
the valid ones. Each cascade step is printed as it is pulled from the
cascade sequence; with --verbose the board after every step is shown.

Examples:
  shapeswap simulate --seed 1 --moves 3
  shapeswap simulate --preset easy --moves 10 --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 5, "Number of swaps to play")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every step")
	simulateCmd.Flags().BoolVar(&flagLetters, "letters", false, "Print tile letters instead of symbols")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig()
	logger := stderrLogger()

	seed := seedOrNow()
	rng := core.NewRNG(seed)
	opts := cascadeOptions(cfg, rng)

	grid, err := core.GenerateStable(cfg.Board.Size, cfg.Board.Size, opts)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("simulation start", "seed", seed, "size", cfg.Board.Size, "moves", flagMoves)

	fmt.Println("Start:")
	fmt.Print(formatBoard(grid, cfg, core.MatchSet{}, flagLetters))

	played, totalSteps := 0, 0
	for move := 1; move <= flagMoves; move++ {
		swaps := core.ValidSwaps(grid, cfg.Board.Threshold)
		if len(swaps) == 0 {
			fmt.Println("\nNo valid swaps left.")
			break
		}
		s := swaps[rng.Intn(len(swaps))]

		ok, err := core.TrySwap(grid, s.A, s.B, cfg.Board.Threshold)
		if err != nil {
			fail("%v", err)
		}
		if !ok {
			// ValidSwaps only lists swaps that match.
			fail("swap %s did not match", s)
		}
		played++
		fmt.Printf("\nMove %d: swap %s (%d options)\n", move, s, len(swaps))

		steps := 0
		for step, err := range core.Resolve(grid, opts) {
			if err != nil {
				logger.Warn("cascade stopped", "move", move, "err", err)
				fmt.Printf("  stopped: %v\n", err)
				break
			}
			steps++
			totalSteps++
			refills := 0
			for _, f := range step.Falls {
				if f.Refill {
					refills++
				}
			}
			fmt.Printf("  step %d: cleared %d, moved %d, refilled %d\n",
				step.Index, step.Matches.Len(), len(step.Falls)-refills, refills)
			if flagVerbose {
				fmt.Print(indent(formatBoard(step.Grid, cfg, core.DetectMatches(step.Grid, cfg.Board.Threshold), flagLetters)))
			}
		}
		logger.Debug("move resolved", "move", move, "steps", steps)
	}

	fmt.Println("\nFinal:")
	fmt.Print(formatBoard(grid, cfg, core.MatchSet{}, flagLetters))
	fmt.Printf("\nMoves played: %d, cascade steps: %d\n", played, totalSteps)
	logger.Info("simulation done", "moves", played, "steps", totalSteps)
}

func indent(s string) string {
	out := make([]byte, 0, len(s)+len(s)/8)
	start := true
	for i := 0; i < len(s); i++ {
		if start {
			out = append(out, "    "...)
		}
		out = append(out, s[i])
		start = s[i] == '\n'
	}
	return string(out)
}
