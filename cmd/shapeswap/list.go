package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeswap/internal/config"
	"github.com/vovakirdan/shapeswap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the registered games and the board presets.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Presets:")
	for _, p := range config.Presets() {
		fmt.Printf("  %-7s %s\n", p.Preset, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'shapeswap play' to start.")
}
