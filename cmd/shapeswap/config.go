package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeswap/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration the game would use after applying the search
path and --preset. With --defaults the embedded default file is printed
instead, ready to copy to ~/.shapeswap/configs/shapes.yaml.

Search order:
  --config path
  ~/.shapeswap/configs/shapes.yaml
  ./configs/shapes.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadGameConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
