package config

import (
	_ "embed"
)

//go:embed defaults/shapes.yaml
var defaultShapesYAML []byte

// DefaultShapesConfig returns the default Shape Swap configuration.
func DefaultShapesConfig() ShapesConfig {
	return ShapesConfig{
		Board: BoardConfig{
			Size:        16,
			Kinds:       4,
			Threshold:   4,
			StableStart: false,
		},
		Cascade: CascadeConfig{
			StepTicks: 12,
			MaxSteps:  1000,
		},
		Display: DisplayConfig{
			Symbols: []string{"●", "▲", "■", "⬟", "⬢", "★", "◆", "✚"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShapesYAML
}
