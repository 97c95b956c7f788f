// Package config provides YAML-based configuration loading and presets for
// the Shape Swap game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ShapesConfig contains all configuration for the Shape Swap game.
type ShapesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Cascade CascadeConfig `yaml:"cascade"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid and the match rule.
type BoardConfig struct {
	Size        int  `yaml:"size"`         // Board is Size x Size
	Kinds       int  `yaml:"kinds"`        // Number of distinct shapes
	Threshold   int  `yaml:"threshold"`    // Minimum run length that matches
	StableStart bool `yaml:"stable_start"` // Settle the first board so it holds no matches
}

// CascadeConfig defines how cascades are paced and bounded.
type CascadeConfig struct {
	StepTicks int `yaml:"step_ticks"` // Ticks between cascade steps (12 = 200ms at 60fps)
	MaxSteps  int `yaml:"max_steps"`  // Safety cap on steps per cascade, 0 = none
}

// DisplayConfig defines how tiles are drawn.
type DisplayConfig struct {
	Symbols []string `yaml:"symbols"` // One glyph per kind, in tile order
}

// Limits enforced by Validate.
const (
	MinSize      = 2
	MaxSize      = 64
	MinKinds     = 2
	MaxKinds     = 8
	MinThreshold = 2
)

// Validate reports every invalid field at once.
func (c ShapesConfig) Validate() error {
	var errs []error

	if c.Board.Size < MinSize || c.Board.Size > MaxSize {
		errs = append(errs, fmt.Errorf("board.size %d: must be between %d and %d", c.Board.Size, MinSize, MaxSize))
	}
	if c.Board.Kinds < MinKinds || c.Board.Kinds > MaxKinds {
		errs = append(errs, fmt.Errorf("board.kinds %d: must be between %d and %d", c.Board.Kinds, MinKinds, MaxKinds))
	}
	if c.Board.Threshold < MinThreshold || c.Board.Threshold > c.Board.Size {
		errs = append(errs, fmt.Errorf("board.threshold %d: must be between %d and board.size", c.Board.Threshold, MinThreshold))
	}
	if c.Cascade.StepTicks < 0 {
		errs = append(errs, fmt.Errorf("cascade.step_ticks %d: must not be negative", c.Cascade.StepTicks))
	}
	if c.Cascade.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("cascade.max_steps %d: must not be negative", c.Cascade.MaxSteps))
	}
	if n := len(c.Display.Symbols); n > 0 && n < c.Board.Kinds {
		errs = append(errs, fmt.Errorf("display.symbols: %d glyphs for %d kinds", n, c.Board.Kinds))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid shapes config: %w", errors.Join(errs...))
	}
	return nil
}

// Symbol returns the glyph for the 1-based tile kind, or "" if none is configured.
func (c ShapesConfig) Symbol(kind int) string {
	if kind < 1 || kind > len(c.Display.Symbols) {
		return ""
	}
	return c.Display.Symbols[kind-1]
}

// Preset represents a named board setup.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetMini   Preset = "mini"
)

// PresetInfo describes a preset for menus and help output.
type PresetInfo struct {
	Preset      Preset
	Description string
}

// Presets lists the presets in menu order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{PresetEasy, "16x16, 3 shapes, runs of 3"},
		{PresetNormal, "16x16, 4 shapes, runs of 4"},
		{PresetHard, "16x16, 6 shapes, runs of 4"},
		{PresetMini, "8x8, 4 shapes, runs of 3"},
	}
}

// ParsePreset converts a flag value to a Preset. Empty input is PresetNormal.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard, PresetMini:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want easy, normal, hard or mini)", s)
	}
}

// ApplyShapesPreset modifies the board section of cfg for a preset.
// Cascade and display settings are left as loaded.
func ApplyShapesPreset(cfg *ShapesConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Board.Size = 16
		cfg.Board.Kinds = 3
		cfg.Board.Threshold = 3
	case PresetNormal:
		cfg.Board.Size = 16
		cfg.Board.Kinds = 4
		cfg.Board.Threshold = 4
	case PresetHard:
		cfg.Board.Size = 16
		cfg.Board.Kinds = 6
		cfg.Board.Threshold = 4
	case PresetMini:
		cfg.Board.Size = 8
		cfg.Board.Kinds = 4
		cfg.Board.Threshold = 3
	}
}
