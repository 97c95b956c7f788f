package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under the home directory.
const AppDir = ".shapeswap"

// LoadShapes loads Shape Swap configuration.
// Search order: customPath -> ~/.shapeswap/configs/shapes.yaml -> ./configs/shapes.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadShapes(customPath string) (ShapesConfig, error) {
	cfg := DefaultShapesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decodeOver(&cfg, data); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shapes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decodeOver(&cfg, data); err == nil {
				return cfg, nil
			}
			cfg = DefaultShapesConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shapes.yaml")); err == nil {
		if err := decodeOver(&cfg, data); err == nil {
			return cfg, nil
		}
		cfg = DefaultShapesConfig()
	}

	// Use embedded default YAML
	if err := decodeOver(&cfg, defaultShapesYAML); err != nil {
		return DefaultShapesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeOver unmarshals data on top of cfg. Lists are replaced, not merged.
func decodeOver(cfg *ShapesConfig, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders cfg as YAML.
func Marshal(cfg ShapesConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
