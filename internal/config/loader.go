package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadClimb loads Turbine Climb configuration.
// Search order: customPath -> ~/.turbine-climb/configs/climb.yaml -> ./configs/climb.yaml -> embedded default.
// Files only need to list the values they change; everything else keeps its default.
func LoadClimb(customPath string) (ClimbConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClimbConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeClimb(customPath, data)
		if err != nil {
			return ClimbConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return ClimbConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files on these paths are skipped rather than fatal.
	for _, path := range []string{userConfigPath("climb.yaml"), filepath.Join("configs", "climb.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeClimb(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeClimb("climb.yaml", defaultClimbYAML)
	if err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeClimb parses data on top of the defaults, choosing the format by file extension.
func decodeClimb(path string, data []byte) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()
	// Lists replace rather than merge, so start from an empty lane list.
	cfg.Lanes = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return ClimbConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ClimbConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if cfg.Lanes == nil {
		cfg.Lanes = DefaultClimbConfig().Lanes
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turbine-climb", "configs", filename)
}
