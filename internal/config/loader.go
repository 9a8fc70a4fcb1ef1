package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the Pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "pong.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file layered over the defaults.
func loadFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}
