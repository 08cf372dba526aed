package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and data directories.
const AppName = "tui-snake"

const configFile = "snake.yaml"

// userConfigDir is swapped out in tests.
var userConfigDir = os.UserConfigDir

// Load loads the configuration and reports where it came from.
// Search order: customPath -> <user config dir>/tui-snake/snake.yaml ->
// ./configs/snake.yaml -> embedded default -> Default().
//
// Files are decoded on top of Default(), so a file only needs the keys it
// changes. An explicit customPath that cannot be read or parsed is an error;
// the other locations are skipped when missing or broken.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if p := userConfigPath(); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := parse(defaultSnakeYAML); err == nil {
		return cfg, "embedded", nil
	}
	return Default(), "builtin", nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file, or empty if the config
// directory is unavailable.
func userConfigPath() string {
	dir, err := userConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, configFile)
}
