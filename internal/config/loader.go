package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLightsOut loads Lights Out configuration.
// Search order: customPath -> ~/.arcade/configs/lightsout.yaml -> ./configs/lightsout.yaml -> embedded default
func LoadLightsOut(customPath string) (LightsOutConfig, error) {
	cfg, err := load("lightsout.yaml", customPath, defaultLightsOutYAML, DefaultLightsOutConfig())
	if err != nil {
		return cfg, err
	}
	return cfg.Normalize(), nil
}

// load decodes the first readable config in search order over fallback, so
// keys a file leaves out keep their default. Only an explicit customPath may
// fail; every other source falls through.
func load[T any](filename, customPath string, embedded []byte, fallback T) (T, error) {
	decode := func(data []byte) (T, error) {
		cfg := fallback
		err := yaml.Unmarshal(data, &cfg)
		return cfg, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	paths := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
