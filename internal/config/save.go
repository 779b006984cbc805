package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, creating parent directories.
// A relative heightmap path is stored absolute, since loading resolves it
// against the file's directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	out := *c
	if hm := out.Source.Heightmap; hm != "" && !filepath.IsAbs(hm) {
		abs, err := filepath.Abs(hm)
		if err != nil {
			return fmt.Errorf("resolving heightmap path: %w", err)
		}
		out.Source.Heightmap = abs
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
