// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Source   SourceConfig   `yaml:"source"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"` // Fixed redraw rate in frames per second
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// TerrainConfig holds mesh synthesis settings.
type TerrainConfig struct {
	LODTarget int `yaml:"lod_target"` // Maximum LOD grid dimension
}

// SourceConfig selects where height fields come from.
// An empty Heightmap path means the noise generator is used.
type SourceConfig struct {
	Heightmap string `yaml:"heightmap"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
}

// ViewConfig holds the initial control surface values.
type ViewConfig struct {
	WaterLevel  float32 `yaml:"water_level"`
	LightAngleX float32 `yaml:"light_angle_x"`
	LightAngleY float32 `yaml:"light_angle_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         600,
			Height:        600,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      60,
			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			LODTarget: 150,
		},
		Source: SourceConfig{
			Size: 512,
			Seed: 2,
		},
		View: ViewConfig{
			WaterLevel:  0.8,
			LightAngleX: 45,
			LightAngleY: 45,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every structural problem in the config at once.
func (c *Config) Validate() error {
	var err error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: window size %dx%d must be positive",
			c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: fps_limit %d must be positive", c.Graphics.FPSLimit))
	}
	if c.Terrain.LODTarget < 1 {
		err = multierr.Append(err, fmt.Errorf("terrain: lod_target %d must be at least 1", c.Terrain.LODTarget))
	}
	if c.Source.Heightmap == "" && c.Source.Size < 1 {
		err = multierr.Append(err, fmt.Errorf("source: size %d must be at least 1", c.Source.Size))
	}
	return err
}

// ClampView forces view values into the ranges the controls accept.
func (c *Config) ClampView() {
	c.View.WaterLevel = clamp(c.View.WaterLevel, 0, 1)
	c.View.LightAngleX = clamp(c.View.LightAngleX, -90, 90)
	c.View.LightAngleY = clamp(c.View.LightAngleY, 0, 360)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
