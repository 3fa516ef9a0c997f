// Package config loads flow field generation settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/tilemap"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Output formats.
const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// ErrInvalid indicates a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all generation parameters.
type Config struct {
	Map    MapConfig       `yaml:"map"`
	Tiles  tilemap.TileSet `yaml:"tiles"`
	Bake   BakeConfig      `yaml:"bake"`
	Output OutputConfig    `yaml:"output"`
	Log    LogConfig       `yaml:"log"`
}

// MapConfig describes the tile map as text rows and a glyph legend.
type MapConfig struct {
	Legend map[string]string `yaml:"legend"`
	Rows   []string          `yaml:"rows"`
}

// BakeConfig holds baking parameters.
type BakeConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// OutputConfig controls where and how fields are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Only keys present in the file are overwritten; map and tile entries merge.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks every section; the map must parse and resolve to costs.
func (c *Config) Validate() error {
	if c.Bake.Workers < 0 {
		return fmt.Errorf("%w: bake.workers must be >= 0, got %d", ErrInvalid, c.Bake.Workers)
	}
	switch c.Output.Format {
	case FormatYAML, FormatCSV:
	default:
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalid, c.Output.Format, FormatYAML, FormatCSV)
	}
	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalid, c.Log.Format, LogText, LogJSON)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, _, err := c.CostField(); err != nil {
		return fmt.Errorf("%w: map: %w", ErrInvalid, err)
	}
	return nil
}

// SlogLevel parses log.level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return l, nil
}

// TileMap parses map.rows through map.legend.
func (c *Config) TileMap() (*tilemap.Map, error) {
	legend, err := tilemap.ParseLegend(c.Map.Legend)
	if err != nil {
		return nil, err
	}
	return tilemap.Parse(c.Map.Rows, legend)
}

// CostField resolves the configured map through the configured tiles.
func (c *Config) CostField() (grid.Geometry, costfield.Field, error) {
	m, err := c.TileMap()
	if err != nil {
		return grid.Geometry{}, nil, err
	}
	return m.CostField(c.Tiles)
}
