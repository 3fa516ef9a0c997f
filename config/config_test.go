package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/flowfield/config"
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0, cfg.Bake.Workers)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, config.LogText, cfg.Log.Format)
	assert.Equal(t, tilemap.TileCost{Cost: 1}, cfg.Tiles["grass"])

	g, costs, err := cfg.CostField()
	require.NoError(t, err)
	assert.Equal(t, grid.MustGeometry(16, 8), g)
	c, err := costs.At(g, grid.Coord{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, costfield.Impassable, c)
	c, err = costs.At(g, grid.Coord{X: 5, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, costfield.Passable(0), c)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
map:
  legend:
    "o": ore
  rows:
    - "..o"
    - "#.."
tiles:
  ore: {cost: 7}
bake:
  workers: 3
log:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Bake.Workers)
	assert.Equal(t, config.LogJSON, cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "untouched keys keep defaults")
	assert.Equal(t, "grass", cfg.Map.Legend["."], "legend entries merge")
	assert.Equal(t, tilemap.TileCost{Cost: 7}, cfg.Tiles["ore"])
	assert.Contains(t, cfg.Tiles, "wall")

	g, costs, err := cfg.CostField()
	require.NoError(t, err)
	assert.Equal(t, grid.MustGeometry(3, 2), g)
	assert.Equal(t, costfield.Passable(7), costs[2])
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bake: [1, 2\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"negative workers": func(c *config.Config) { c.Bake.Workers = -1 },
		"output format":    func(c *config.Config) { c.Output.Format = "xml" },
		"log format":       func(c *config.Config) { c.Log.Format = "logfmt" },
		"log level":        func(c *config.Config) { c.Log.Level = "loud" },
		"ragged rows":      func(c *config.Config) { c.Map.Rows = []string{"...", ".."} },
		"no rows":          func(c *config.Config) { c.Map.Rows = nil },
		"unknown glyph":    func(c *config.Config) { c.Map.Rows = []string{".?"} },
		"unknown tile":     func(c *config.Config) { c.Map.Legend["?"] = "lava"; c.Map.Rows = []string{".?"} },
		"bad glyph":        func(c *config.Config) { c.Map.Legend["ab"] = "grass" },
		"negative cost":    func(c *config.Config) { c.Tiles["mud"] = tilemap.TileCost{Cost: -4} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "debug"
	l, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	cfg.Log.Level = "WARN"
	l, err = cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Bake.Workers = 5
	cfg.Output.Format = config.FormatCSV
	cfg.Tiles["ice"] = tilemap.TileCost{Cost: 0.5}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
