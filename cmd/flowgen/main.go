// Command flowgen computes flow fields for the configured tile map and writes
// them as YAML or CSV.
//
//	flowgen -to 3,4 -print          # one field toward cell (3, 4)
//	flowgen -bake -format csv       # every destination
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowfield/baked"
	"github.com/katalvlaran/flowfield/config"
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/fieldio"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
	"github.com/katalvlaran/flowfield/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("flowgen failed", "error", err)
		os.Exit(1)
	}
}

// options are the parsed command-line flags.
type options struct {
	configPath string
	to         string
	bake       bool
	outDir     string
	format     string
	show       bool
	logFormat  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("flowgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Path to config.yaml (empty = use defaults)")
	fs.StringVar(&o.to, "to", "", "Destination cell as x,y for a single field")
	fs.BoolVar(&o.bake, "bake", false, "Bake a flow field toward every cell")
	fs.StringVar(&o.outDir, "out", "", "Output directory (empty = use config)")
	fs.StringVar(&o.format, "format", "", "Output format yaml|csv (empty = use config)")
	fs.BoolVar(&o.show, "print", false, "Print a text rendering to stdout")
	fs.StringVar(&o.logFormat, "log-format", "", "Log format text|json (empty = use config)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if (o.to == "") == !o.bake {
		return o, errors.New("exactly one of -to or -bake is required")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	var dest grid.Coord
	if !o.bake {
		if dest, err = parseCoord(o.to); err != nil {
			return err
		}
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.outDir != "" {
		cfg.Output.Dir = o.outDir
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	g, costs, err := cfg.CostField()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := cfg.WriteYAML(filepath.Join(cfg.Output.Dir, "config.yaml")); err != nil {
		return err
	}
	logger.Info("loaded map",
		"geometry", g.String(),
		"passable", costs.PassableCount(),
		"output", cfg.Output.Dir,
		"format", cfg.Output.Format,
	)

	if o.bake {
		return runBake(ctx, cfg, logger, g, costs, o.show, stdout)
	}
	return runSingle(cfg, logger, g, costs, dest, o.show, stdout)
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == config.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// parseCoord reads "x,y" into a cell coordinate.
func parseCoord(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("-to %q: want x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if err := errors.Join(errX, errY); err != nil {
		return grid.Coord{}, fmt.Errorf("-to %q: %w", s, err)
	}
	return grid.Coord{X: x, Y: y}, nil
}

func runSingle(cfg *config.Config, logger *slog.Logger, g grid.Geometry, costs costfield.Field,
	dest grid.Coord, show bool, stdout io.Writer) error {
	integ, err := integration.Build(g, dest, costs)
	if err != nil {
		return err
	}
	sum := integration.Summarize(integ)
	logger.Info("integration field",
		"to", dest,
		"reached", sum.Reached,
		"cells", sum.Cells,
		"max_distance", sum.Max,
		"mean_distance", sum.Mean,
	)

	flow, err := flowfield.Build(g, integ)
	if err != nil {
		return err
	}

	dir := cfg.Output.Dir
	switch cfg.Output.Format {
	case config.FormatCSV:
		err = errors.Join(
			writeFile(filepath.Join(dir, "costs.csv"), func(w io.Writer) error { return fieldio.WriteCostCSV(w, g, costs) }),
			writeFile(filepath.Join(dir, "integration.csv"), func(w io.Writer) error { return fieldio.WriteIntegrationCSV(w, integ) }),
			writeFile(filepath.Join(dir, "flow.csv"), func(w io.Writer) error { return fieldio.WriteFlowCSV(w, flow) }),
		)
	default:
		err = writeFile(filepath.Join(dir, "flow.yaml"), func(w io.Writer) error { return fieldio.EncodeFlowYAML(w, flow) })
	}
	if err != nil {
		return err
	}
	logger.Info("wrote flow field", "to", dest, "reachable", flow.Reachable())

	if show {
		return render.Flow(stdout, flow)
	}
	return nil
}

func runBake(ctx context.Context, cfg *config.Config, logger *slog.Logger, g grid.Geometry,
	costs costfield.Field, show bool, stdout io.Writer) error {
	set, err := baked.Bake(g, costs,
		baked.WithContext(ctx),
		baked.WithWorkers(cfg.Bake.Workers),
		baked.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	dir := cfg.Output.Dir
	switch cfg.Output.Format {
	case config.FormatCSV:
		err = writeFile(filepath.Join(dir, "costs.csv"), func(w io.Writer) error { return fieldio.WriteCostCSV(w, g, costs) })
		for i, f := range set.Fields() {
			if err != nil {
				break
			}
			to := g.Coordinate(i)
			name := fmt.Sprintf("flow_%d_%d.csv", to.X, to.Y)
			err = writeFile(filepath.Join(dir, name), func(w io.Writer) error { return fieldio.WriteFlowCSV(w, f) })
		}
	default:
		err = writeFile(filepath.Join(dir, "baked.yaml"), func(w io.Writer) error { return fieldio.EncodeBakedYAML(w, set) })
	}
	if err != nil {
		return err
	}
	logger.Info("wrote baked set", "fields", set.Len())

	if show {
		return render.Costs(stdout, g, costs)
	}
	return nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
