// Command flowview bakes the configured map and shows, in the terminal, the
// flow field toward the cell under the cursor.
//
// Keys: arrows or h/j/k/l move the destination, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/flowfield/baked"
	"github.com/katalvlaran/flowfield/config"
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
	"github.com/katalvlaran/flowfield/render"
)

const help = "arrows/hjkl move  q quit"

type viewer struct {
	screen tcell.Screen
	set    *baked.Set
	costs  costfield.Field

	cursor grid.Coord
	integ  *integration.Field // nil when the cursor is on an impassable cell
}

func newViewer(screen tcell.Screen, set *baked.Set, costs costfield.Field) *viewer {
	g := set.Geometry()
	v := &viewer{
		screen: screen,
		set:    set,
		costs:  costs,
		cursor: grid.Coord{X: g.Width() / 2, Y: g.Height() / 2},
	}
	v.retarget()
	return v
}

// retarget recomputes distances for the cursor; they only drive coloring.
func (v *viewer) retarget() {
	integ, err := integration.Build(v.set.Geometry(), v.cursor, v.costs)
	if err != nil {
		v.integ = nil
		return
	}
	v.integ = integ
}

func (v *viewer) move(dx, dy int) {
	next := grid.Coord{X: v.cursor.X + dx, Y: v.cursor.Y + dy}
	if !v.set.Geometry().Contains(next) {
		return
	}
	v.cursor = next
	v.retarget()
}

// handleKey applies one key press; false means quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(0, -1)
	case tcell.KeyDown:
		v.move(0, 1)
	case tcell.KeyLeft:
		v.move(-1, 0)
	case tcell.KeyRight:
		v.move(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.move(0, -1)
		case 'j':
			v.move(0, 1)
		case 'h':
			v.move(-1, 0)
		case 'l':
			v.move(1, 0)
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	g := v.set.Geometry()
	field, err := v.set.Field(v.cursor)
	if err != nil {
		return
	}

	maxDist := 0.0
	if v.integ != nil {
		maxDist = integration.Summarize(v.integ).Max
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx := g.Index(x, y)
			var r rune
			style := tcell.StyleDefault

			switch {
			case !v.costs[idx].IsPassable():
				r = render.WallRune
				style = style.Foreground(tcell.ColorGray)
			case v.integ == nil:
				r = render.NoneRune
				style = style.Foreground(tcell.NewRGBColor(60, 60, 60))
			default:
				r = render.Arrow(field.At(idx))
				if dist, ok := v.integ.At(idx); ok {
					cr, cg, cb := render.Gradient(dist, maxDist)
					style = style.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
				} else {
					style = style.Foreground(tcell.NewRGBColor(60, 60, 60))
				}
			}
			if (grid.Coord{X: x, Y: y}) == v.cursor {
				style = style.Reverse(true)
			}
			v.screen.SetContent(x, y, r, nil, style)
		}
	}

	status := fmt.Sprintf("to %d,%d  reachable %d/%d  %s",
		v.cursor.X, v.cursor.Y, field.Reachable(), g.CellCount(), help)
	for i, r := range []rune(status) {
		v.screen.SetContent(i, g.Height()+1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	g, costs, err := cfg.CostField()
	if err != nil {
		logger.Error("failed to build cost field", "error", err)
		os.Exit(1)
	}
	set, err := baked.Bake(g, costs, baked.WithWorkers(cfg.Bake.Workers), baked.WithLogger(logger))
	if err != nil {
		logger.Error("bake failed", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("failed to initialize screen", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()

	newViewer(screen, set, costs).run()
}
