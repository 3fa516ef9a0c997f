package grid

import (
	"fmt"
	"math"
)

// coordLimit keeps floored coordinates well inside the int range; anything
// beyond it is out of bounds for every realistic grid anyway.
const coordLimit = 1 << 31

// CoordFromFloat floors a host coordinate to the cell containing it.
// Flooring keeps every cell one unit wide: truncation toward zero would map
// all of (-1, 1) to column 0, handing vectors to positions left of the grid.
// NaN or ±Inf components return ErrInvalidCoordinate; finite values are never
// silently replaced with a default.
func CoordFromFloat(x, y float64) (Coord, error) {
	if !finite(x) || !finite(y) {
		return Coord{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}
	return Coord{X: clampFloor(x), Y: clampFloor(y)}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampFloor(v float64) int {
	v = math.Floor(v)
	switch {
	case v < -coordLimit:
		return -coordLimit
	case v > coordLimit:
		return coordLimit
	}
	return int(v)
}
