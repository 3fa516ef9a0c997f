package grid

import "math"

// Direction is a per-cell flow direction.
// DirN..DirNW index the 8 neighbors in tie-break priority order.
type Direction int8

const (
	DirTarget Direction = -2 // the destination cell; zero vector
	DirNone   Direction = -1 // absent: unreached or impassable
	DirN      Direction = 0
	DirNE     Direction = 1
	DirE      Direction = 2
	DirSE     Direction = 3
	DirS      Direction = 4
	DirSW     Direction = 5
	DirW      Direction = 6
	DirNW     Direction = 7
	DirCount            = 8
)

// Directions lists the movement directions in priority order.
var Directions = [DirCount]Direction{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}

// Offsets matching DirN..DirNW.
var offsets = [DirCount][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var vectors = [DirCount]Vector{
	{0, -1},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{1, 0},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
	{0, 1},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{-1, 0},
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// Vertical and horizontal flank of each diagonal; cardinals map to themselves.
var corners = [DirCount][2]Direction{
	{DirN, DirN}, {DirN, DirE}, {DirE, DirE}, {DirS, DirE},
	{DirS, DirS}, {DirS, DirW}, {DirW, DirW}, {DirN, DirW},
}

var names = [DirCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Valid reports whether d is one of the 8 movement directions.
func (d Direction) Valid() bool {
	return d >= DirN && d <= DirNW
}

// Diagonal reports whether d is NE, SE, SW or NW.
func (d Direction) Diagonal() bool {
	return d.Valid() && d%2 == 1
}

// Offset returns the (dx,dy) step of d; (0,0) for DirNone and DirTarget.
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// StepCost is the geometric cost of one step along d: 1 for cardinals, √2 for diagonals.
func (d Direction) StepCost() float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

// Vector returns the unit flow vector of d; the zero vector for DirNone and DirTarget.
func (d Direction) Vector() Vector {
	if !d.Valid() {
		return Vector{}
	}
	return vectors[d]
}

// Corner returns the vertical and horizontal directions flanking a diagonal,
// e.g. (DirN, DirE) for DirNE. For cardinals both results equal d.
func (d Direction) Corner() (vertical, horizontal Direction) {
	if !d.Valid() {
		return DirNone, DirNone
	}
	return corners[d][0], corners[d][1]
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch {
	case d == DirNone:
		return "none"
	case d == DirTarget:
		return "target"
	case d.Valid():
		return names[d]
	default:
		return "invalid"
	}
}

// directionTolerance absorbs float32 round-off in vectors produced elsewhere.
const directionTolerance = 1e-5

// DirectionOf maps a flow vector back to its Direction.
// The zero vector maps to DirTarget. Any other vector that is not one of the
// 8 canonical directions reports false.
func DirectionOf(v Vector) (Direction, bool) {
	if math.Abs(v.X) < directionTolerance && math.Abs(v.Y) < directionTolerance {
		return DirTarget, true
	}
	for _, d := range Directions {
		w := vectors[d]
		if math.Abs(v.X-w.X) < directionTolerance && math.Abs(v.Y-w.Y) < directionTolerance {
			return d, true
		}
	}
	return DirNone, false
}
