package chess

// Direction is a movement direction: one of the eight sliding rays or one of
// the eight knight jumps.
type Direction uint8

const (
	NoDirection Direction = iota

	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	NorthNorthEast
	NorthNorthWest
	SouthSouthEast
	SouthSouthWest
	EastNorthEast
	EastSouthEast
	WestNorthWest
	WestSouthWest

	NumDirections
)

type directionInfo struct {
	name     string
	rows     int
	cols     int
	opposite Direction
}

var directionTable = [NumDirections]directionInfo{
	NoDirection: {name: "none"},

	North:     {"N", 1, 0, South},
	South:     {"S", -1, 0, North},
	East:      {"E", 0, 1, West},
	West:      {"W", 0, -1, East},
	NorthEast: {"NE", 1, 1, SouthWest},
	NorthWest: {"NW", 1, -1, SouthEast},
	SouthEast: {"SE", -1, 1, NorthWest},
	SouthWest: {"SW", -1, -1, NorthEast},

	NorthNorthEast: {"NNE", 2, 1, SouthSouthWest},
	NorthNorthWest: {"NNW", 2, -1, SouthSouthEast},
	SouthSouthEast: {"SSE", -2, 1, NorthNorthWest},
	SouthSouthWest: {"SSW", -2, -1, NorthNorthEast},
	EastNorthEast:  {"ENE", 1, 2, WestSouthWest},
	EastSouthEast:  {"ESE", -1, 2, WestNorthWest},
	WestNorthWest:  {"WNW", 1, -2, EastSouthEast},
	WestSouthWest:  {"WSW", -1, -2, EastNorthEast},
}

// Direction sets.
var (
	StraightRays = [4]Direction{North, South, East, West}
	DiagonalRays = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	AllRays      = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	KnightJumps  = [8]Direction{
		NorthNorthEast, NorthNorthWest, SouthSouthEast, SouthSouthWest,
		EastNorthEast, EastSouthEast, WestNorthWest, WestSouthWest,
	}
)

// String returns the compass name of the direction.
func (d Direction) String() string {
	if d < NumDirections {
		return directionTable[d].name
	}
	return "?"
}

// RowDelta returns the row increment of a single step.
func (d Direction) RowDelta() int {
	return directionTable[d].rows
}

// ColDelta returns the column increment of a single step.
func (d Direction) ColDelta() int {
	return directionTable[d].cols
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return directionTable[d].opposite
}

// IsRay reports whether d is one of the eight sliding rays.
func (d Direction) IsRay() bool {
	return d >= North && d <= SouthWest
}

// IsStraight reports whether d is a rank or file ray.
func (d Direction) IsStraight() bool {
	return d >= North && d <= West
}

// IsDiagonal reports whether d is a diagonal ray.
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= SouthWest
}

// IsKnightJump reports whether d is a knight offset.
func (d Direction) IsKnightJump() bool {
	return d >= NorthNorthEast && d <= WestSouthWest
}

// Axis reports whether a step of (rows, cols) lies along d or its opposite.
func (d Direction) Axis(rows, cols int) bool {
	dr, dc := sign(rows), sign(cols)
	info := directionTable[d]
	if rows != 0 && cols != 0 && abs(rows) != abs(cols) {
		return false
	}
	return (dr == info.rows && dc == info.cols) || (dr == -info.rows && dc == -info.cols)
}

// RayBetween returns the ray leading from a square to another square offset
// by (rows, cols), or NoDirection when they are not on a common line.
func RayBetween(rows, cols int) Direction {
	if rows == 0 && cols == 0 {
		return NoDirection
	}
	if rows != 0 && cols != 0 && abs(rows) != abs(cols) {
		return NoDirection
	}
	dr, dc := sign(rows), sign(cols)
	for _, d := range AllRays {
		if directionTable[d].rows == dr && directionTable[d].cols == dc {
			return d
		}
	}
	return NoDirection
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
