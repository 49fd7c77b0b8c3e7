package types

// Direction is the facing of a snake after its last step. It has no effect on search.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections is the neighbor expansion order used by the grid.
var AllDirections = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction into a unit displacement
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// DirectionBetween returns the facing implied by stepping from one cell to the next.
// Horizontal movement wins over vertical; a zero step faces Right.
func DirectionBetween(from, to Point) Direction {
	switch {
	case to.X > from.X:
		return Right
	case to.X < from.X:
		return Left
	case to.Y > from.Y:
		return Down
	case to.Y < from.Y:
		return Up
	default:
		return Right
	}
}
