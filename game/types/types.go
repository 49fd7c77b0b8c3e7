package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell coordinate on the grid. It is comparable and safe to use as a map key.
type Point struct {
	X, Y int
}

// Game constants
const (
	GridSize        = 20                     // Side of the square arena
	TotalTurns      = 10                     // Food placements per match
	TickInterval    = 100 * time.Millisecond // One cell per snake per tick
	MinFoodDistance = 10                     // Tier-1 minimum distance from both heads
	MaxDistanceSkew = 1                      // Allowed |d1-d2| between the two heads
)

// NewSquareGrid returns an n x n grid.
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbors returns the in-bounds 4-neighbors of p in Up, Right, Down, Left order.
func (g Grid) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, 4)
	for _, d := range AllDirections {
		next := p.Add(d.ToPoint())
		if g.InBounds(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the 4-connected distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
