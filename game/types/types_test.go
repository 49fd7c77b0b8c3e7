package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborsOrderAndBounds(t *testing.T) {
	g := NewSquareGrid(GridSize)

	tests := []struct {
		name string
		p    Point
		want []Point
	}{
		{"interior", Point{X: 5, Y: 5}, []Point{{5, 4}, {6, 5}, {5, 6}, {4, 5}}},
		{"top-left corner", Point{X: 0, Y: 0}, []Point{{1, 0}, {0, 1}}},
		{"bottom-right corner", Point{X: 19, Y: 19}, []Point{{19, 18}, {18, 19}}},
		{"left edge", Point{X: 0, Y: 7}, []Point{{0, 6}, {1, 7}, {0, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Neighbors(tt.p))
		})
	}
}

func TestInBounds(t *testing.T) {
	g := NewSquareGrid(4)
	assert.True(t, g.InBounds(Point{X: 0, Y: 0}))
	assert.True(t, g.InBounds(Point{X: 3, Y: 3}))
	assert.False(t, g.InBounds(Point{X: 4, Y: 0}))
	assert.False(t, g.InBounds(Point{X: 0, Y: -1}))
	assert.Equal(t, 16, g.Cells())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 5, Manhattan(Point{X: 5, Y: 10}, Point{X: 10, Y: 10}))
	assert.Equal(t, 7, Manhattan(Point{X: 3, Y: 1}, Point{X: 0, Y: 5}))
	assert.Equal(t, 0, Manhattan(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}))
}

func TestDirectionBetween(t *testing.T) {
	from := Point{X: 5, Y: 5}
	for _, d := range AllDirections {
		assert.Equal(t, d, DirectionBetween(from, from.Add(d.ToPoint())), d.String())
	}
	assert.Equal(t, Right, DirectionBetween(from, from))
}
