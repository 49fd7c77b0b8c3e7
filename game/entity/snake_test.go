package entity

import (
	"testing"

	"snake-duel/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnake() *Snake {
	return NewSnake(types.Point{X: 5, Y: 10}, types.Right, "A*", Color{R: 255})
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := newTestSnake()
	s.GrowTo(types.Point{X: 6, Y: 10})
	s.GrowTo(types.Point{X: 7, Y: 10})
	require.Len(t, s.Body, 3)

	s.Advance(types.Point{X: 8, Y: 10})

	assert.Equal(t, []types.Point{{X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}}, s.Body)
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, 1+s.Score, len(s.Body))
}

func TestAdvanceSingleCell(t *testing.T) {
	s := newTestSnake()
	s.Advance(types.Point{X: 6, Y: 10})

	assert.Equal(t, []types.Point{{X: 6, Y: 10}}, s.Body)
	assert.Equal(t, types.Point{X: 6, Y: 10}, s.Head())
	assert.Equal(t, 0, s.Score)
}

func TestGrowToAddsOneSegmentAndOnePoint(t *testing.T) {
	s := newTestSnake()
	before := len(s.Body)

	s.GrowTo(types.Point{X: 6, Y: 10})

	assert.Equal(t, before+1, len(s.Body))
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, types.Point{X: 6, Y: 10}, s.Head())
	assert.Equal(t, types.Point{X: 5, Y: 10}, s.Body[1])
}

func TestOccupiesAndSelfCollided(t *testing.T) {
	s := newTestSnake()
	s.GrowTo(types.Point{X: 6, Y: 10})
	s.GrowTo(types.Point{X: 6, Y: 11})

	assert.True(t, s.Occupies(types.Point{X: 5, Y: 10}))
	assert.False(t, s.Occupies(types.Point{X: 5, Y: 11}))
	assert.False(t, s.SelfCollided())

	s.GrowTo(types.Point{X: 5, Y: 11})
	s.Advance(types.Point{X: 5, Y: 10})
	assert.False(t, s.SelfCollided(), "tail moved out of the way")

	s.Body = append(s.Body, types.Point{X: 5, Y: 10})
	assert.True(t, s.SelfCollided())
}

func TestMetricsHistoryAndAverage(t *testing.T) {
	s := newTestSnake()
	assert.Equal(t, TurnMetrics{}, s.AverageMetrics())

	s.SetLastSearch(TurnMetrics{NodesExplored: 10, ComputationTime: 1.5})
	s.RecordTurnMetrics()
	s.SetLastSearch(TurnMetrics{NodesExplored: 15, ComputationTime: 0.5})
	s.RecordTurnMetrics()
	s.SetLastSearch(TurnMetrics{NodesExplored: 6, ComputationTime: 1.0})
	s.RecordTurnMetrics()

	require.Len(t, s.History(), 3)
	avg := s.AverageMetrics()
	assert.Equal(t, 10, avg.NodesExplored, "31/3 truncates")
	assert.InDelta(t, 1.0, avg.ComputationTime, 1e-9)
	assert.Equal(t, TurnMetrics{NodesExplored: 6, ComputationTime: 1.0}, s.LastSearch())
}

func TestCloneIsIndependent(t *testing.T) {
	s := newTestSnake()
	s.SetLastSearch(TurnMetrics{NodesExplored: 3})
	s.RecordTurnMetrics()

	c := s.Clone()
	s.GrowTo(types.Point{X: 6, Y: 10})
	s.RecordTurnMetrics()

	assert.Len(t, c.Body, 1)
	assert.Len(t, c.History(), 1)
	assert.Equal(t, 0, c.Score)
}

func TestAverageEmpty(t *testing.T) {
	assert.Equal(t, TurnMetrics{}, Average(nil))
}
