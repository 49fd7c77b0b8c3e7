package manager

import (
	"errors"
	"testing"

	"snake-duel/game/entity"
	"snake-duel/game/search"
	"snake-duel/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newFoodManager(n int, seed uint64) *FoodManager {
	return NewFoodManager(types.NewSquareGrid(n), rand.New(rand.NewSource(seed)),
		types.MinFoodDistance, types.MaxDistanceSkew)
}

func TestPlaceFoodFairTier(t *testing.T) {
	head1 := types.Point{X: 5, Y: 10}
	head2 := types.Point{X: 15, Y: 10}
	occupied := []types.Point{head1, head2}

	for seed := uint64(1); seed <= 50; seed++ {
		fm := newFoodManager(types.GridSize, seed)
		food, err := fm.PlaceFood(occupied, head1, head2)
		require.NoError(t, err)

		d1 := types.Manhattan(food, head1)
		d2 := types.Manhattan(food, head2)
		assert.Equal(t, TierFair, fm.LastTier())
		assert.LessOrEqual(t, abs(d1-d2), 1, "food %v", food)
		assert.GreaterOrEqual(t, d1, 10, "food %v", food)
		assert.GreaterOrEqual(t, d2, 10, "food %v", food)
		assert.NotContains(t, occupied, food)
	}
}

func TestPlaceFoodIsDeterministicForSeed(t *testing.T) {
	head1 := types.Point{X: 5, Y: 10}
	head2 := types.Point{X: 15, Y: 10}

	a := newFoodManager(types.GridSize, 42)
	b := newFoodManager(types.GridSize, 42)
	for i := 0; i < 10; i++ {
		fa, errA := a.PlaceFood(nil, head1, head2)
		fb, errB := b.PlaceFood(nil, head1, head2)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, fa, fb)
	}
}

func TestPlaceFoodFallsBackToBalanced(t *testing.T) {
	// Heads are too close to the far corner for any cell 10 away from both on a 6x6 grid.
	fm := newFoodManager(6, 7)
	head1 := types.Point{X: 1, Y: 3}
	head2 := types.Point{X: 4, Y: 3}

	food, err := fm.PlaceFood([]types.Point{head1, head2}, head1, head2)
	require.NoError(t, err)

	assert.Equal(t, TierBalanced, fm.LastTier())
	assert.LessOrEqual(t, abs(types.Manhattan(food, head1)-types.Manhattan(food, head2)), 1)
}

func TestPlaceFoodFallsBackToAnyFree(t *testing.T) {
	// Only (0,2) is free; it is 2 steps from head1 and 4 from head2.
	fm := newFoodManager(3, 3)
	head1 := types.Point{X: 0, Y: 0}
	head2 := types.Point{X: 2, Y: 0}
	free := types.Point{X: 0, Y: 2}

	occupied := make([]types.Point, 0)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if p := (types.Point{X: x, Y: y}); p != free {
				occupied = append(occupied, p)
			}
		}
	}

	food, err := fm.PlaceFood(occupied, head1, head2)
	require.NoError(t, err)
	assert.Equal(t, free, food)
	assert.Equal(t, TierAnyFree, fm.LastTier())
}

func TestPlaceFoodExhausted(t *testing.T) {
	fm := newFoodManager(2, 3)
	occupied := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	_, err := fm.PlaceFood(occupied, occupied[0], occupied[3])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFreeCell))
	assert.Equal(t, Tier(0), fm.LastTier())
}

func TestOccupiedCellsDeduplicates(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridSize))
	a := entity.NewSnake(types.Point{X: 1, Y: 1}, types.Right, "a", entity.Color{})
	a.GrowTo(types.Point{X: 2, Y: 1})
	b := entity.NewSnake(types.Point{X: 2, Y: 1}, types.Left, "b", entity.Color{})

	cells := cm.OccupiedCells([]*entity.Snake{a, b, nil})
	assert.ElementsMatch(t, []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, cells)
	assert.True(t, cm.IsOccupied(types.Point{X: 1, Y: 1}, []*entity.Snake{a}))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 20, Y: 0}, nil))
}

func TestCheckBody(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid(types.GridSize))
	s := entity.NewSnake(types.Point{X: 1, Y: 1}, types.Right, "a", entity.Color{})
	s.GrowTo(types.Point{X: 2, Y: 1})

	self, out, mismatch := cm.CheckBody(s)
	assert.False(t, self)
	assert.False(t, out)
	assert.False(t, mismatch)

	s.Score = 5
	_, _, mismatch = cm.CheckBody(s)
	assert.True(t, mismatch)
}

func TestInitializePopulation(t *testing.T) {
	grid := types.NewSquareGrid(types.GridSize)
	pm := NewPopulationManager(grid, NewCollisionManager(grid))

	competitors, err := pm.InitializePopulation()
	require.NoError(t, err)
	require.Len(t, competitors, 2)

	assert.Equal(t, search.AStar.Name, competitors[0].Policy.Name)
	assert.Equal(t, []types.Point{{X: 5, Y: 10}}, competitors[0].Snake.Body)
	assert.Equal(t, types.Right, competitors[0].Snake.Direction)

	assert.Equal(t, search.Dijkstra.Name, competitors[1].Policy.Name)
	assert.Equal(t, []types.Point{{X: 15, Y: 10}}, competitors[1].Snake.Body)
	assert.Equal(t, types.Left, competitors[1].Snake.Direction)

	assert.Equal(t, []types.Point{{X: 5, Y: 10}, {X: 15, Y: 10}}, pm.StartPositions())
}

func TestStateManagerTally(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, SessionStats{Wins: map[string]int{}}, sm.Stats())

	scores := map[string]int{"A*": 4, "Dijkstra": 2}
	sm.Record(MatchRecord{MatchID: "m1", Scores: scores, Winner: "A*"})
	sm.Record(MatchRecord{MatchID: "m2", Scores: map[string]int{"A*": 3, "Dijkstra": 3}})
	scores["A*"] = 99

	stats := sm.Stats()
	assert.Equal(t, 2, stats.Matches)
	assert.Equal(t, 1, stats.Ties)
	assert.Equal(t, 4, stats.HighScore)
	assert.Equal(t, map[string]int{"A*": 1}, stats.Wins)

	stats.Wins["A*"] = 7
	assert.Equal(t, 1, sm.Stats().Wins["A*"])

	history := sm.History()
	require.Len(t, history, 2)
	assert.Equal(t, 4, history[0].Scores["A*"])
	assert.Equal(t, "", history[1].Winner)
}
