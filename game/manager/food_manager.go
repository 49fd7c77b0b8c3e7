package manager

import (
	"errors"
	"fmt"

	"snake-duel/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when every cell of the grid is occupied.
var ErrNoFreeCell = errors.New("no free cell for food")

// Placement tiers, strictest first.
type Tier int

const (
	TierFair     Tier = iota + 1 // balanced and far from both heads
	TierBalanced                 // balanced only
	TierAnyFree                  // any unoccupied cell
)

func (t Tier) String() string {
	switch t {
	case TierFair:
		return "fair"
	case TierBalanced:
		return "balanced"
	case TierAnyFree:
		return "any-free"
	default:
		return "none"
	}
}

// FoodManager places the shared food so that neither snake starts a turn
// structurally closer to it than the other.
type FoodManager struct {
	grid        types.Grid
	rng         *rand.Rand
	minDistance int
	maxSkew     int
	lastTier    Tier
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, minDistance, maxSkew int) *FoodManager {
	return &FoodManager{
		grid:        grid,
		rng:         rng,
		minDistance: minDistance,
		maxSkew:     maxSkew,
	}
}

// PlaceFood picks a free cell using the first tier that has any candidate.
// Candidates are scanned column by column, then chosen uniformly at random.
func (fm *FoodManager) PlaceFood(occupied []types.Point, head1, head2 types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for _, tier := range []Tier{TierFair, TierBalanced, TierAnyFree} {
		candidates := fm.candidates(taken, head1, head2, tier)
		if len(candidates) == 0 {
			continue
		}
		fm.lastTier = tier
		return candidates[fm.rng.Intn(len(candidates))], nil
	}

	fm.lastTier = 0
	return types.Point{}, fmt.Errorf("%dx%d grid with %d occupied cells: %w",
		fm.grid.Width, fm.grid.Height, len(taken), ErrNoFreeCell)
}

// LastTier reports which tier produced the most recent placement.
func (fm *FoodManager) LastTier() Tier {
	return fm.lastTier
}

func (fm *FoodManager) candidates(taken map[types.Point]struct{}, head1, head2 types.Point, tier Tier) []types.Point {
	candidates := make([]types.Point, 0)
	for x := 0; x < fm.grid.Width; x++ {
		for y := 0; y < fm.grid.Height; y++ {
			pos := types.Point{X: x, Y: y}
			if _, ok := taken[pos]; ok {
				continue
			}
			if fm.accepts(pos, head1, head2, tier) {
				candidates = append(candidates, pos)
			}
		}
	}
	return candidates
}

func (fm *FoodManager) accepts(pos, head1, head2 types.Point, tier Tier) bool {
	if tier == TierAnyFree {
		return true
	}

	dist1 := types.Manhattan(pos, head1)
	dist2 := types.Manhattan(pos, head2)
	if abs(dist1-dist2) > fm.maxSkew {
		return false
	}
	if tier == TierFair {
		return dist1 >= fm.minDistance && dist2 >= fm.minDistance
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
