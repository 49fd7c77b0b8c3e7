package manager

import (
	"fmt"

	"snake-duel/game/entity"
	"snake-duel/game/search"
	"snake-duel/game/types"
)

// Competitor pairs a freshly spawned snake with the policy that drives it.
type Competitor struct {
	Snake  *entity.Snake
	Policy search.CostPolicy
}

type lineupEntry struct {
	policy search.CostPolicy
	color  entity.Color
	facing types.Direction
	start  func(n int) types.Point
}

// The A* snake is always first, so it searches and moves first every tick.
var lineup = []lineupEntry{
	{
		policy: search.AStar,
		color:  entity.Color{R: 230, G: 41, B: 55},
		facing: types.Right,
		start:  func(n int) types.Point { return types.Point{X: n / 4, Y: n / 2} },
	},
	{
		policy: search.Dijkstra,
		color:  entity.Color{R: 0, G: 121, B: 241},
		facing: types.Left,
		start:  func(n int) types.Point { return types.Point{X: n - n/4, Y: n / 2} },
	},
}

type PopulationManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
}

func NewPopulationManager(grid types.Grid, collisionMgr *CollisionManager) *PopulationManager {
	return &PopulationManager{
		grid:         grid,
		collisionMgr: collisionMgr,
	}
}

// StartPositions returns the fixed spawn cells, in line-up order.
func (pm *PopulationManager) StartPositions() []types.Point {
	starts := make([]types.Point, len(lineup))
	for i, entry := range lineup {
		starts[i] = entry.start(pm.grid.Width)
	}
	return starts
}

// InitializePopulation spawns every competitor with a single-cell body at its
// fixed start. On a 20x20 grid that is (5,10) facing right and (15,10) facing left.
func (pm *PopulationManager) InitializePopulation() ([]Competitor, error) {
	competitors := make([]Competitor, 0, len(lineup))
	snakes := make([]*entity.Snake, 0, len(lineup))

	for _, entry := range lineup {
		pos := entry.start(pm.grid.Width)
		if !pm.collisionMgr.ValidateSpawnPosition(pos, snakes) {
			return nil, fmt.Errorf("invalid start %v for %s on %dx%d grid",
				pos, entry.policy.Name, pm.grid.Width, pm.grid.Height)
		}

		snake := entity.NewSnake(pos, entry.facing, entry.policy.Name, entry.color)
		snakes = append(snakes, snake)
		competitors = append(competitors, Competitor{Snake: snake, Policy: entry.policy})
	}

	return competitors, nil
}
