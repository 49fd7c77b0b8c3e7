package manager

import (
	"snake-duel/game/entity"
	"snake-duel/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsOccupied reports whether any live snake segment sits on pos
func (cm *CollisionManager) IsOccupied(pos types.Point, snakes []*entity.Snake) bool {
	for _, snake := range snakes {
		if snake == nil {
			continue
		}
		if snake.Occupies(pos) {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for placing food or a snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snakes []*entity.Snake) bool {
	return !cm.isWallCollision(pos) && !cm.IsOccupied(pos, snakes)
}

// OccupiedCells returns every in-bounds cell covered by a snake, without duplicates.
func (cm *CollisionManager) OccupiedCells(snakes []*entity.Snake) []types.Point {
	seen := make(map[types.Point]struct{})
	cells := make([]types.Point, 0)
	for _, snake := range snakes {
		if snake == nil {
			continue
		}
		for _, p := range snake.Body {
			if _, dup := seen[p]; dup || cm.isWallCollision(p) {
				continue
			}
			seen[p] = struct{}{}
			cells = append(cells, p)
		}
	}
	return cells
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// CheckBody reports the structural faults of a snake: a head on its own body,
// a segment off the grid, or a length that does not match its score.
func (cm *CollisionManager) CheckBody(snake *entity.Snake) (selfCollided, outOfBounds, lengthMismatch bool) {
	selfCollided = snake.SelfCollided()
	for _, p := range snake.Body {
		if cm.isWallCollision(p) {
			outOfBounds = true
			break
		}
	}
	lengthMismatch = len(snake.Body) != 1+snake.Score
	return selfCollided, outOfBounds, lengthMismatch
}
