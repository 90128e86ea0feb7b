package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether the snake's head overlaps any other
// segment of its own body.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.Head()
	for _, part := range snake.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food *entity.Apple) bool {
	return pos == food.Position
}

// ValidateSpawnPosition checks if a position is on the board and not taken
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, taken map[types.Cell]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, ok := taken[pos]
	return !ok
}
