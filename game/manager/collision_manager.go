package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Wrap maps a position that left the grid back in from the opposite edge
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	if pos.X < 0 {
		pos.X = cm.grid.Width - 1
	} else if pos.X >= cm.grid.Width {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = cm.grid.Height - 1
	} else if pos.Y >= cm.grid.Height {
		pos.Y = 0
	}
	return pos
}

// IsGameOver reports whether the head sits on the body or on an obstacle
func (cm *CollisionManager) IsGameOver(snake *entity.Snake, obstacles []types.Point) bool {
	if snake == nil || snake.Len() == 0 {
		return false
	}
	head := snake.GetHead()
	return cm.isSelfCollision(head, snake) || cm.isObstacleCollision(head, obstacles)
}

func (cm *CollisionManager) isSelfCollision(head types.Point, snake *entity.Snake) bool {
	for i := 1; i < len(snake.Body); i++ {
		if head == snake.Body[i] {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isObstacleCollision(head types.Point, obstacles []types.Point) bool {
	for _, obs := range obstacles {
		if head == obs {
			return true
		}
	}
	return false
}

// FoodIndex returns the index of the first food at pos, or -1
func (cm *CollisionManager) FoodIndex(pos types.Point, foodList []types.Point) int {
	for i, food := range foodList {
		if pos == food {
			return i
		}
	}
	return -1
}
