package manager

import (
	"snake-arcade/game/types"
)

// Intner is the random source used for food placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// FoodManager keeps the board topped up with maxFoods apples. Placement is
// uniform over the grid and does not avoid the snake, obstacles or other food.
type FoodManager struct {
	grid     types.Grid
	foodList []types.Point
	maxFoods int
	rng      Intner
}

func NewFoodManager(grid types.Grid, maxFoods int, rng Intner) *FoodManager {
	return &FoodManager{
		grid:     grid,
		foodList: make([]types.Point, 0, maxFoods),
		maxFoods: maxFoods,
		rng:      rng,
	}
}

// Refill appends random cells until the target count is reached
func (fm *FoodManager) Refill() {
	for len(fm.foodList) < fm.maxFoods {
		fm.foodList = append(fm.foodList, fm.GenerateFood())
	}
}

func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

// RemoveAt drops the food at index i, keeping the order of the rest
func (fm *FoodManager) RemoveAt(i int) {
	if i < 0 || i >= len(fm.foodList) {
		return
	}
	fm.foodList = append(fm.foodList[:i], fm.foodList[i+1:]...)
}

func (fm *FoodManager) Reset() {
	fm.foodList = fm.foodList[:0]
}

// Set replaces the food list
func (fm *FoodManager) Set(food []types.Point) {
	fm.foodList = append(fm.foodList[:0], food...)
}

func (fm *FoodManager) Count() int {
	return len(fm.foodList)
}
