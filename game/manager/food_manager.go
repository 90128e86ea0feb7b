package manager

import (
	"errors"

	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is occupied and no food can be
// placed.
var ErrBoardFull = errors.New("no free cell left on the board")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples cells uniformly until one falls outside occupied.
func (fm *FoodManager) GenerateFood(occupied []types.Cell) (types.Cell, error) {
	taken := make(map[types.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if fm.grid.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= fm.grid.Cells() {
		return types.Cell{}, ErrBoardFull
	}

	for {
		food := types.Cell{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, taken) {
			return food, nil
		}
	}
}
