package game

import (
	"errors"
	"fmt"

	"the-snake/game/entity"
	"the-snake/game/types"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed window geometry, pacing and palette.
type Config struct {
	Title        string
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	TickRate     int // ticks per second

	Background entity.Color
	Border     entity.Color
	AppleColor entity.Color
	SnakeColor entity.Color
}

func DefaultConfig() Config {
	return Config{
		Title:        "Snake",
		ScreenWidth:  640,
		ScreenHeight: 480,
		CellSize:     20,
		TickRate:     10,
		Background:   entity.Color{R: 0, G: 0, B: 0},
		Border:       entity.Color{R: 93, G: 216, B: 228},
		AppleColor:   entity.Color{R: 255, G: 0, B: 0},
		SnakeColor:   entity.Color{R: 0, G: 255, B: 0},
	}
}

// Grid returns the board size in cells.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.ScreenWidth / c.CellSize,
		Height: c.ScreenHeight / c.CellSize,
	}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	// A one-cell board has nowhere to put the apple.
	if grid := c.Grid(); grid.Width < 1 || grid.Height < 1 || grid.Cells() < 2 {
		return fmt.Errorf("%w: board %dx%d is too small", ErrInvalidConfig, grid.Width, grid.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	return nil
}
