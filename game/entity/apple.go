package entity

import "the-snake/game/types"

type Apple struct {
	Position types.Cell
	Color    Color
}

func NewApple(pos types.Cell, color Color) *Apple {
	return &Apple{Position: pos, Color: color}
}

func (a *Apple) Positions() []types.Cell {
	return []types.Cell{a.Position}
}

func (a *Apple) Draw(canvas Canvas) {
	canvas.DrawCell(a.Position, a.Color)
}
