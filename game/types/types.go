package types

import "golang.org/x/exp/constraints"

// Cell is one grid-aligned unit of board space
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d. The result is not wrapped.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap folds c back onto the board. The board is a torus, so leaving one
// edge re-enters on the opposite one.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: Mod(c.X, g.Width), Y: Mod(c.Y, g.Height)}
}

// Move steps c one cell in direction d and wraps the result.
func (g Grid) Move(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d.Delta()))
}

// Mod is the euclidean modulo: the result is always in [0, n).
func Mod[T constraints.Integer](v, n T) T {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
