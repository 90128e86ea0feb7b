package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Body          []types.Cell // head first
	Length        int
	Direction     types.Direction
	NextDirection types.Direction
	Vacated       []types.Cell // cells released by the last Move or Reset
	Color         Color

	start types.Cell
}

func NewSnake(startPos types.Cell, color Color) *Snake {
	return &Snake{
		Body:      []types.Cell{startPos},
		Length:    1,
		Direction: types.RIGHT, // Start moving right
		Color:     color,
		start:     startPos,
	}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

// Steer buffers dir for the next tick. A 180° turn against the current
// direction is ignored and reported as false.
func (s *Snake) Steer(dir types.Direction) bool {
	if dir == types.NONE || dir.IsOpposite(s.Direction) {
		return false
	}
	s.NextDirection = dir
	return true
}

// UpdateDirection applies the buffered direction, if any, and clears it.
func (s *Snake) UpdateDirection() {
	next := s.NextDirection
	s.NextDirection = types.NONE
	if next == types.NONE || next.IsOpposite(s.Direction) {
		return
	}
	s.Direction = next
}

// Move prepends the next head cell and drops the tail once the body is
// longer than Length.
func (s *Snake) Move(grid types.Grid) {
	newHead := grid.Move(s.Head(), s.Direction)
	s.Vacated = s.Vacated[:0]

	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	for len(s.Body) > s.Length {
		last := len(s.Body) - 1
		s.Vacated = append(s.Vacated, s.Body[last])
		s.Body = s.Body[:last]
	}
}

func (s *Snake) Grow() {
	s.Length++
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

// Reset puts the snake back to a single cell at its start position,
// heading in dir. The old body is reported as vacated.
func (s *Snake) Reset(dir types.Direction) {
	s.Vacated = append(s.Vacated[:0], s.Body...)
	s.Body = []types.Cell{s.start}
	s.Length = 1
	s.Direction = dir
	s.NextDirection = types.NONE
}

func (s *Snake) Positions() []types.Cell {
	return s.Body
}

func (s *Snake) Draw(canvas Canvas) {
	for _, p := range s.Vacated {
		canvas.ClearCell(p)
	}
	// Draw from tail to head so the head ends up on top.
	for i := len(s.Body) - 1; i >= 0; i-- {
		canvas.DrawCell(s.Body[i], s.Color)
	}
}
