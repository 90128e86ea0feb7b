package entity

import "the-snake/game/types"

type Color struct {
	R, G, B uint8
}

// Canvas is the drawing surface entities render onto. Implementations own
// the pixel geometry and the board background/border colors.
type Canvas interface {
	// DrawCell fills c with fill and outlines it with the border color.
	DrawCell(c types.Cell, fill Color)
	// ClearCell paints c with the background color.
	ClearCell(c types.Cell)
}

// Drawable is implemented by every object that lives on the board.
type Drawable interface {
	Positions() []types.Cell
	Draw(canvas Canvas)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Apple)(nil)
)
