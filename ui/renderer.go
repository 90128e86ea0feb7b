package ui

import (
	"the-snake/game"
	"the-snake/game/entity"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the board with raylib. It implements entity.Canvas so
// every entity paints itself through it.
type Renderer struct {
	cellSize   int32
	background rl.Color
	border     rl.Color
}

var _ entity.Canvas = (*Renderer)(nil)

func NewRenderer(cfg game.Config) *Renderer {
	return &Renderer{
		cellSize:   int32(cfg.CellSize),
		background: toRaylib(cfg.Background),
		border:     toRaylib(cfg.Border),
	}
}

// Draw renders one frame. raylib swaps between two back buffers, so the
// frame is cleared and redrawn in full every time.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	for _, e := range g.Entities() {
		e.Draw(r)
	}

	rl.EndDrawing()
}

func (r *Renderer) DrawCell(c types.Cell, fill entity.Color) {
	x, y := r.origin(c)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toRaylib(fill))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, r.border)
}

func (r *Renderer) ClearCell(c types.Cell) {
	x, y := r.origin(c)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, r.background)
}

// origin returns the top-left pixel of a cell
func (r *Renderer) origin(c types.Cell) (int32, int32) {
	return int32(c.X) * r.cellSize, int32(c.Y) * r.cellSize
}

func toRaylib(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
