package ui

import (
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyDown:  types.DOWN,
	rl.KeyLeft:  types.LEFT,
	rl.KeyRight: types.RIGHT,
}

// Keyboard collects the key presses queued since the previous frame.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll drains the pending key queue. It returns the arrow-key directions in
// the order they were pressed, and quit=true once the window was asked to
// close. Any other key is dropped.
func (k *Keyboard) Poll() (dirs []types.Direction, quit bool) {
	if rl.WindowShouldClose() {
		return nil, true
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := keyDirections[key]; ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs, false
}
