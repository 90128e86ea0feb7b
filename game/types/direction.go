package types

// Direction is one of the four cardinal directions
type Direction int

const (
	NONE  Direction = iota // nothing buffered
	UP
	RIGHT
	DOWN
	LEFT
)

// Directions lists every movable direction, in a fixed order.
var Directions = [...]Direction{UP, DOWN, LEFT, RIGHT}

// Delta converts a Direction into a unit displacement vector
func (d Direction) Delta() Cell {
	switch d {
	case UP:
		return Cell{X: 0, Y: -1}
	case RIGHT:
		return Cell{X: 1, Y: 0}
	case DOWN:
		return Cell{X: 0, Y: 1}
	case LEFT:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the 180° turn of d. NONE has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d != NONE && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
