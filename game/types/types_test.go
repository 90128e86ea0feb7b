package types

import "testing"

func TestMod(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{v: 0, n: 5, want: 0},
		{v: 4, n: 5, want: 4},
		{v: 5, n: 5, want: 0},
		{v: -1, n: 5, want: 4},
		{v: -6, n: 5, want: 4},
		{v: 12, n: 5, want: 2},
	}
	for _, tc := range tests {
		if got := Mod(tc.v, tc.n); got != tc.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Cell
	}{
		{name: "none", dir: NONE, want: Cell{0, 0}},
		{name: "up", dir: UP, want: Cell{0, -1}},
		{name: "down", dir: DOWN, want: Cell{0, 1}},
		{name: "left", dir: LEFT, want: Cell{-1, 0}},
		{name: "right", dir: RIGHT, want: Cell{1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.want {
				t.Fatalf("%v.Delta() = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		opp := d.Opposite()
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) = false", d, opp)
		}
		if opp.Opposite() != d {
			t.Errorf("opposite of opposite of %v is %v", d, opp.Opposite())
		}
		sum := d.Delta().Add(opp.Delta())
		if sum != (Cell{}) {
			t.Errorf("%v and %v deltas do not cancel: %v", d, opp, sum)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v reported as its own opposite", d)
		}
	}
	if NONE.IsOpposite(NONE) {
		t.Error("NONE reported as opposite of NONE")
	}
}

func TestGridMoveWrapsAtEveryBoundary(t *testing.T) {
	grid := Grid{Width: 7, Height: 4}

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			onEdge := x == 0 || y == 0 || x == grid.Width-1 || y == grid.Height-1
			if !onEdge {
				continue
			}
			for _, d := range Directions {
				got := grid.Move(Cell{x, y}, d)
				if !grid.Contains(got) {
					t.Fatalf("Move(%d,%d, %v) = %v, outside %dx%d", x, y, d, got, grid.Width, grid.Height)
				}
			}
		}
	}

	tests := []struct {
		name string
		from Cell
		dir  Direction
		want Cell
	}{
		{name: "left edge", from: Cell{0, 2}, dir: LEFT, want: Cell{6, 2}},
		{name: "right edge", from: Cell{6, 2}, dir: RIGHT, want: Cell{0, 2}},
		{name: "top edge", from: Cell{3, 0}, dir: UP, want: Cell{3, 3}},
		{name: "bottom edge", from: Cell{3, 3}, dir: DOWN, want: Cell{3, 0}},
		{name: "interior", from: Cell{3, 1}, dir: RIGHT, want: Cell{4, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.Move(tc.from, tc.dir); got != tc.want {
				t.Fatalf("Move(%v, %v) = %v, want %v", tc.from, tc.dir, got, tc.want)
			}
		})
	}
}

func TestGridCenter(t *testing.T) {
	if got := (Grid{Width: 32, Height: 24}).Center(); got != (Cell{16, 12}) {
		t.Fatalf("Center() = %v, want {16 12}", got)
	}
	if got := (Grid{Width: 5, Height: 3}).Center(); got != (Cell{2, 1}) {
		t.Fatalf("Center() = %v, want {2 1}", got)
	}
}
