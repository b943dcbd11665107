package retris

import (
	"testing"

	"github.com/mkruglov/retris/internal/core"
)

func TestPieceCells(t *testing.T) {
	p := Piece{Shape: ShapeT, X: 5, Y: 10}
	want := []Point{{4, 10}, {5, 10}, {6, 10}, {5, 11}}

	got := p.Cells()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: got %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCanPlace(t *testing.T) {
	g := newTestGrid()
	g.cells[10][5] = core.ColorRed

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"open space", Piece{Shape: ShapeO, X: 4, Y: 5}, true},
		{"partially above top", Piece{Shape: ShapeI, X: 4, Y: 0}, true},
		{"past left wall", Piece{Shape: ShapeT, X: 0, Y: 5}, false},
		{"past right wall", Piece{Shape: ShapeO, X: 9, Y: 5}, false},
		{"through floor", Piece{Shape: ShapeI, X: 4, Y: 22}, false},
		{"on floor", Piece{Shape: ShapeO, X: 4, Y: 22}, true},
		{"overlaps locked cell", Piece{Shape: ShapeO, X: 5, Y: 10}, false},
		{"beside locked cell", Piece{Shape: ShapeO, X: 6, Y: 10}, true},
	}

	for _, tc := range tests {
		if got := CanPlace(g, tc.piece); got != tc.want {
			t.Errorf("%s: CanPlace = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestShifted(t *testing.T) {
	g := newTestGrid()
	p := Piece{Shape: ShapeO, X: 4, Y: 10}

	moved, ok := shifted(g, p, 1)
	if !ok || moved.X != 5 {
		t.Errorf("open shift should move to x=5, got %v ok=%v", moved.X, ok)
	}

	// O occupies x and x+1, so x=8 is flush against the right wall.
	atWall := Piece{Shape: ShapeO, X: 8, Y: 10}
	moved, ok = shifted(g, atWall, 1)
	if ok {
		t.Error("shift into the wall should be rejected")
	}
	if moved != atWall {
		t.Errorf("rejected shift must leave the piece unchanged, got %+v", moved)
	}
}

func TestDropped(t *testing.T) {
	g := newTestGrid()

	p := Piece{Shape: ShapeO, X: 4, Y: 10}
	moved, ok := dropped(g, p)
	if !ok || moved.Y != 11 {
		t.Errorf("open drop should move to y=11, got %v ok=%v", moved.Y, ok)
	}

	onFloor := Piece{Shape: ShapeO, X: 4, Y: 22}
	if _, ok := dropped(g, onFloor); ok {
		t.Error("drop through the floor should be rejected")
	}
}

func TestRotatedCWInOpenSpace(t *testing.T) {
	g := newTestGrid()
	p := Piece{Shape: ShapeT, X: 5, Y: 10}

	r, ok := rotatedCW(g, p)
	if !ok {
		t.Fatal("rotation in open space should succeed")
	}
	if r.Rot != 1 || r.X != p.X || r.Y != p.Y {
		t.Errorf("open rotation should stay in place: got rot=%d at (%d, %d)", r.Rot, r.X, r.Y)
	}
}

func TestRotatedCWWallKick(t *testing.T) {
	g := newTestGrid()

	// Vertical I flush against the right wall. Rotating to horizontal
	// needs room to the left; the in-place pose does not fit.
	p := Piece{Shape: ShapeI, X: 9, Y: 10}

	r, ok := rotatedCW(g, p)
	if !ok {
		t.Fatal("kick should find a valid pose")
	}
	if !CanPlace(g, r) {
		t.Fatal("kicked pose must be valid")
	}
	if r.X >= p.X {
		t.Errorf("kick at the right wall should move the piece left, got x=%d", r.X)
	}
	if r.Y != p.Y {
		t.Errorf("kicks are horizontal only, y changed from %d to %d", p.Y, r.Y)
	}
}

func TestRotatedCWBlockedLeavesPieceUnchanged(t *testing.T) {
	g := newTestGrid()

	// Box in a vertical I so no kick offset can free the rotation.
	p := Piece{Shape: ShapeI, X: 5, Y: 10}
	for y := 8; y <= 13; y++ {
		for x := 0; x < g.Width(); x++ {
			if x == 5 {
				continue
			}
			g.cells[y][x] = core.ColorGray
		}
	}

	r, ok := rotatedCW(g, p)
	if ok {
		t.Fatal("rotation with every kick blocked should be rejected")
	}
	if r != p {
		t.Errorf("rejected rotation must leave the piece unchanged, got %+v", r)
	}
}

func TestRotatedCWSquareNoOp(t *testing.T) {
	g := newTestGrid()
	p := Piece{Shape: ShapeO, X: 4, Y: 10}

	r, ok := rotatedCW(g, p)
	if ok {
		t.Error("O rotation should report no change")
	}
	if r != p {
		t.Errorf("O rotation must be a no-op, got %+v", r)
	}
}
