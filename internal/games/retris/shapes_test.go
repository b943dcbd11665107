package retris

import (
	"testing"

	"github.com/mkruglov/retris/internal/core"
)

func TestShapeCellCounts(t *testing.T) {
	for s := Shape(0); s < shapeCount; s++ {
		for rot := 0; rot < s.RotationCount(); rot++ {
			if got := len(s.Cells(rot)); got != 4 {
				t.Errorf("shape %s rot %d has %d cells, expected 4", s.Name(), rot, got)
			}
		}
	}
}

func TestShapeRotationCounts(t *testing.T) {
	if got := ShapeO.RotationCount(); got != 1 {
		t.Errorf("O should have a single rotation state, got %d", got)
	}
	for _, s := range []Shape{ShapeI, ShapeT, ShapeL, ShapeS} {
		if got := s.RotationCount(); got != 4 {
			t.Errorf("shape %s should have 4 rotation states, got %d", s.Name(), got)
		}
	}
}

func TestRotatePointsCW(t *testing.T) {
	// (x, y) -> (y, -x)
	in := []Point{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}
	want := []Point{{0, 1}, {0, 0}, {0, -1}, {1, 0}}

	got := rotatePointsCW(in)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: got %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestShapeCellsRotNormalized(t *testing.T) {
	// Rotation index wraps in both directions.
	for _, rot := range []int{4, 8, -4} {
		a := ShapeT.Cells(0)
		b := ShapeT.Cells(rot)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("T rot %d should equal rot 0", rot)
			}
		}
	}
}

func TestShapeFourRotationsCycle(t *testing.T) {
	for _, s := range []Shape{ShapeI, ShapeT, ShapeL, ShapeS} {
		pts := clonePoints(s.Cells(0))
		for i := 0; i < 4; i++ {
			pts = rotatePointsCW(pts)
		}
		base := s.Cells(0)
		for i := range base {
			if pts[i] != base[i] {
				t.Errorf("shape %s: four rotations should return to the base state", s.Name())
				break
			}
		}
	}
}

func TestShapeColorsAssigned(t *testing.T) {
	seen := make(map[Shape]bool)
	for s := Shape(0); s < shapeCount; s++ {
		if s.Color() == core.ColorDefault {
			t.Errorf("shape %s has no color", s.Name())
		}
		seen[s] = true
	}
	if len(seen) != ShapeCount() {
		t.Errorf("expected %d shapes, saw %d", ShapeCount(), len(seen))
	}
}
