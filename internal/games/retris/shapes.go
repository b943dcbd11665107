package retris

import (
	"fmt"

	"github.com/mkruglov/retris/internal/core"
)

// Shape identifies one of the five playable pieces.
// The set is intentionally reduced: no J or Z.
type Shape int

const (
	ShapeI Shape = iota // Straight
	ShapeO              // Square
	ShapeT              // Tee
	ShapeL              // Ell
	ShapeS              // Slew

	shapeCount
)

// Point is a cell offset relative to a piece's anchor.
// Y grows downward, matching grid coordinates.
type Point struct {
	X, Y int
}

// rotationStates holds the precomputed cell offsets for every rotation
// index of one shape.
type rotationStates [][]Point

// shapeSpec describes a shape before rotation expansion.
type shapeSpec struct {
	name    string
	color   core.Color
	cells   []Point
	rotates bool
}

// Base offsets per shape. The O piece keeps a single aligned state.
var shapeSpecs = [shapeCount]shapeSpec{
	ShapeI: {
		name:    "I",
		color:   core.ColorCyan,
		cells:   []Point{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		rotates: true,
	},
	ShapeO: {
		name:    "O",
		color:   core.ColorYellow,
		cells:   []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		rotates: false,
	},
	ShapeT: {
		name:    "T",
		color:   core.ColorMagenta,
		cells:   []Point{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		rotates: true,
	},
	ShapeL: {
		name:    "L",
		color:   core.ColorOrange,
		cells:   []Point{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		rotates: true,
	},
	ShapeS: {
		name:    "S",
		color:   core.ColorGreen,
		cells:   []Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		rotates: true,
	},
}

// shapeTable is built once at init from shapeSpecs.
var shapeTable [shapeCount]rotationStates

func init() {
	for s := Shape(0); s < shapeCount; s++ {
		spec := shapeSpecs[s]
		if len(spec.cells) != 4 {
			panic(fmt.Sprintf("retris: shape %s must have 4 cells, has %d", spec.name, len(spec.cells)))
		}

		states := rotationStates{clonePoints(spec.cells)}
		if spec.rotates {
			prev := spec.cells
			for i := 1; i < 4; i++ {
				prev = rotatePointsCW(prev)
				states = append(states, prev)
			}
		}
		if len(states) == 0 {
			panic(fmt.Sprintf("retris: shape %s has no rotation states", spec.name))
		}
		shapeTable[s] = states
	}
}

// rotatePointsCW rotates offsets 90 degrees clockwise: (x, y) -> (y, -x).
func rotatePointsCW(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.Y, Y: -p.X}
	}
	return out
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Name returns the shape's single-letter name.
func (s Shape) Name() string {
	if s < 0 || s >= shapeCount {
		return "?"
	}
	return shapeSpecs[s].name
}

// Color returns the shape's display color.
func (s Shape) Color() core.Color {
	if s < 0 || s >= shapeCount {
		return core.ColorDefault
	}
	return shapeSpecs[s].color
}

// RotationCount returns how many distinct rotation states the shape has.
func (s Shape) RotationCount() int {
	return len(shapeTable[s])
}

// Cells returns the offsets for the given rotation index.
// The index is normalized modulo the shape's rotation count.
// The returned slice is shared; callers must not mutate it.
func (s Shape) Cells(rot int) []Point {
	states := shapeTable[s]
	n := len(states)
	rot = ((rot % n) + n) % n
	return states[rot]
}

// ShapeCount returns the number of playable shapes.
func ShapeCount() int {
	return int(shapeCount)
}
