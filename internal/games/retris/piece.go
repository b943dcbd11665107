package retris

// Piece is the falling tetromino: a shape, a rotation index and the
// anchor position on the grid.
type Piece struct {
	Shape Shape
	Rot   int
	X, Y  int
}

// Cells returns the piece's absolute grid coordinates.
func (p Piece) Cells() []Point {
	offs := p.Shape.Cells(p.Rot)
	out := make([]Point, len(offs))
	for i, o := range offs {
		out[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return out
}

// CanPlace reports whether the piece fits on the grid at its current
// pose. A pose fits when every cell is inside the horizontal range,
// above the floor and not overlapping a locked cell. Cells above the
// top of the grid are allowed.
func CanPlace(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if g.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// kickOffsets are the horizontal adjustments tried when a rotation is
// blocked, in order. 0 is the in-place attempt.
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// shifted returns the piece moved horizontally if the move fits.
// A blocked move returns the piece unchanged and false.
func shifted(g *Grid, p Piece, dx int) (Piece, bool) {
	q := p
	q.X += dx
	if !CanPlace(g, q) {
		return p, false
	}
	return q, true
}

// dropped returns the piece moved one cell down if the move fits.
func dropped(g *Grid, p Piece) (Piece, bool) {
	q := p
	q.Y++
	if !CanPlace(g, q) {
		return p, false
	}
	return q, true
}

// rotatedCW returns the piece rotated clockwise, trying each kick
// offset in order. Every candidate pose is tested as a whole; the
// piece is never left mid-rotation. A rotation with no valid candidate
// returns the piece unchanged and false.
func rotatedCW(g *Grid, p Piece) (Piece, bool) {
	if p.Shape.RotationCount() == 1 {
		return p, false
	}
	for _, dx := range kickOffsets {
		q := p
		q.Rot = (p.Rot + 1) % p.Shape.RotationCount()
		q.X = p.X + dx
		if CanPlace(g, q) {
			return q, true
		}
	}
	return p, false
}
