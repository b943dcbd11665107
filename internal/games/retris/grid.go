package retris

import "github.com/mkruglov/retris/internal/core"

// Grid is the playfield. It is taller than what the player sees:
// spawnRows hidden rows sit above the visible area so pieces can
// enter the board before becoming visible. Row 0 is the topmost
// hidden row; row height-1 is the floor.
//
// A cell holding core.ColorDefault is empty.
type Grid struct {
	width     int
	height    int // spawnRows + visible height
	spawnRows int
	cells     [][]core.Color
}

// NewGrid creates an empty grid.
func NewGrid(width, visibleHeight, spawnRows int) *Grid {
	g := &Grid{
		width:     width,
		height:    visibleHeight + spawnRows,
		spawnRows: spawnRows,
	}
	g.cells = make([][]core.Color, g.height)
	for y := range g.cells {
		g.cells[y] = make([]core.Color, width)
	}
	return g
}

// Width returns the playfield width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the total height including hidden spawn rows.
func (g *Grid) Height() int { return g.height }

// SpawnRows returns the number of hidden rows above the visible area.
func (g *Grid) SpawnRows() int { return g.spawnRows }

// VisibleHeight returns the height of the visible playfield.
func (g *Grid) VisibleHeight() int { return g.height - g.spawnRows }

// IsOccupied reports whether a cell blocks piece placement.
// Cells outside the horizontal range or at/below the floor block.
// Cells above the top of the grid do not.
func (g *Grid) IsOccupied(x, y int) bool {
	if x < 0 || x >= g.width {
		return true
	}
	if y >= g.height {
		return true
	}
	if y < 0 {
		return false
	}
	return g.cells[y][x] != core.ColorDefault
}

// Cell returns the color stored at (x, y), or core.ColorDefault when
// the coordinate is out of bounds.
func (g *Grid) Cell(x, y int) core.Color {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return core.ColorDefault
	}
	return g.cells[y][x]
}

// Lock writes the piece's cells into the grid with the shape's color.
// Cells that ended up above the top of the grid are dropped.
func (g *Grid) Lock(p Piece) {
	color := p.Shape.Color()
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
			continue
		}
		g.cells[c.Y][c.X] = color
	}
}

// FullRows returns the indices of completely filled visible rows in
// ascending order. Hidden spawn rows are never reported.
func (g *Grid) FullRows() []int {
	var full []int
	for y := g.spawnRows; y < g.height; y++ {
		filled := true
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == core.ColorDefault {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the given rows and shifts everything above them
// down in a single compaction pass. Returns the number of rows cleared.
func (g *Grid) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	// Copy surviving rows bottom-up, then blank what remains on top.
	dst := g.height - 1
	for src := g.height - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		g.cells[dst] = g.cells[src]
		dst--
	}
	for y := dst; y >= 0; y-- {
		g.cells[y] = make([]core.Color, g.width)
	}
	return len(rows)
}

// Clear empties the whole grid.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = core.ColorDefault
		}
	}
}

// OccupiedCount returns the number of filled cells. Used for snapshots.
func (g *Grid) OccupiedCount() int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != core.ColorDefault {
				n++
			}
		}
	}
	return n
}
