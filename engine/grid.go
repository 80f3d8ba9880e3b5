package engine

// Grid is the arena tetrominoes accumulate in. Dimensions are fixed at
// creation; rows are ordered top (index 0) to bottom (index height-1).
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an all-empty arena.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the arena width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the arena height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Cells returns the locked cell rows. Callers must treat the returned
// slices as read-only; mutation goes through Merge and SweepFullRows.
func (g *Grid) Cells() [][]Cell {
	return g.cells
}

// Collides reports whether any occupied cell of the piece maps to an
// out-of-bounds or already-occupied grid cell. This is the single
// authoritative bounds+overlap verdict used by every move, rotate,
// drop, and spawn; bounds are checked before the grid is indexed.
func (g *Grid) Collides(p *Piece) bool {
	for y, row := range p.Matrix {
		for x, c := range row {
			if c == 0 {
				continue
			}
			gx := p.X + x
			gy := p.Y + y
			if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
				return true
			}
			if g.cells[gy][gx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge copies the piece's occupied cells into the grid. The caller
// must have verified Collides is false at the piece's position.
func (g *Grid) Merge(p *Piece) {
	for y, row := range p.Matrix {
		for x, c := range row {
			if c != 0 {
				g.cells[p.Y+y][p.X+x] = c
			}
		}
	}
}

// SweepFullRows removes every fully-occupied row, inserting an empty
// row at the top for each, and returns the number cleared. The scan
// runs bottom-to-top and re-examines the same index after a removal so
// stacked full rows are not skipped.
func (g *Grid) SweepFullRows() int {
	cleared := 0
	for y := g.height - 1; y >= 0; y-- {
		if !g.rowFull(y) {
			continue
		}
		g.removeRow(y)
		cleared++
		y++
	}
	return cleared
}

func (g *Grid) rowFull(y int) bool {
	for _, c := range g.cells[y] {
		if c == 0 {
			return false
		}
	}
	return true
}

// removeRow shifts every row above y down by one and zeroes the top
// row, preserving the relative order of the remaining rows.
func (g *Grid) removeRow(y int) {
	for yy := y; yy > 0; yy-- {
		copy(g.cells[yy], g.cells[yy-1])
	}
	for x := range g.cells[0] {
		g.cells[0][x] = 0
	}
}

// Clear zeroes every cell. Used on game over.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for x := range row {
			row[x] = 0
		}
	}
}
