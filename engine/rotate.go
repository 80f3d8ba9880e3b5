package engine

// Direction selects the rotation sense.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Rotate turns a square matrix 90° in place: transpose, then reverse
// each row (clockwise) or reverse the row order (counter-clockwise).
// Applying the opposite direction restores the matrix exactly.
func (m Matrix) Rotate(dir Direction) {
	for y := range m {
		for x := 0; x < y; x++ {
			m[y][x], m[x][y] = m[x][y], m[y][x]
		}
	}
	if dir == Clockwise {
		for _, row := range m {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	} else {
		for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
			m[i], m[j] = m[j], m[i]
		}
	}
}

// kickRotate rotates the piece and, while it collides, probes the
// cumulative x-offset sequence +1, -2, +3, -4, … (wall kick), testing
// collision after every shift. When the next pending offset's
// magnitude would exceed the piece's row width the rotation is
// declined: the matrix is rotated back and the original x restored,
// leaving the piece untouched. Bounded by width+1 probes.
//
// The bound compares against the piece width rather than the remaining
// arena space, which can reject rotations near a wall earlier than
// strictly necessary. Known quirk, kept for behavior compatibility.
func kickRotate(grid *Grid, p *Piece, dir Direction) bool {
	origX := p.X
	offset := 1
	p.Matrix.Rotate(dir)
	for grid.Collides(p) {
		if abs(offset) > p.Width() {
			p.Matrix.Rotate(-dir)
			p.X = origX
			return false
		}
		p.X += offset
		offset = -(offset + sign(offset))
	}
	return true
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
