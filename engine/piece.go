package engine

// Piece is the falling tetromino: its shape bitmap and the grid
// coordinates of the bitmap's top-left cell. The controller owns the
// single live piece; rotation mutates Matrix in place and move/drop
// mutate the position, so no aliasing ever arises.
type Piece struct {
	Shape  Shape
	Matrix Matrix
	X, Y   int
}

// NewPiece creates a piece in spawn orientation at the origin.
func NewPiece(s Shape) *Piece {
	return &Piece{
		Shape:  s,
		Matrix: ShapeMatrix(s),
	}
}

// Width returns the piece matrix's row width.
func (p *Piece) Width() int {
	return len(p.Matrix[0])
}

// Color returns the piece's cell color id.
func (p *Piece) Color() Cell {
	return p.Shape.CellID()
}
