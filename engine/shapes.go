package engine

import "math/rand"

// Cell is one grid or piece-matrix cell. Zero means empty; values 1..7
// identify the occupying shape's color class. Grid and piece share this
// encoding so a merge is a direct copy.
type Cell uint8

// Matrix is a rectangular block of cells, rows top to bottom.
type Matrix [][]Cell

// Shape identifies one of the seven tetromino kinds.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	ShapeCount = 7
)

var shapeNames = [ShapeCount]string{"I", "J", "L", "O", "S", "T", "Z"}

func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return shapeNames[s]
}

// CellID returns the shape's color id (1..7 in catalog order).
func (s Shape) CellID() Cell {
	return Cell(s + 1)
}

// Spawn-orientation bitmaps. Every nonzero cell carries the shape's
// color id so merged cells keep their identity.
var shapeMatrices = [ShapeCount]Matrix{
	ShapeI: {
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	},
	ShapeJ: {
		{0, 2, 0},
		{0, 2, 0},
		{2, 2, 0},
	},
	ShapeL: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	ShapeO: {
		{4, 4},
		{4, 4},
	},
	ShapeS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	ShapeT: {
		{6, 6, 6},
		{0, 6, 0},
		{0, 0, 0},
	},
	ShapeZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapeMatrix returns a fresh copy of the shape's spawn-orientation
// matrix. Callers own the copy; rotation mutates it in place.
func ShapeMatrix(s Shape) Matrix {
	src := shapeMatrices[s]
	m := make(Matrix, len(src))
	for y, row := range src {
		m[y] = make([]Cell, len(row))
		copy(m[y], row)
	}
	return m
}

// ShapeSource supplies the next shape to spawn. The seam exists so
// tests can replace true randomness with a deterministic sequence.
type ShapeSource interface {
	Next() Shape
}

// RandomSource picks uniformly among the seven shapes.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a seeded uniform shape source.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random shape.
func (r *RandomSource) Next() Shape {
	return Shape(r.rng.Intn(ShapeCount))
}

// QueueSource replays a fixed sequence of shapes, for tests.
type QueueSource struct {
	queue []Shape
}

// NewQueueSource creates a queue source preloaded with the given shapes.
func NewQueueSource(shapes ...Shape) *QueueSource {
	return &QueueSource{queue: shapes}
}

// Push appends shapes to the replay queue.
func (q *QueueSource) Push(shapes ...Shape) {
	q.queue = append(q.queue, shapes...)
}

// Next pops the front of the queue. Panics when exhausted; queue
// sources are a test fixture and a short queue is a broken test.
func (q *QueueSource) Next() Shape {
	s := q.queue[0]
	q.queue = q.queue[1:]
	return s
}
