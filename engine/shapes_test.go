package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCatalog(t *testing.T) {
	for s := Shape(0); s < ShapeCount; s++ {
		m := ShapeMatrix(s)

		require.NotEmpty(t, m, "%v", s)
		for _, row := range m {
			assert.Len(t, row, len(m), "%v matrix must be square", s)
		}

		occupied := 0
		for _, row := range m {
			for _, c := range row {
				if c == 0 {
					continue
				}
				occupied++
				assert.Equal(t, s.CellID(), c, "%v cells carry the shape's color id", s)
			}
		}
		assert.Equal(t, 4, occupied, "%v is a 4-cell shape", s)
	}
}

func TestShapeCellIDs(t *testing.T) {
	assert.Equal(t, Cell(1), ShapeI.CellID())
	assert.Equal(t, Cell(7), ShapeZ.CellID())
}

func TestShapeMatrixReturnsCopy(t *testing.T) {
	m := ShapeMatrix(ShapeO)
	m[0][0] = 99

	assert.Equal(t, Cell(4), ShapeMatrix(ShapeO)[0][0], "catalog must not be mutable through copies")
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "I", ShapeI.String())
	assert.Equal(t, "Z", ShapeZ.String())
	assert.Equal(t, "?", Shape(42).String())
}

func TestRandomSourceDeterministicPerSeed(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)

	for i := 0; i < 50; i++ {
		s := a.Next()
		assert.Equal(t, s, b.Next())
		assert.GreaterOrEqual(t, int(s), 0)
		assert.Less(t, int(s), ShapeCount)
	}
}

func TestQueueSourceReplaysInOrder(t *testing.T) {
	q := NewQueueSource(ShapeT, ShapeO)
	q.Push(ShapeI)

	assert.Equal(t, ShapeT, q.Next())
	assert.Equal(t, ShapeO, q.Next())
	assert.Equal(t, ShapeI, q.Next())
}
