package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() *MockTimeProvider {
	return NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestSpawnPlacement(t *testing.T) {
	cases := []struct {
		shape Shape
		wantX int
	}{
		{ShapeO, 5}, // 12/2 - 2/2
		{ShapeI, 4}, // 12/2 - 4/2
		{ShapeT, 5}, // 12/2 - 3/2 (floor division)
	}
	for _, tc := range cases {
		t.Run(tc.shape.String(), func(t *testing.T) {
			g := NewGame(12, 20,
				WithShapeSource(NewQueueSource(tc.shape)),
				WithTimeProvider(testClock()),
			)
			assert.Equal(t, tc.shape, g.Piece().Shape)
			assert.Equal(t, tc.wantX, g.Piece().X)
			assert.Equal(t, 0, g.Piece().Y)
		})
	}
}

func TestGravityTickWaitsForInterval(t *testing.T) {
	clock := testClock()
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO, ShapeO)),
		WithTimeProvider(clock),
	)

	g.Tick()
	assert.Equal(t, 0, g.Piece().Y, "no time elapsed")

	clock.Advance(999 * time.Millisecond)
	g.Tick()
	assert.Equal(t, 0, g.Piece().Y, "one millisecond short")

	clock.Advance(1 * time.Millisecond)
	g.Tick()
	assert.Equal(t, 1, g.Piece().Y, "full interval elapsed")

	g.Tick()
	assert.Equal(t, 1, g.Piece().Y, "timer reset by the drop")
}

func TestGravityIntervalOption(t *testing.T) {
	clock := testClock()
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO)),
		WithTimeProvider(clock),
		WithGravityInterval(100*time.Millisecond),
	)

	clock.Advance(100 * time.Millisecond)
	g.Tick()
	assert.Equal(t, 1, g.Piece().Y)
}

func TestDropResetsGravityTimer(t *testing.T) {
	clock := testClock()
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO)),
		WithTimeProvider(clock),
	)

	clock.Advance(600 * time.Millisecond)
	g.Drop()
	require.Equal(t, 1, g.Piece().Y)

	clock.Advance(999 * time.Millisecond)
	g.Tick()
	assert.Equal(t, 1, g.Piece().Y, "next automatic tick is a full interval after the drop")

	clock.Advance(1 * time.Millisecond)
	g.Tick()
	assert.Equal(t, 2, g.Piece().Y)
}

func TestMoveRevertsOnWalls(t *testing.T) {
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO)),
		WithTimeProvider(testClock()),
	)

	for i := 0; i < 20; i++ {
		g.Move(-1)
	}
	assert.Equal(t, 0, g.Piece().X, "blocked by the left wall")

	for i := 0; i < 20; i++ {
		g.Move(1)
	}
	assert.Equal(t, 10, g.Piece().X, "blocked by the right wall")
}

func TestMoveRevertsOnLockedCells(t *testing.T) {
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO)),
		WithTimeProvider(testClock()),
	)
	g.grid.cells[0][4] = 3
	g.grid.cells[1][4] = 3

	g.Move(-1)
	assert.Equal(t, 5, g.Piece().X)
}

func TestLockMergesAndSpawnsNext(t *testing.T) {
	g := NewGame(4, 6,
		WithShapeSource(NewQueueSource(ShapeO, ShapeT)),
		WithTimeProvider(testClock()),
	)
	require.Equal(t, 1, g.Piece().X)

	// O lands on the floor after four drops; the fifth locks it.
	for i := 0; i < 5; i++ {
		g.Drop()
	}

	assert.Equal(t, Cell(4), g.grid.cells[4][1])
	assert.Equal(t, Cell(4), g.grid.cells[4][2])
	assert.Equal(t, Cell(4), g.grid.cells[5][1])
	assert.Equal(t, Cell(4), g.grid.cells[5][2])
	assert.Equal(t, ShapeT, g.Piece().Shape, "next piece spawned")
	assert.Equal(t, 0, g.Piece().Y)
	assert.Equal(t, 0, g.Score(), "no rows cleared")
}

func TestScoringRule(t *testing.T) {
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeO)),
		WithTimeProvider(testClock()),
	)

	g.applyScore(4)
	assert.Equal(t, 800, g.Score())
	assert.True(t, g.TetrisChain())

	g.applyScore(4)
	assert.Equal(t, 2400, g.Score(), "back-to-back tetris pays 1600")
	assert.False(t, g.TetrisChain(), "chain flag toggles off after the pair")

	g.applyScore(1)
	assert.Equal(t, 2500, g.Score())
	assert.False(t, g.TetrisChain())

	g.applyScore(3)
	assert.Equal(t, 2800, g.Score())

	g.tetrisChain = true
	g.applyScore(0)
	assert.Equal(t, 2800, g.Score())
	assert.False(t, g.TetrisChain(), "a lock with no clear resets the chain")
}

func TestTetrisClearEndToEnd(t *testing.T) {
	var clearedRows []int
	g := NewGame(4, 8,
		WithShapeSource(NewQueueSource(ShapeI, ShapeO)),
		WithTimeProvider(testClock()),
		WithClearHandler(func(rows int) { clearedRows = append(clearedRows, rows) }),
	)
	require.Equal(t, 0, g.Piece().X, "vertical bar hangs over column 1")

	// Bottom four rows full except the column the I will fill.
	for y := 4; y < 8; y++ {
		g.grid.cells[y][0] = 2
		g.grid.cells[y][2] = 2
		g.grid.cells[y][3] = 2
	}

	for i := 0; i < 5; i++ {
		g.Drop()
	}

	assert.Equal(t, 800, g.Score())
	assert.True(t, g.TetrisChain())
	assert.Equal(t, []int{4}, clearedRows)
	assert.Equal(t, snapshot(NewGrid(4, 8)), snapshot(g.grid), "sweep emptied the arena")
	assert.Equal(t, ShapeO, g.Piece().Shape)
}

func TestGameOverResetsSession(t *testing.T) {
	gameOvers := 0
	g := NewGame(4, 4,
		WithShapeSource(NewQueueSource(ShapeO, ShapeO, ShapeO)),
		WithTimeProvider(testClock()),
		WithGameOverHandler(func() { gameOvers++ }),
	)
	g.score = 300

	// First O locks on the floor (rows 2-3), second locks on top of it
	// (rows 0-1), and the third cannot spawn: game over.
	for i := 0; i < 4; i++ {
		g.Drop()
	}

	assert.Equal(t, 1, gameOvers)
	assert.Equal(t, 0, g.Score())
	assert.False(t, g.TetrisChain())
	assert.Equal(t, snapshot(NewGrid(4, 4)), snapshot(g.grid), "arena cleared")
	assert.Equal(t, ShapeO, g.Piece().Shape, "fresh game starts immediately")
	assert.Equal(t, 1, g.Piece().X)
	assert.Equal(t, 0, g.Piece().Y)
}

func TestRotateDelegatesWithKick(t *testing.T) {
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeT)),
		WithTimeProvider(testClock()),
	)

	g.Rotate(Clockwise)
	want := ShapeMatrix(ShapeT)
	want.Rotate(Clockwise)
	assert.Equal(t, want, g.Piece().Matrix)

	g.Rotate(CounterClockwise)
	assert.Equal(t, ShapeMatrix(ShapeT), g.Piece().Matrix)
}

func TestAccessors(t *testing.T) {
	g := NewGame(12, 20,
		WithShapeSource(NewQueueSource(ShapeS)),
		WithTimeProvider(testClock()),
	)

	w, h := g.Size()
	assert.Equal(t, 12, w)
	assert.Equal(t, 20, h)
	assert.Len(t, g.Cells(), 20)
	assert.Len(t, g.Cells()[0], 12)
	assert.Equal(t, Cell(5), g.Piece().Color())
}
