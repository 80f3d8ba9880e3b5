package engine

import "time"

// Scoring per lock, by cleared row count.
const (
	rowScore         = 100  // per row, 1-3 rows
	tetrisScore      = 800  // exactly 4 rows
	tetrisChainScore = 1600 // 4 rows immediately after a previous tetris
)

const defaultGravityInterval = 1000 * time.Millisecond

// Game is the controller: it owns the session (grid, live piece,
// score, gravity timer) and runs the spawn/fall/lock/clear cycle.
// All operations are synchronous and must be called from a single
// goroutine; "failures" like a declined rotation or an impossible
// spawn are state-machine outcomes, never errors.
type Game struct {
	grid  *Grid
	piece *Piece

	score       int
	tetrisChain bool // last sweep cleared exactly 4 rows

	interval time.Duration
	lastDrop time.Time

	clock  TimeProvider
	shapes ShapeSource

	onClear    func(rows int)
	onGameOver func()
}

// Option configures a Game at construction.
type Option func(*Game)

// WithGravityInterval sets the automatic drop interval.
func WithGravityInterval(d time.Duration) Option {
	return func(g *Game) { g.interval = d }
}

// WithTimeProvider replaces the gravity clock.
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) { g.clock = tp }
}

// WithShapeSource replaces the spawn shape source.
func WithShapeSource(src ShapeSource) Option {
	return func(g *Game) { g.shapes = src }
}

// WithClearHandler registers a callback fired after a sweep that
// cleared at least one row.
func WithClearHandler(fn func(rows int)) Option {
	return func(g *Game) { g.onClear = fn }
}

// WithGameOverHandler registers a callback fired when a spawned piece
// collides immediately and the session resets.
func WithGameOverHandler(fn func()) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// NewGame creates a session with an empty arena and spawns the first
// piece.
func NewGame(width, height int, opts ...Option) *Game {
	g := &Game{
		grid:     NewGrid(width, height),
		interval: defaultGravityInterval,
		clock:    NewMonotonicTimeProvider(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.shapes == nil {
		g.shapes = NewRandomSource(g.clock.Now().UnixNano())
	}
	g.lastDrop = g.clock.Now()
	g.spawn()
	return g
}

// Tick advances gravity if the interval has elapsed since the last
// drop. Call it on a steady external schedule.
func (g *Game) Tick() {
	now := g.clock.Now()
	if now.Sub(g.lastDrop) < g.interval {
		return
	}
	g.stepDown(now)
}

// Drop moves the piece down one row immediately and resets the gravity
// timer, so the next automatic tick is a full interval away.
func (g *Game) Drop() {
	g.stepDown(g.clock.Now())
}

// Move shifts the piece dx columns (-1 or +1), reverting on collision.
func (g *Game) Move(dx int) {
	g.piece.X += dx
	if g.grid.Collides(g.piece) {
		g.piece.X -= dx
	}
}

// Rotate turns the piece with wall-kick recovery. A rotation no kick
// offset can resolve is declined silently.
func (g *Game) Rotate(dir Direction) {
	kickRotate(g.grid, g.piece, dir)
}

// stepDown is one gravity step: descend, and lock on collision.
func (g *Game) stepDown(now time.Time) {
	g.lastDrop = now
	g.piece.Y++
	if !g.grid.Collides(g.piece) {
		return
	}
	g.piece.Y--
	g.lock()
}

// lock merges the landed piece, sweeps, scores, and spawns the next
// piece, all within the current call.
func (g *Game) lock() {
	g.grid.Merge(g.piece)
	rows := g.grid.SweepFullRows()
	g.applyScore(rows)
	if rows > 0 && g.onClear != nil {
		g.onClear(rows)
	}
	g.spawn()
}

// applyScore applies the per-lock scoring rule. A tetris (exactly 4
// rows) is worth 800, or 1600 when the previous sweep was also a
// tetris; the chain flag toggles so the bonus pairs up rather than
// compounding. Any other lock scores 100 per row and resets the flag.
func (g *Game) applyScore(rows int) {
	if rows == 4 {
		if g.tetrisChain {
			g.score += tetrisChainScore
		} else {
			g.score += tetrisScore
		}
		g.tetrisChain = !g.tetrisChain
		return
	}
	g.score += rows * rowScore
	g.tetrisChain = false
}

// spawn selects the next shape and places it centered at the top. If
// it cannot be placed the board is full: the session resets (game
// over) and a fresh game begins immediately with this piece.
func (g *Game) spawn() {
	p := NewPiece(g.shapes.Next())
	p.X = g.grid.Width()/2 - p.Width()/2
	p.Y = 0
	g.piece = p
	if g.grid.Collides(p) {
		g.reset()
	}
}

// reset is the game-over transition: empty arena, zero score, chain
// flag cleared.
func (g *Game) reset() {
	g.grid.Clear()
	g.score = 0
	g.tetrisChain = false
	if g.onGameOver != nil {
		g.onGameOver()
	}
}

// Size returns the arena dimensions.
func (g *Game) Size() (width, height int) {
	return g.grid.width, g.grid.height
}

// Cells returns the locked arena rows, for rendering. Read-only.
func (g *Game) Cells() [][]Cell {
	return g.grid.cells
}

// Piece returns the live falling piece, for rendering. Read-only.
func (g *Game) Piece() *Piece {
	return g.piece
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// TetrisChain reports whether the last sweep was a tetris, for a
// back-to-back indicator.
func (g *Game) TetrisChain() bool {
	return g.tetrisChain
}
