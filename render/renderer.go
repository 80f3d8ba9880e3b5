package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// Each arena cell is drawn two terminal columns wide so blocks come
// out roughly square.
const cellWidth = 2

// Renderer paints a game session onto a tcell screen. The arena is
// centered every frame, so terminal resizes need no extra handling
// beyond a screen sync.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints the full frame: arena frame, locked cells, the falling
// piece, and the score panel.
func (r *Renderer) Draw(g *engine.Game) {
	r.screen.Clear()

	w, h := g.Size()
	sw, sh := r.screen.Size()
	originX := (sw - w*cellWidth) / 2
	originY := (sh - h) / 2

	r.drawFrame(originX, originY, w, h)
	r.drawCells(originX, originY, g.Cells())
	r.drawPiece(originX, originY, g.Piece())
	r.drawPanel(originX+w*cellWidth+3, originY, g)

	r.screen.Show()
}

func (r *Renderer) drawFrame(ox, oy, w, h int) {
	style := tcell.StyleDefault.Foreground(RgbFrame)
	for x := -1; x <= w*cellWidth; x++ {
		r.screen.SetContent(ox+x, oy-1, '─', nil, style)
		r.screen.SetContent(ox+x, oy+h, '─', nil, style)
	}
	for y := 0; y < h; y++ {
		r.screen.SetContent(ox-1, oy+y, '│', nil, style)
		r.screen.SetContent(ox+w*cellWidth, oy+y, '│', nil, style)
	}
	r.screen.SetContent(ox-1, oy-1, '┌', nil, style)
	r.screen.SetContent(ox+w*cellWidth, oy-1, '┐', nil, style)
	r.screen.SetContent(ox-1, oy+h, '└', nil, style)
	r.screen.SetContent(ox+w*cellWidth, oy+h, '┘', nil, style)
}

func (r *Renderer) drawCells(ox, oy int, cells [][]engine.Cell) {
	for y, row := range cells {
		for x, c := range row {
			if c != 0 {
				r.drawBlock(ox, oy, x, y, c)
			}
		}
	}
}

func (r *Renderer) drawPiece(ox, oy int, p *engine.Piece) {
	for y, row := range p.Matrix {
		for x, c := range row {
			if c != 0 {
				r.drawBlock(ox, oy, p.X+x, p.Y+y, c)
			}
		}
	}
}

func (r *Renderer) drawBlock(ox, oy, x, y int, c engine.Cell) {
	style := tcell.StyleDefault.Background(CellColor(c))
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(ox+x*cellWidth+i, oy+y, ' ', nil, style)
	}
}

func (r *Renderer) drawPanel(px, py int, g *engine.Game) {
	r.drawText(px, py, fmt.Sprintf("SCORE %d", g.Score()), RgbScoreText)
	if g.TetrisChain() {
		r.drawText(px, py+2, "TETRIS!", RgbChainText)
	}
}

func (r *Renderer) drawText(x, y int, text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
