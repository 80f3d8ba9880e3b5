package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// RGB color definitions, one per cell id plus chrome
var (
	RgbPieceI = tcell.NewRGBColor(13, 194, 255)  // Cyan
	RgbPieceJ = tcell.NewRGBColor(56, 119, 255)  // Blue
	RgbPieceL = tcell.NewRGBColor(255, 142, 13)  // Orange
	RgbPieceO = tcell.NewRGBColor(255, 225, 56)  // Yellow
	RgbPieceS = tcell.NewRGBColor(13, 255, 114)  // Green
	RgbPieceT = tcell.NewRGBColor(245, 56, 255)  // Purple
	RgbPieceZ = tcell.NewRGBColor(255, 13, 114)  // Red

	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame      = tcell.NewRGBColor(120, 124, 153) // Muted frame gray
	RgbScoreText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbChainText  = tcell.NewRGBColor(255, 255, 0)   // Bright yellow for TETRIS!
)

// pieceColors indexes display colors by cell id - 1.
var pieceColors = [...]tcell.Color{
	RgbPieceI,
	RgbPieceJ,
	RgbPieceL,
	RgbPieceO,
	RgbPieceS,
	RgbPieceT,
	RgbPieceZ,
}

// CellColor returns the display color for a cell id. Empty or unknown
// ids render as background.
func CellColor(c engine.Cell) tcell.Color {
	if c == 0 || int(c) > len(pieceColors) {
		return RgbBackground
	}
	return pieceColors[c-1]
}
