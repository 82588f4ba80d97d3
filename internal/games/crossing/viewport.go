package crossing

import (
	"math"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Viewport maps board pixels to terminal cells.
// The whole board surface is scaled so that one tile covers
// CellsX x CellsY cells, and centered on the screen.
type Viewport struct {
	OriginX, OriginY int // Screen cell of the board's top-left corner
	CellsX, CellsY   int // Cells per tile
	TileW, TileH     int // Tile size in pixels
	BoardW, BoardH   int // Board size in pixels
}

// NewViewport creates a viewport for the given board and screen size.
func NewViewport(cfg config.CrossingConfig, screenW, screenH int) Viewport {
	vp := Viewport{
		CellsX: cfg.Viewport.CellsPerTileX,
		CellsY: cfg.Viewport.CellsPerTileY,
		TileW:  cfg.Board.TileWidth,
		TileH:  cfg.Board.TileHeight,
		BoardW: cfg.Board.Width,
		BoardH: cfg.Board.Height,
	}
	vp.OriginX = core.Max((screenW-vp.Width())/2, 0)
	vp.OriginY = core.Max((screenH-vp.Height())/2, 0)
	return vp
}

// Width returns the board width in cells.
func (v Viewport) Width() int {
	return int(math.Ceil(float64(v.BoardW) * float64(v.CellsX) / float64(v.TileW)))
}

// Height returns the board height in cells.
func (v Viewport) Height() int {
	return int(math.Ceil(float64(v.BoardH) * float64(v.CellsY) / float64(v.TileH)))
}

// Surface returns the board area in screen cells.
func (v Viewport) Surface() core.Rect {
	return core.NewRect(v.OriginX, v.OriginY, v.Width(), v.Height())
}

// Fits reports whether the whole board is visible on a screen of the given size.
func (v Viewport) Fits(screenW, screenH int) bool {
	return v.OriginX+v.Width() <= screenW && v.OriginY+v.Height() <= screenH
}

// CellX converts a board x coordinate to a screen column.
func (v Viewport) CellX(px float64) int {
	return v.OriginX + int(math.Floor(px*float64(v.CellsX)/float64(v.TileW)))
}

// CellY converts a board y coordinate to a screen line.
func (v Viewport) CellY(py float64) int {
	return v.OriginY + int(math.Floor(py*float64(v.CellsY)/float64(v.TileH)))
}

// Rect returns the screen cells covered by a pixel box.
func (v Viewport) Rect(b core.Box) core.Rect {
	x0, y0 := v.CellX(b.X), v.CellY(b.Y)
	x1 := v.OriginX + int(math.Ceil(b.Right()*float64(v.CellsX)/float64(v.TileW)))
	y1 := v.OriginY + int(math.Ceil(b.Bottom()*float64(v.CellsY)/float64(v.TileH)))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Set draws a cell if it lies on the board surface.
func (v Viewport) Set(dst *core.Screen, col, line int, r rune, c core.Color) {
	if !v.Surface().Contains(col, line) {
		return
	}
	dst.SetCell(col, line, r, c)
}

// Text draws a string clipped to the board surface.
func (v Viewport) Text(dst *core.Screen, col, line int, text string, c core.Color) {
	i := 0
	for _, r := range text {
		v.Set(dst, col+i, line, r, c)
		i++
	}
}

// CenteredText draws a string centered horizontally on the board.
func (v Viewport) CenteredText(dst *core.Screen, line int, text string, c core.Color) {
	col := v.OriginX + (v.Width()-len([]rune(text)))/2
	v.Text(dst, col, line, text, c)
}
