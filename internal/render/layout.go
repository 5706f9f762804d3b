package render

import "image"

// Layout places a rows x cols board on screen with row 0 at the bottom and a
// pseudo-3D rim: left faces on column 0 and top faces on the last row.
type Layout struct {
	Rows, Cols int
	CellSize   int
	Depth      int
	Margin     int
}

// NewLayout returns a layout with the standard rim depth and margin.
func NewLayout(rows, cols, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 24
	}
	return Layout{Rows: rows, Cols: cols, CellSize: cellSize, Depth: 10, Margin: 20}
}

// Size returns the canvas size needed for the board and its axes.
func (l Layout) Size() (int, int) {
	return l.Cols*l.CellSize + l.Depth + 2*l.Margin, l.Rows*l.CellSize + l.Depth + 2*l.Margin
}

// Cell returns the screen rectangle of (row, col).
func (l Layout) Cell(row, col int) image.Rectangle {
	x1 := col*l.CellSize + l.Depth + l.Margin
	y1 := (l.Rows-row-1)*l.CellSize + l.Depth + l.Margin
	return image.Rect(x1, y1, x1+l.CellSize, y1+l.CellSize)
}

// LeftFace returns the side polygon drawn left of (row, 0).
func (l Layout) LeftFace(row int) [4]image.Point {
	r := l.Cell(row, 0)
	d := l.Depth
	return [4]image.Point{
		{X: r.Min.X - d, Y: r.Min.Y - d},
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X - d, Y: r.Max.Y - d},
	}
}

// TopFace returns the side polygon drawn above (Rows-1, col).
func (l Layout) TopFace(col int) [4]image.Point {
	r := l.Cell(l.Rows-1, col)
	d := l.Depth
	return [4]image.Point{
		{X: r.Min.X - d, Y: r.Min.Y - d},
		{X: r.Max.X - d, Y: r.Min.Y - d},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Min.Y},
	}
}

// ColumnLabel returns the anchor of the column index label below the board.
func (l Layout) ColumnLabel(col int) image.Point {
	return image.Point{
		X: col*l.CellSize + l.Depth + l.CellSize/2 + l.Margin,
		Y: l.Rows*l.CellSize + l.Depth + l.Margin + 10,
	}
}

// RowLabel returns the anchor of the row index label left of the board.
func (l Layout) RowLabel(row int) image.Point {
	return image.Point{
		X: l.Depth,
		Y: (l.Rows-row-1)*l.CellSize + l.Depth + l.CellSize/2 + l.Margin,
	}
}

// FontSize scales step numbers so three digits fit in a cell.
func (l Layout) FontSize() int {
	if s := l.CellSize * 4 / 10; s > 8 {
		return s
	}
	return 8
}

// Glyph metrics of the fixed bitmap face used for labels.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

// StampScale is the factor applied to the bitmap face so step numbers are
// drawn at FontSize.
func (l Layout) StampScale() float64 {
	return float64(l.FontSize()) / GlyphHeight
}

// StampOrigin returns the baseline origin that centres a label of n glyphs
// in (row, col) at StampScale.
func (l Layout) StampOrigin(row, col, n int) (float64, float64) {
	r := l.Cell(row, col)
	s := l.StampScale()
	x := float64(r.Min.X) + (float64(r.Dx())-float64(n*GlyphWidth)*s)/2
	y := float64(r.Min.Y) + (float64(r.Dy())+float64(GlyphHeight-4)*s)/2
	return x, y
}

// CellAt maps a screen point back to a cell, reporting false outside the board.
func (l Layout) CellAt(x, y int) (int, int, bool) {
	x -= l.Depth + l.Margin
	y -= l.Depth + l.Margin
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col := x / l.CellSize
	row := l.Rows - 1 - y/l.CellSize
	if col >= l.Cols || row < 0 {
		return 0, 0, false
	}
	return row, col, true
}
