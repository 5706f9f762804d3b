//go:build ebiten

package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	outlineColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	labelColor   = color.RGBA{A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// Stamp is the optional step number printed on a cell.
type Stamp struct {
	Step int
	Show bool
}

// BoardPainter draws a board of palette-encoded cells using a Layout.
type BoardPainter struct {
	layout Layout
	verts  []ebiten.Vertex
	idx    []uint16
}

// NewBoardPainter returns a painter for the given layout.
func NewBoardPainter(l Layout) *BoardPainter {
	return &BoardPainter{layout: l}
}

// Layout returns the painter geometry.
func (bp *BoardPainter) Layout() Layout { return bp.layout }

// Draw paints every cell, the side faces of the rim, step stamps and axes.
// cells is row-major; stamps may be nil.
func (bp *BoardPainter) Draw(dst *ebiten.Image, cells []uint8, stamps []Stamp, palette []color.RGBA) {
	l := bp.layout
	if len(cells) != l.Rows*l.Cols {
		return
	}
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			i := row*l.Cols + col
			c := ColorFor(palette, cells[i])
			r := l.Cell(row, col)
			vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
			vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, outlineColor, false)
			if col == 0 {
				bp.fillQuad(dst, l.LeftFace(row), Shade(c, LeftShade))
			}
			if row == l.Rows-1 {
				bp.fillQuad(dst, l.TopFace(col), Shade(c, TopShade))
			}
			if stamps != nil && stamps[i].Show {
				label := strconv.Itoa(stamps[i].Step)
				x, y := l.StampOrigin(row, col, len(label))
				s := l.StampScale()
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(s, s)
				op.GeoM.Translate(x, y)
				op.ColorScale.ScaleWithColor(color.White)
				text.DrawWithOptions(dst, label, basicfont.Face7x13, op)
			}
		}
	}
	for col := 0; col < l.Cols; col++ {
		p := l.ColumnLabel(col)
		label := strconv.Itoa(col)
		text.Draw(dst, label, basicfont.Face7x13, p.X-len(label)*GlyphWidth/2, p.Y+4, labelColor)
	}
	for row := 0; row < l.Rows; row++ {
		p := l.RowLabel(row)
		label := strconv.Itoa(row)
		text.Draw(dst, label, basicfont.Face7x13, p.X-len(label)*GlyphWidth/2, p.Y+4, labelColor)
	}
}

func (bp *BoardPainter) fillQuad(dst *ebiten.Image, pts [4]image.Point, c color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	bp.verts, bp.idx = path.AppendVerticesAndIndicesForFilling(bp.verts[:0], bp.idx[:0])
	for i := range bp.verts {
		bp.verts[i].SrcX = 1
		bp.verts[i].SrcY = 1
		bp.verts[i].ColorR = float32(c.R) / 0xff
		bp.verts[i].ColorG = float32(c.G) / 0xff
		bp.verts[i].ColorB = float32(c.B) / 0xff
		bp.verts[i].ColorA = float32(c.A) / 0xff
	}
	dst.DrawTriangles(bp.verts, bp.idx, whiteSubImage, &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd})
	vector.StrokeLine(dst, float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y), 1, outlineColor, false)
}
