//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads color snapshots into a single ebiten image.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Blit uploads colors into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, colors [][]color.NRGBA, scale int) {
	if rows, cols := Dims(colors); rows != gp.rows || cols != gp.cols {
		return
	}
	Fill(gp.buf, colors)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
