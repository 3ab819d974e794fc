package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Dims returns the row and column count of a color snapshot.
func Dims(colors [][]color.NRGBA) (rows, cols int) {
	if len(colors) == 0 {
		return 0, 0
	}
	return len(colors), len(colors[0])
}

// Fill converts a row-major color snapshot into premultiplied RGBA pixels in
// buf. buf must hold 4*rows*cols bytes; short buffers are left untouched.
func Fill(buf []byte, colors [][]color.NRGBA) {
	rows, cols := Dims(colors)
	if len(buf) < 4*rows*cols {
		return
	}
	for r, row := range colors {
		for c, col := range row {
			base := (r*cols + c) * 4
			cr, cg, cb, ca := col.RGBA()
			buf[base+0] = uint8(cr >> 8)
			buf[base+1] = uint8(cg >> 8)
			buf[base+2] = uint8(cb >> 8)
			buf[base+3] = uint8(ca >> 8)
		}
	}
}

// Image renders the snapshot with each cell drawn as a scale x scale block.
func Image(colors [][]color.NRGBA, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	rows, cols := Dims(colors)
	img := image.NewNRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	for r, row := range colors {
		for c, col := range row {
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(c*scale+dx, r*scale+dy, col)
				}
			}
		}
	}
	return img
}

// WritePNG encodes the scaled snapshot as PNG.
func WritePNG(w io.Writer, colors [][]color.NRGBA, scale int) error {
	return png.Encode(w, Image(colors, scale))
}
