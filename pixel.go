package qoi

import "image"

// Pixel is a single image sample with four independent 8-bit channels.
// Delta decoding relies on uint8 arithmetic wrapping modulo 256; channel
// values must never be widened before an add or subtract.
type Pixel struct {
	R, G, B, A uint8
}

// hashPixel computes the index-table slot for p per the QOI specification:
//
//	(r*3 + g*5 + b*7 + a*11) % 64
//
// The multiplier set and modulus are fixed by the format; the products are
// taken over the full 8-bit channel values without wraparound.
func hashPixel(p Pixel) int {
	return (int(p.R)*3 + int(p.G)*5 + int(p.B)*7 + int(p.A)*11) % 64
}

// Grid is a fixed-size two-dimensional pixel buffer in row-major order,
// backed by a single contiguous allocation indexed by row*width+col.
// Dimensions are fixed at construction. Only the decoder writes to a Grid;
// once decoding completes the grid is read-only.
type Grid struct {
	pix    []Pixel
	width  int
	height int
}

func newGrid(width, height int) *Grid {
	return &Grid{
		pix:    make([]Pixel, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// At returns the pixel at the given row and column.
func (g *Grid) At(row, col int) Pixel {
	return g.pix[row*g.width+col]
}

func (g *Grid) set(row, col int, p Pixel) {
	g.pix[row*g.width+col] = p
}

// toImage converts the grid to an image.NRGBA. QOI alpha is not
// premultiplied, so NRGBA preserves the decoded channel values exactly.
func (g *Grid) toImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			p := g.pix[row*g.width+col]
			i := img.PixOffset(col, row)
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = p.A
		}
	}
	return img
}
