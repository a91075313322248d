package main

import (
	"bufio"
	"fmt"
	"io"

	qoi "github.com/ajroetker/go-qoi"
)

// writePPM serializes the grid as a binary PPM (P6): a text header with the
// dimensions and maximum channel value, then one RGB triple per pixel in
// row-major order. PPM has no alpha channel, so the decoded alpha is dropped.
func writePPM(w io.Writer, g *qoi.Grid) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", g.Width(), g.Height()); err != nil {
		return err
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := g.At(row, col)
			if _, err := bw.Write([]byte{p.R, p.G, p.B}); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
