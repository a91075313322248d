package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Chunk tag constants. opRGB and opRGBA occupy full bytes; the remaining
// four operations are identified by their top two bits.
const (
	opIndex = 0b0000_0000
	opDiff  = 0b0100_0000
	opLuma  = 0b1000_0000
	opRun   = 0b1100_0000
	opRGB   = 0b1111_1110
	opRGBA  = 0b1111_1111

	// Mask for the two-bit tags.
	opMask2 = 0b1100_0000
)

// indexSize is the number of slots in the running pixel index.
const indexSize = 64

// endMarker terminates a conformant QOI stream. The decoder stops once the
// grid is fully populated and does not require it to be present.
const endMarker = "\x00\x00\x00\x00\x00\x00\x00\x01"

// Decoder holds state for decoding a single QOI image.
type Decoder struct {
	header Header
	r      *byteReader
	grid   *Grid

	// Running decode state per the format: the previously emitted pixel,
	// the index of recently recorded pixels, and the count of pending run
	// repeats still owed to the grid.
	prev  Pixel
	index [indexSize]Pixel
	run   int
}

// DecodeConfig returns the image dimensions and color model without
// decoding the pixel data. The color model is always color.NRGBAModel,
// regardless of the declared channel count.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return image.Config{}, ErrTruncatedData
	}

	h, err := parseHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Decode decodes a QOI image. The returned image is always *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	grid, _, err := decodeGrid(r)
	if err != nil {
		return nil, err
	}
	return grid.toImage(), nil
}

// DecodeGrid decodes a QOI image into its raw pixel grid, along with the
// parsed header. Useful for callers that serialize the channel values
// directly instead of going through the image package.
func DecodeGrid(r io.Reader) (*Grid, Header, error) {
	return decodeGrid(r)
}

func decodeGrid(r io.Reader) (*Grid, Header, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Header{}, err
	}

	h, err := parseHeader(data)
	if err != nil {
		return nil, Header{}, fmt.Errorf("parse header: %w", err)
	}

	d := &Decoder{
		header: h,
		r:      newByteReader(data[headerSize:]),
		grid:   newGrid(int(h.Width), int(h.Height)),
		prev:   Pixel{A: 255}, // decode starts from {0, 0, 0, 255}
	}

	if err := d.decodeChunks(); err != nil {
		return nil, Header{}, fmt.Errorf("decode chunks: %w", err)
	}

	return d.grid, h, nil
}

// decodeChunks runs the chunk state machine until every grid position has
// been written, in row-major order. A pending run is drained first and
// consumes no input; otherwise one chunk is read and materialized.
//
// Decode failures are fatal: a partially written grid is never returned,
// since resuming after a bad chunk would desynchronize the pixel index and
// silently corrupt the rest of the image.
func (d *Decoder) decodeChunks() error {
	for row := 0; row < d.grid.height; row++ {
		for col := 0; col < d.grid.width; col++ {
			if d.run > 0 {
				d.grid.set(row, col, d.prev)
				d.run--
				continue
			}

			px, err := d.nextPixel(row, col)
			if err != nil {
				return err
			}
			d.grid.set(row, col, px)
			d.prev = px
		}
	}
	return nil
}

// nextPixel reads one chunk from the stream and materializes the pixel it
// encodes. For run chunks, the returned pixel is the first repeat and d.run
// holds the rest.
//
// Only RGB, RGBA, DIFF and LUMA record the materialized pixel into the
// index. INDEX reads a slot verbatim without rewriting it, and RUN repeats
// the previous pixel without touching the index. Hash collisions overwrite
// slots directly; that behavior is part of the format, not a defect.
func (d *Decoder) nextPixel(row, col int) (Pixel, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return Pixel{}, fmt.Errorf("chunk tag at row %d, col %d: %w", row, col, err)
	}

	switch {
	case tag == opRGB:
		rgb, err := d.r.ReadBytes(3)
		if err != nil {
			return Pixel{}, fmt.Errorf("RGB chunk at row %d, col %d: %w", row, col, err)
		}
		// Alpha carries over from the previous pixel and participates in
		// the index hash.
		px := Pixel{R: rgb[0], G: rgb[1], B: rgb[2], A: d.prev.A}
		d.index[hashPixel(px)] = px
		return px, nil

	case tag == opRGBA:
		rgba, err := d.r.ReadBytes(4)
		if err != nil {
			return Pixel{}, fmt.Errorf("RGBA chunk at row %d, col %d: %w", row, col, err)
		}
		px := Pixel{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		d.index[hashPixel(px)] = px
		return px, nil

	case tag&opMask2 == opIndex:
		return d.index[tag&0x3F], nil

	case tag&opMask2 == opDiff:
		// Three 2-bit deltas for r, g, b, each stored with a +2 bias.
		// uint8 subtraction wraps modulo 256.
		px := Pixel{
			R: d.prev.R + (tag>>4&0x03) - 2,
			G: d.prev.G + (tag>>2&0x03) - 2,
			B: d.prev.B + (tag&0x03) - 2,
			A: d.prev.A,
		}
		d.index[hashPixel(px)] = px
		return px, nil

	case tag&opMask2 == opLuma:
		second, err := d.r.ReadByte()
		if err != nil {
			return Pixel{}, fmt.Errorf("LUMA chunk at row %d, col %d: %w", row, col, err)
		}
		// Low 6 bits of the tag are the green delta with a +32 bias; the
		// second byte's nibbles are dr-dg and db-dg with a +8 bias.
		dg := (tag & 0x3F) - 32
		px := Pixel{
			R: d.prev.R + (second>>4&0x0F) - 8 + dg,
			G: d.prev.G + dg,
			B: d.prev.B + (second&0x0F) - 8 + dg,
			A: d.prev.A,
		}
		d.index[hashPixel(px)] = px
		return px, nil

	case tag&opMask2 == opRun:
		// Stored with a -1 bias: field values 0..61 mean 1..62 pixels.
		// The first repeat is the returned pixel; the rest are emitted by
		// decodeChunks before the next tag byte is read.
		d.run = int(tag & 0x3F)
		return d.prev, nil
	}

	return Pixel{}, &UnknownTagError{Tag: tag, Row: row, Col: col}
}

// Register format with image package
func init() {
	image.RegisterFormat("qoi", qoiMagic, Decode, DecodeConfig)
}
