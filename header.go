package qoi

import "encoding/binary"

// qoiMagic is the 4-byte signature at the start of every QOI stream.
const qoiMagic = "qoif"

// headerSize is the fixed byte length of the QOI file header:
// 4-byte magic, 4-byte width, 4-byte height, 1-byte channel count,
// 1-byte colorspace. Width and height are stored big-endian.
const headerSize = 14

// Channel count values from the header. Informative only: the decoder
// tracks all four channels regardless of the declared count.
const (
	ChannelsRGB  = 3
	ChannelsRGBA = 4
)

// Colorspace values per the QOI specification. Informative only; no
// conversion is applied.
const (
	ColorspaceSRGB   = 0 // sRGB with linear alpha
	ColorspaceLinear = 1 // all channels linear
)

// maxPixels caps width*height, matching QOI_PIXELS_MAX in the reference
// implementation. Guards against pathological headers demanding huge
// allocations.
const maxPixels = 400_000_000

// Header holds the parsed 14-byte QOI file header.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// parseHeader validates and decodes the header at the start of data.
func parseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, ErrTruncatedData
	}
	if string(data[0:4]) != qoiMagic {
		return h, ErrInvalidMagic
	}
	h.Width = binary.BigEndian.Uint32(data[4:8])
	h.Height = binary.BigEndian.Uint32(data[8:12])
	h.Channels = data[12]
	h.Colorspace = data[13]

	if h.Width == 0 || h.Height == 0 {
		return h, ErrInvalidHeader
	}
	if h.Channels != ChannelsRGB && h.Channels != ChannelsRGBA {
		return h, ErrInvalidHeader
	}
	if h.Colorspace != ColorspaceSRGB && h.Colorspace != ColorspaceLinear {
		return h, ErrInvalidHeader
	}
	if uint64(h.Width)*uint64(h.Height) > maxPixels {
		return h, ErrImageTooLarge
	}
	return h, nil
}
