// Package qoi implements a pure Go decoder for the QOI image format.
//
// QOI ("Quite OK Image") is a simple lossless image compression format
// that encodes pixels as a stream of byte-tagged chunks: literal RGB/RGBA
// values, small per-channel deltas, references into a 64-entry table of
// recently seen pixels, and run-length repeats.
//
// Decoding:
//
//	img, err := qoi.Decode(reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// DecodeGrid exposes the raw decoded pixel grid for callers that want the
// channel values without going through the image package.
//
// The package registers itself with the image package for automatic
// format detection:
//
//	import _ "github.com/ajroetker/go-qoi"
//	img, _, err := image.Decode(reader)
package qoi
