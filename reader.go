package qoi

import "encoding/binary"

// byteReader provides sequential reading from an in-memory byte stream.
// QOI chunks are byte-aligned, so no bit cursor is needed; every read past
// the end of the data returns ErrTruncatedData rather than panicking.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// ReadByte returns the next byte.
func (r *byteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrTruncatedData
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes returns the next n bytes as a subslice of the underlying data.
// The slice is only valid until the data is released; callers copy out the
// values they keep.
func (r *byteReader) ReadBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, ErrTruncatedData
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint32 reads 32 bits big-endian.
func (r *byteReader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrTruncatedData
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// Position returns the current byte offset from the start of the stream.
func (r *byteReader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *byteReader) Remaining() int {
	rem := len(r.data) - r.pos
	if rem < 0 {
		return 0
	}
	return rem
}

// Skip advances past n bytes.
func (r *byteReader) Skip(n int) error {
	if r.pos+n > len(r.data) {
		return ErrTruncatedData
	}
	r.pos += n
	return nil
}
