package qoi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMagic  = errors.New("qoi: invalid magic")
	ErrInvalidHeader = errors.New("qoi: invalid header")
	ErrTruncatedData = errors.New("qoi: truncated data")
	ErrImageTooLarge = errors.New("qoi: image dimensions exceed limit")
)

// UnknownTagError reports a chunk tag outside the six defined QOI operations.
// The four 2-bit prefixes plus the two full-byte tags partition the byte
// space, so in practice this only occurs for corrupted or non-conformant
// streams; the dispatch still treats it as a reachable error path.
type UnknownTagError struct {
	Tag byte // the offending tag byte
	Row int  // grid row being decoded
	Col int  // grid column being decoded
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("qoi: unknown chunk tag 0x%02X at row %d, col %d", e.Tag, e.Row, e.Col)
}
