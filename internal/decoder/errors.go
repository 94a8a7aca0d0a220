package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength reports hex input whose length is not a multiple of 2.
	ErrOddLength = errors.New("fasthex: hex string has odd length")
	// ErrOutputTooSmall reports a destination that cannot hold the output.
	ErrOutputTooSmall = errors.New("fasthex: output buffer is too small")
)

// InvalidByteError describes a non-hex character found in the input.
type InvalidByteError struct {
	// Index is the zero-based offset of Byte in the original hex text.
	Index int
	Byte  byte
}

func (e *InvalidByteError) Error() string {
	c := '?'
	if e.Byte > ' ' && e.Byte < 0x7f {
		c = rune(e.Byte)
	}
	return fmt.Sprintf("fasthex: invalid hex byte 0x%02x ('%c') at index %d", e.Byte, c, e.Index)
}

func invalidByte(src []byte, i, base int) error {
	return &InvalidByteError{Index: base + i, Byte: src[i]}
}
