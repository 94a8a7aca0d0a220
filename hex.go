// Package fasthex converts between raw bytes and ASCII hex text in caller
// provided buffers.
//
// Decoding accepts 0-9, a-f and A-F, in any mix of case. On amd64 it runs an
// AVX2 or SSE2 kernel over 32 or 16 character chunks, on arm64 a NEON kernel
// over 16 character chunks, and finishes the tail with a table driven scalar
// decoder; every path returns the same bytes and the same errors.
package fasthex

import (
	"github.com/biggeezerdevelopment/fasthex/internal/decoder"
)

var (
	// ErrOddLength is returned for hex input whose length is not even.
	ErrOddLength = decoder.ErrOddLength
	// ErrOutputTooSmall is returned when dst cannot hold the result.
	ErrOutputTooSmall = decoder.ErrOutputTooSmall
)

// InvalidByteError reports the first non-hex character and its index in the input.
type InvalidByteError = decoder.InvalidByteError

// DecodedLen returns the number of bytes n hex characters decode to.
func DecodedLen(n int) (int, error) {
	if n%2 != 0 {
		return 0, ErrOddLength
	}
	return n / 2, nil
}

// EncodedLen returns the length of the hex encoding of n bytes.
// It does not guard against overflow of 2n.
func EncodedLen(n int) int {
	return n * 2
}

// KernelName names the decode path in use: avx2, sse2, neon, swar or scalar.
func KernelName() string {
	return decoder.KernelName(decoder.Active())
}

// HasSIMD reports whether Decode runs on a vector kernel.
func HasSIMD() bool {
	return decoder.HasSIMD()
}
