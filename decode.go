package fasthex

import (
	"github.com/biggeezerdevelopment/fasthex/internal/decoder"
)

// Decode decodes src into dst and returns len(src)/2.
//
// Length errors are reported before anything is written. On an
// *InvalidByteError, output already produced for the input before the bad
// character may remain in dst; use DecodeInPlace when that matters.
func Decode(dst, src []byte) (int, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, ErrOutputTooSmall
	}
	if err = decoder.Decode(dst[:n], src); err != nil {
		return 0, err
	}
	return n, nil
}

// DecodeFixed decodes src into dst, which must be exactly len(src)/2 bytes
// long. A longer or shorter src both yield ErrOutputTooSmall.
func DecodeFixed(dst, src []byte) (int, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return 0, err
	}
	if n != len(dst) {
		return 0, ErrOutputTooSmall
	}
	return Decode(dst, src)
}

// DecodeInPlace decodes the hex text in buf into buf[:len(buf)/2].
//
// The whole input is validated before the first write, so buf is left
// untouched when an error is returned.
func DecodeInPlace(buf []byte) (int, error) {
	n, err := DecodedLen(len(buf))
	if err != nil {
		return 0, err
	}
	if err = decoder.ValidatePairs(buf, 0); err != nil {
		return 0, err
	}
	decoder.DecodeValidated(buf, buf)
	return n, nil
}

// Validate reports whether src is decodable, without writing anywhere.
func Validate(src []byte) error {
	if _, err := DecodedLen(len(src)); err != nil {
		return err
	}
	return decoder.ValidatePairs(src, 0)
}
