package fasthex

import (
	"github.com/indigo-web/utils/uf"
)

const (
	lowerAlphabet = "0123456789abcdef"
	upperAlphabet = "0123456789ABCDEF"
)

// Encode writes the hex encoding of src into dst, lowercase when lower is
// set, and returns EncodedLen(len(src)). Bytes of dst beyond that are not
// touched.
func Encode(dst, src []byte, lower bool) (int, error) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, ErrOutputTooSmall
	}

	alphabet := upperAlphabet
	if lower {
		alphabet = lowerAlphabet
	}

	dst = dst[:n]
	for i, v := range src {
		out := dst[i*2 : i*2+2]
		out[0] = alphabet[v>>4]
		out[1] = alphabet[v&0x0f]
	}
	return n, nil
}

// EncodeToString returns the hex encoding of src in a newly allocated string.
func EncodeToString(src []byte, lower bool) string {
	buf := make([]byte, EncodedLen(len(src)))
	_, _ = Encode(buf, src, lower)
	return uf.B2S(buf)
}
