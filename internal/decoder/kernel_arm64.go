//go:build arm64 && !noasm

package decoder

// vectorKernels lists the hardware kernels in order of preference.
var vectorKernels = []Kernel{neonKernel{}}

// decodeNEON decodes n hex characters (a multiple of 16, n > 0) from src into
// dst and returns how many were consumed before the first chunk holding an
// invalid character.
//
//go:noescape
func decodeNEON(dst, src *byte, n int) int

type neonKernel struct{}

func (neonKernel) Name() string    { return "neon" }
func (neonKernel) ChunkSize() int  { return NEONChunkSize }
func (neonKernel) Available() bool { return hasNEON() }

func (neonKernel) DecodeChunks(dst, src []byte) int {
	n := len(src) &^ (NEONChunkSize - 1)
	if n == 0 {
		return 0
	}
	_ = dst[n/2-1]
	return decodeNEON(&dst[0], &src[0], n)
}
