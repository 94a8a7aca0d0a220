//go:build amd64 && !noasm

package decoder

// vectorKernels lists the hardware kernels in order of preference.
var vectorKernels = []Kernel{avx2Kernel{}, sse2Kernel{}}

// decodeAVX2 and decodeSSE2 decode n hex characters (a multiple of the chunk
// size, n > 0) from src into dst and return how many were consumed before the
// first chunk holding an invalid character.
//
//go:noescape
func decodeAVX2(dst, src *byte, n int) int

//go:noescape
func decodeSSE2(dst, src *byte, n int) int

type avx2Kernel struct{}

func (avx2Kernel) Name() string    { return "avx2" }
func (avx2Kernel) ChunkSize() int  { return AVX2ChunkSize }
func (avx2Kernel) Available() bool { return hasAVX2() }

func (avx2Kernel) DecodeChunks(dst, src []byte) int {
	n := len(src) &^ (AVX2ChunkSize - 1)
	if n == 0 {
		return 0
	}
	_ = dst[n/2-1]
	return decodeAVX2(&dst[0], &src[0], n)
}

type sse2Kernel struct{}

func (sse2Kernel) Name() string    { return "sse2" }
func (sse2Kernel) ChunkSize() int  { return SSE2ChunkSize }
func (sse2Kernel) Available() bool { return hasSSE2() }

func (sse2Kernel) DecodeChunks(dst, src []byte) int {
	n := len(src) &^ (SSE2ChunkSize - 1)
	if n == 0 {
		return 0
	}
	_ = dst[n/2-1]
	return decodeSSE2(&dst[0], &src[0], n)
}
