package decoder

import "encoding/binary"

const (
	lanes01 uint64 = 0x0101010101010101
	lanes80 uint64 = 0x8080808080808080
	lanes0f uint64 = 0x0f0f0f0f0f0f0f0f
	words   uint64 = 0x00ff00ff00ff00ff
)

// swarKernel treats a 64-bit word as eight byte lanes. It runs on any CPU,
// so it is never picked automatically, only by name.
type swarKernel struct{}

func (swarKernel) Name() string    { return "swar" }
func (swarKernel) ChunkSize() int  { return SWARChunkSize }
func (swarKernel) Available() bool { return true }

func (swarKernel) DecodeChunks(dst, src []byte) int {
	n := 0
	for ; n+SWARChunkSize <= len(src); n += SWARChunkSize {
		lo, okLo := swarNibbles(binary.LittleEndian.Uint64(src[n:]))
		hi, okHi := swarNibbles(binary.LittleEndian.Uint64(src[n+8:]))
		if !okLo || !okHi {
			break
		}
		out := dst[n/2 : n/2+8]
		binary.LittleEndian.PutUint32(out, swarPack(lo))
		binary.LittleEndian.PutUint32(out[4:], swarPack(hi))
	}
	return n
}

// swarGE sets the high bit of every lane of y (high bits clear) that is >= c.
func swarGE(y uint64, c byte) uint64 {
	return ((y | lanes80) - uint64(c)*lanes01) & lanes80
}

// swarNibbles classifies the eight characters in x and maps them to nibbles.
func swarNibbles(x uint64) (uint64, bool) {
	y := x &^ lanes80
	digit := swarGE(y, '0') &^ swarGE(y, '9'+1)
	upper := swarGE(y, 'A') &^ swarGE(y, 'F'+1)
	lower := swarGE(y, 'a') &^ swarGE(y, 'f'+1)
	letter := upper | lower

	// Lanes with the high bit set in x are outside ASCII.
	if (digit|letter)&^(x&lanes80) != lanes80 {
		return 0, false
	}
	return x&lanes0f + (letter>>7)*9, true
}

// swarPack joins the four nibble pairs of n into four bytes.
func swarPack(n uint64) uint32 {
	p := (n&words)<<4 | (n>>8)&words
	p = (p | p>>8) & 0x0000ffff0000ffff
	p = (p | p>>16) & 0x00000000ffffffff
	return uint32(p)
}
