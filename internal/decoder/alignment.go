package decoder

import (
	"unsafe"
)

// Vector register widths in bytes. The kernels load unaligned; tests use these
// to place buffers on and off register boundaries.
const (
	AVX2Alignment = 32 // 256-bit alignment for AVX2
	SSE2Alignment = 16 // 128-bit alignment for SSE2 and NEON
)

// AlignedBuffer is a byte slice whose first element sits on a chosen boundary.
// The kernels use unaligned loads; the buffer lets tests place input on and
// off vector boundaries deliberately.
type AlignedBuffer struct {
	data    []byte
	aligned []byte
}

// NewAlignedBuffer allocates size bytes aligned to alignment, a power of two.
func NewAlignedBuffer(size, alignment int) *AlignedBuffer {
	data := make([]byte, size+alignment)

	addr := uintptr(unsafe.Pointer(&data[0]))
	offset := int((addr+uintptr(alignment-1))&^uintptr(alignment-1) - addr)

	return &AlignedBuffer{
		data:    data,
		aligned: data[offset : offset+size],
	}
}

// Bytes returns the aligned byte slice
func (ab *AlignedBuffer) Bytes() []byte {
	return ab.aligned
}

// IsAligned checks if a pointer is aligned to the specified boundary
func IsAligned(ptr unsafe.Pointer, alignment int) bool {
	return uintptr(ptr)&uintptr(alignment-1) == 0
}
