package decoder

// Vector decodes src into dst using k for every whole chunk and Scalar for
// the tail. Chunks decoded before an invalid one stay written; nothing from
// the invalid chunk or anything after it is.
func Vector(k Kernel, dst, src []byte) error {
	size := k.ChunkSize()
	full := len(src) - len(src)%size

	if n := k.DecodeChunks(dst, src[:full]); n < full {
		i := FirstInvalid(src[n : n+size])
		if i < 0 {
			panic("decoder: kernel " + k.Name() + " rejected a valid chunk")
		}
		return invalidByte(src, n+i, 0)
	}

	return Scalar(dst[full/2:], src[full:], full)
}
