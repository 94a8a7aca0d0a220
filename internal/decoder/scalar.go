package decoder

// Scalar decodes src into dst with one pair table lookup per output byte.
// The caller has already checked that len(src) is even and that dst holds
// len(src)/2 bytes. Bytes decoded before an invalid pair stay written.
// Reported indices are offset by base.
func Scalar(dst, src []byte, base int) error {
	dst = dst[:len(src)/2]
	for i := range dst {
		j := i << 1
		v := pair(src[j], src[j+1])
		if v&PairInvalid != 0 {
			return pairError(src, j, base)
		}
		dst[i] = byte(v)
	}
	return nil
}

// ValidatePairs runs the Scalar check over src without writing anything.
func ValidatePairs(src []byte, base int) error {
	for j := 0; j+1 < len(src); j += 2 {
		if pair(src[j], src[j+1])&PairInvalid != 0 {
			return pairError(src, j, base)
		}
	}
	return nil
}

// DecodeValidated decodes src, already accepted by ValidatePairs, into dst.
// dst may share its first half with src.
func DecodeValidated(dst, src []byte) {
	dst = dst[:len(src)/2]
	for i := range dst {
		j := i << 1
		dst[i] = byte(pair(src[j], src[j+1]))
	}
}

// FirstInvalid returns the index of the first non-hex character in src, or -1.
func FirstInvalid(src []byte) int {
	for i, c := range src {
		if nibbleTable[c] == InvalidNibble {
			return i
		}
	}
	return -1
}

// pairError pinpoints which character of the flagged pair at j is invalid.
func pairError(src []byte, j, base int) error {
	if nibbleTable[src[j]] == InvalidNibble {
		return invalidByte(src, j, base)
	}
	return invalidByte(src, j+1, base)
}
