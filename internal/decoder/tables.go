package decoder

const (
	// InvalidNibble marks a byte that is not a hex digit in the nibble table.
	InvalidNibble byte = 0xFF
	// PairInvalid is set in a pair table entry when either character is not a hex digit.
	PairInvalid uint16 = 0x0100
)

// Both tables are filled by init and only read afterwards.
var (
	nibbleTable [256]byte
	pairTable   [1 << 16]uint16
)

func init() {
	buildTables(&nibbleTable, &pairTable)
}

func buildTables(nt *[256]byte, pt *[1 << 16]uint16) {
	for i := range nt {
		c := byte(i)
		switch {
		case c >= '0' && c <= '9':
			nt[i] = c - '0'
		case c >= 'a' && c <= 'f':
			nt[i] = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			nt[i] = c - 'A' + 10
		default:
			nt[i] = InvalidNibble
		}
	}

	for hi := 0; hi < 256; hi++ {
		hn := nt[hi]
		for lo := 0; lo < 256; lo++ {
			ln := nt[lo]
			if hn == InvalidNibble || ln == InvalidNibble {
				pt[hi<<8|lo] = PairInvalid
				continue
			}
			pt[hi<<8|lo] = uint16(hn)<<4 | uint16(ln)
		}
	}
}

// Nibble returns the value of the hex digit c and whether c is one.
func Nibble(c byte) (byte, bool) {
	v := nibbleTable[c]
	return v, v != InvalidNibble
}

// pair returns the pair table entry for the characters hi and lo.
func pair(hi, lo byte) uint16 {
	return pairTable[uint16(hi)<<8|uint16(lo)]
}
