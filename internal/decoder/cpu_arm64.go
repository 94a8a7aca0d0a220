//go:build arm64

package decoder

import (
	"golang.org/x/sys/cpu"
)

func hasNEON() bool {
	return cpu.ARM64.HasASIMD
}
