//go:build amd64

package decoder

import (
	"golang.org/x/sys/cpu"
)

func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func hasSSE2() bool {
	return cpu.X86.HasSSE2
}
