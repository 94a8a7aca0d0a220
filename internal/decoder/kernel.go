package decoder

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/biggeezerdevelopment/fasthex/internal/config"
)

// Chunk sizes, in hex characters, for each kernel.
const (
	AVX2ChunkSize = 32 // 256-bit vectors
	SSE2ChunkSize = 16 // 128-bit vectors
	NEONChunkSize = 16 // 128-bit vectors
	SWARChunkSize = 16 // two 64-bit words
)

// KernelScalar names the table driven path used when no kernel is active.
const KernelScalar = "scalar"

// Kernel decodes whole chunks of hex text with vector operations.
type Kernel interface {
	Name() string
	// ChunkSize is the number of hex characters consumed per iteration.
	ChunkSize() int
	// Available reports whether the current CPU can run the kernel.
	Available() bool
	// DecodeChunks decodes the whole chunks of src into dst, left to right.
	// Every chunk is validated before any of its bytes are written. It stops
	// before the first chunk holding a non-hex character and returns the
	// number of hex characters consumed.
	DecodeChunks(dst, src []byte) int
}

var logger = logrus.WithField("pkg", "fasthex")

// active is chosen once by init; nil means Scalar.
var active Kernel

func init() {
	name := config.KernelAuto
	c, err := config.Load()
	if err != nil {
		logger.WithError(err).Warn("ignoring environment")
	} else {
		name = c.Kernel
	}
	k, err := Select(name)
	if err != nil {
		logger.WithError(err).Warn("falling back to automatic kernel selection")
		k, _ = Select(config.KernelAuto)
	}
	active = k
	logger.WithField("kernel", KernelName(k)).Debug("decode kernel selected")
}

// Kernels returns every kernel compiled into the binary, hardware backed ones
// first in order of preference.
func Kernels() []Kernel {
	all := make([]Kernel, 0, len(vectorKernels)+1)
	all = append(all, vectorKernels...)
	return append(all, swarKernel{})
}

// Select resolves a kernel name. "auto" picks the first available hardware
// kernel; "scalar", or auto on a CPU without one, yields nil.
func Select(name string) (Kernel, error) {
	switch name {
	case "", config.KernelAuto:
		for _, k := range vectorKernels {
			if k.Available() {
				return k, nil
			}
		}
		return nil, nil
	case KernelScalar:
		return nil, nil
	}
	for _, k := range Kernels() {
		if k.Name() != name {
			continue
		}
		if !k.Available() {
			return nil, errors.Errorf("kernel %q is not supported by this CPU", name)
		}
		return k, nil
	}
	return nil, errors.Errorf("unknown kernel %q", name)
}

// Active returns the kernel used by Decode, or nil for the scalar path.
func Active() Kernel {
	return active
}

// KernelName returns the name of k, treating nil as the scalar path.
func KernelName(k Kernel) string {
	if k == nil {
		return KernelScalar
	}
	return k.Name()
}

// HasSIMD reports whether Decode runs on a vector kernel.
func HasSIMD() bool {
	return active != nil
}

// Decode decodes src into dst on the active path. Lengths are checked by the caller.
func Decode(dst, src []byte) error {
	if active == nil {
		return Scalar(dst, src, 0)
	}
	return Vector(active, dst, src)
}
