// Package config loads the environment variables that tune the codec at startup.
package config

import (
	"io"

	"github.com/pkg/errors"
	"go-simpler.org/env"
)

// KernelAuto selects the fastest kernel the CPU supports.
const KernelAuto = "auto"

// C is the codec configuration. It is read once, before the first decode.
type C struct {
	Kernel string `env:"FASTHEX_KERNEL" default:"auto" usage:"decode kernel: auto, avx2, sse2, neon, swar or scalar"`
}

// Load reads C from the process environment.
func Load() (c *C, err error) {
	return LoadFrom(nil)
}

// LoadFrom reads C from src, or from the process environment when src is nil.
func LoadFrom(src env.Source) (c *C, err error) {
	c = &C{}
	var opts *env.Options
	if src != nil {
		opts = &env.Options{Source: src}
	}
	if err = env.Load(c, opts); err != nil {
		return nil, errors.Wrap(err, "loading FASTHEX_ environment")
	}
	return
}

// Usage writes the documentation of every variable in C to w.
func Usage(w io.Writer) {
	env.Usage(&C{}, w, nil)
}
