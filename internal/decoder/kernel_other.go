//go:build !(amd64 || arm64) || noasm

package decoder

// No hardware kernels: Decode runs Scalar unless swar is requested by name.
var vectorKernels []Kernel
