package fasthex

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/biggeezerdevelopment/fasthex/internal/decoder"
)

// TestSIMDAlgorithms runs every kernel the CPU supports against the scalar engine
func TestSIMDAlgorithms(t *testing.T) {
	if !HasSIMD() {
		t.Log("no hardware kernel on this platform, checking the portable one only")
	}

	for _, k := range decoder.Kernels() {
		if !k.Available() {
			continue
		}
		t.Run(k.Name(), func(t *testing.T) {
			t.Run("RoundTrip", func(t *testing.T) { testSIMDRoundTrip(t, k) })
			t.Run("CaseInsensitive", func(t *testing.T) { testSIMDCaseInsensitive(t, k) })
			t.Run("ErrorPositions", func(t *testing.T) { testSIMDErrorPositions(t, k) })
		})
	}
}

func testSIMDRoundTrip(t *testing.T, k decoder.Kernel) {
	for size := 0; size <= 300; size++ {
		src := frand.Bytes(size)
		for _, lower := range []bool{true, false} {
			enc := make([]byte, EncodedLen(size))
			_, err := Encode(enc, src, lower)
			require.NoError(t, err)

			got := make([]byte, size)
			require.NoError(t, decoder.Vector(k, got, enc), "size %d", size)
			require.Equal(t, src, got, "size %d lower %v", size, lower)
		}
	}
}

func testSIMDCaseInsensitive(t *testing.T, k decoder.Kernel) {
	src := frand.Bytes(257)
	lower := []byte(EncodeToString(src, true))

	mixed := []byte(EncodeToString(src, false))
	for i := range mixed {
		if frand.Intn(2) == 0 {
			mixed[i] = lower[i]
		}
	}

	want := make([]byte, len(src))
	require.NoError(t, decoder.Scalar(want, lower, 0))
	got := make([]byte, len(src))
	require.NoError(t, decoder.Vector(k, got, mixed))
	require.Equal(t, want, got)
	require.Equal(t, src, got)
}

func testSIMDErrorPositions(t *testing.T, k decoder.Kernel) {
	size := k.ChunkSize()
	valid := strings.Repeat("0a1B2c3D4e5F6789", 8) + "a0b1c2d3"
	tail := len(valid) - len(valid)%size

	positions := map[string]int{
		"first":            0,
		"after_first_pair": 2,
		"chunk_end":        size - 1,
		"chunk_boundary":   size,
		"mid_chunk":        size + size/2 + 1,
		"second_of_pair":   2*size + 3,
		"last_chunk_start": tail - size,
		"tail_first_char":  tail,
		"last":             len(valid) - 1,
	}

	for name, pos := range positions {
		t.Run(name, func(t *testing.T) {
			src := []byte(valid)
			src[pos] = '\n'

			want := decoder.Scalar(make([]byte, len(src)/2), src, 0)
			got := decoder.Vector(k, make([]byte, len(src)/2), src)
			require.Equal(t, &decoder.InvalidByteError{Index: pos, Byte: '\n'}, want)
			require.Equal(t, want, got)
		})
	}
}

// TestSIMDWithTail decodes inputs that leave a scalar tail after the chunks
func TestSIMDWithTail(t *testing.T) {
	for _, tail := range []int{2, 6, 14, 30} {
		t.Run(fmt.Sprintf("tail_%d", tail), func(t *testing.T) {
			src := frand.Bytes((64 + tail) / 2)
			enc := []byte(EncodeToString(src, true))

			dst := make([]byte, len(src))
			n, err := Decode(dst, enc)
			require.NoError(t, err)
			require.Equal(t, len(src), n)
			require.Equal(t, src, dst)

			enc[len(enc)-1] = 'k'
			_, err = Decode(dst, enc)
			require.Equal(t, &InvalidByteError{Index: len(enc) - 1, Byte: 'k'}, err)
		})
	}
}

// TestSIMDConcurrency shares the tables and the active kernel across goroutines
func TestSIMDConcurrency(t *testing.T) {
	inputs := make([][]byte, 8)
	outputs := make([][]byte, len(inputs))
	for i := range inputs {
		outputs[i] = frand.Bytes(1000 + i*37)
		inputs[i] = []byte(EncodeToString(outputs[i], i%2 == 0))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			in, want := inputs[g%len(inputs)], outputs[g%len(inputs)]
			dst := make([]byte, len(want))
			for j := 0; j < 100; j++ {
				if _, err := Decode(dst, in); err != nil {
					errs <- err
					return
				}
				if string(dst) != string(want) {
					errs <- fmt.Errorf("goroutine %d: mismatch on iteration %d", g, j)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
