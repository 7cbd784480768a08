package daubechies

import (
	"fmt"
	"testing"

	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/testutil"
)

func BenchmarkForwardTrans(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		signal := testutil.Noise(n, 1)

		b.Run(fmt.Sprintf("pooled/n=%d", n), func(b *testing.B) {
			d := New[float64]()
			buf := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for b.Loop() {
				copy(buf, signal)
				_ = d.ForwardTrans(buf, n)
			}
		})

		b.Run(fmt.Sprintf("per-step/n=%d", n), func(b *testing.B) {
			d := New[float64]()
			buf := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for b.Loop() {
				copy(buf, signal)
				_ = lifting.ForwardTrans[float64](d, buf, n)
			}
		})
	}
}

func BenchmarkFloat32ForwardTrans(b *testing.B) {
	const n = 4096
	d := New[float32]()
	signal := make([]float32, n)
	for i, v := range testutil.Noise(n, 1) {
		signal[i] = float32(v)
	}
	buf := make([]float32, n)
	b.SetBytes(int64(n * 4))
	b.ResetTimer()
	for b.Loop() {
		copy(buf, signal)
		_ = d.ForwardTrans(buf, n)
	}
}
