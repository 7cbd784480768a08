package haar

import (
	"fmt"
	"testing"

	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/testutil"
)

func BenchmarkForwardTrans(b *testing.B) {
	for _, n := range []int{256, 4096, 65536} {
		b.Run(fmt.Sprintf("polynomial/n=%d", n), func(b *testing.B) {
			h := New[float64]()
			signal := testutil.Noise(n, 1)
			buf := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for b.Loop() {
				copy(buf, signal)
				_ = lifting.ForwardTrans[float64](h, buf, n)
			}
		})
		b.Run(fmt.Sprintf("plain/n=%d", n), func(b *testing.B) {
			e := lifting.New[float64](New[float64]())
			signal := testutil.Noise(n, 1)
			buf := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for b.Loop() {
				copy(buf, signal)
				_ = lifting.ForwardTrans[float64](e, buf, n)
			}
		})
	}
}
