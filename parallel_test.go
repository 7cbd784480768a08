package wavelet

import (
	"errors"
	"math"
	"testing"
)

// TestForwardMultiParallel tests that parallel processing produces correct results.
func TestForwardMultiParallel(t *testing.T) {
	const (
		channels   = 2
		numSamples = 4096
		freq       = 440.0
		sampleRate = 48000.0
	)

	for _, basis := range []Basis{BasisHaar, BasisPolynomial, BasisDaubechies4} {
		t.Run(basis.String(), func(t *testing.T) {
			// Different phases per channel so they are processed independently
			input := make([][]float64, channels)
			for ch := range channels {
				input[ch] = make([]float64, numSamples)
				phase := float64(ch) * math.Pi / 4
				for i := range numSamples {
					input[ch][i] = math.Sin(2*math.Pi*freq*float64(i)/sampleRate + phase)
				}
			}

			tSeq, err := New(&Config{Basis: basis, EnableParallel: false})
			if err != nil {
				t.Fatalf("Failed to create sequential transform: %v", err)
			}
			tPar, err := New(&Config{Basis: basis, EnableParallel: true})
			if err != nil {
				t.Fatalf("Failed to create parallel transform: %v", err)
			}

			outputSeq := cloneChannels(input)
			outputPar := cloneChannels(input)

			if err := tSeq.ForwardMulti(outputSeq); err != nil {
				t.Fatalf("Sequential ForwardMulti failed: %v", err)
			}
			if err := tPar.ForwardMulti(outputPar); err != nil {
				t.Fatalf("Parallel ForwardMulti failed: %v", err)
			}

			for ch := range channels {
				// Verify outputs are identical (bit-exact)
				for i := range outputSeq[ch] {
					if outputSeq[ch][i] != outputPar[ch][i] {
						t.Fatalf("Channel %d sample %d mismatch: seq=%v, par=%v",
							ch, i, outputSeq[ch][i], outputPar[ch][i])
					}
				}
			}

			if err := tPar.InverseMulti(outputPar); err != nil {
				t.Fatalf("Parallel InverseMulti failed: %v", err)
			}
			for ch := range channels {
				if e := MaxAbsError(input[ch], outputPar[ch]); e > 1e-9 {
					t.Errorf("Channel %d reconstruction error %e", ch, e)
				}
			}
		})
	}
}

// TestForwardMultiParallel_Error verifies that an invalid channel aborts the
// call and names the channel.
func TestForwardMultiParallel_Error(t *testing.T) {
	tr, err := New(&Config{Basis: BasisHaar, EnableParallel: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	bufs := [][]float64{make([]float64, 8), make([]float64, 6), make([]float64, 8)}
	err = tr.ForwardMulti(bufs)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

// TestForwardMulti_SingleChannel tests that single channel works with parallel enabled.
func TestForwardMulti_SingleChannel(t *testing.T) {
	tr, err := New(&Config{Basis: BasisDaubechies4, EnableParallel: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	buf := [][]float64{make([]float64, 64)}
	for i := range buf[0] {
		buf[0][i] = float64(i % 7)
	}
	want := append([]float64(nil), buf[0]...)

	if err := tr.ForwardMulti(buf); err != nil {
		t.Fatalf("ForwardMulti failed: %v", err)
	}
	if err := tr.InverseMulti(buf); err != nil {
		t.Fatalf("InverseMulti failed: %v", err)
	}
	if e := MaxAbsError(want, buf[0]); e > 1e-9 {
		t.Errorf("reconstruction error %e", e)
	}
}

// TestForwardMulti_ManyChannels tests parallel processing with 8 channels.
func TestForwardMulti_ManyChannels(t *testing.T) {
	const (
		channels   = 8
		numSamples = 1024
	)

	tr, err := NewStereo(BasisPolynomial)
	if err != nil {
		t.Fatalf("NewStereo failed: %v", err)
	}

	input := make([][]float64, channels)
	for ch := range channels {
		input[ch] = make([]float64, numSamples)
		for i := range numSamples {
			input[ch][i] = math.Sin(float64(i*(ch+1)) / 50)
		}
	}
	bufs := cloneChannels(input)

	if err := tr.ForwardMulti(bufs); err != nil {
		t.Fatalf("ForwardMulti failed: %v", err)
	}
	if err := tr.InverseMulti(bufs); err != nil {
		t.Fatalf("InverseMulti failed: %v", err)
	}

	for ch := range channels {
		if e := MaxAbsError(input[ch], bufs[ch]); e > 1e-9 {
			t.Errorf("Channel %d reconstruction error %e", ch, e)
		}
	}
}

func cloneChannels(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for i := range in {
		out[i] = append([]float64(nil), in[i]...)
	}
	return out
}
