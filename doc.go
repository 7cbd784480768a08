// Package wavelet provides in-place Lifting Scheme wavelet transforms in pure Go.
//
// The transforms follow the formulation popularised by Wim Sweldens and Ian
// Kaplan: each level splits a region into even and odd samples, predicts the
// odd samples from the even ones and updates the even samples into a
// smoothed signal. Repeating the step on the smoothed half yields a
// multiresolution decomposition, and running the steps backwards restores
// the signal exactly.
//
// # Features
//
//   - Plain Haar lifting ([BasisHaar])
//   - Haar refined by 4-point polynomial interpolation ([BasisPolynomial])
//   - Daubechies D4 with periodic boundaries ([BasisDaubechies4])
//   - SIMD acceleration of the D4 filter bank via github.com/tphakala/simd
//   - float32 and float64 kernels, parallel multi-channel processing
//
// # Quick Start
//
// For a one-shot transform:
//
//	coeffs, err := wavelet.ForwardMono(signal, wavelet.BasisDaubechies4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated transforms of caller-owned frames:
//
//	t, err := wavelet.New(&wavelet.Config{Basis: wavelet.BasisHaar})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for frame := range frames {
//	    if err := t.Forward(frame); err != nil {
//	        log.Fatal(err)
//	    }
//	    d, _ := wavelet.Decompose(frame, t.MinBlock())
//	    energies := wavelet.BandEnergies(d)
//	    ...
//	}
//
// # Coefficient Layout
//
// After [Transform.Forward] on a buffer of length N the coarsest smoothed
// values occupy the front of the buffer, followed by the detail bands in
// order of increasing frequency:
//
//	[ approx | d(coarsest) | ... | d(N/4..N/2) | d(N/2..N) ]
//
// [Decompose] returns views of these bands.
//
// # Lengths
//
// Buffers must have a power-of-two length no smaller than the basis minimum
// (2 for the Haar bases, 4 for D4); other lengths are rejected with
// [ErrInvalidLength]. Single steps on regions below the minimum are no-ops.
//
// # Thread Safety
//
// Transforms hold only immutable coefficient tables. A single [Transform]
// may be used from several goroutines as long as each call works on its own
// buffer.
//
// # Attribution
//
// The Haar/polynomial predictor and the D4 filter bank follow Ian Kaplan's
// lifting scheme wavelet notes (bearcave.com), including the positional
// interpolation offsets and the periodic D4 boundary handling.
package wavelet
