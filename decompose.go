package wavelet

import (
	"fmt"
	"math"

	"github.com/tphakala/go-lifting-wavelet/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Decomposition is a view of a forward-transformed buffer split into its
// frequency bands. The slices alias the buffer passed to Decompose.
type Decomposition struct {
	// Approximation holds the coarsest smoothed values.
	Approximation []float64

	// Details holds one band per level, ordered from the coarsest
	// (lowest frequency) to the finest.
	Details [][]float64
}

// Levels returns the number of transform levels a full transform of
// length n performs when steps stop at minBlock.
func Levels(n, minBlock int) int {
	if n < minBlock || minBlock < 1 {
		return 0
	}
	return mathutil.Log2(n) - mathutil.Log2(minBlock) + 1
}

// Decompose splits the coefficients produced by a full forward transform
// into bands. The last step acts on minBlock values, so the approximation is
// coeffs[:minBlock/2] and the detail bands double in length from there.
func Decompose(coeffs []float64, minBlock int) (Decomposition, error) {
	n := len(coeffs)
	if !mathutil.IsPowerOfTwo(n) || !mathutil.IsPowerOfTwo(minBlock) || minBlock < 2 || n < minBlock {
		return Decomposition{}, fmt.Errorf("%w: cannot decompose %d coefficients with block %d",
			ErrInvalidLength, n, minBlock)
	}

	start := minBlock >> 1
	d := Decomposition{
		Approximation: coeffs[:start:start],
		Details:       make([][]float64, 0, Levels(n, minBlock)),
	}
	for end := minBlock; end <= n; end <<= 1 {
		d.Details = append(d.Details, coeffs[start:end:end])
		start = end
	}
	return d, nil
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	return floats.Dot(x, x)
}

// BandEnergies returns the energy of every band of d: the approximation
// first, then the detail bands from coarse to fine.
func BandEnergies(d Decomposition) []float64 {
	energies := make([]float64, 0, len(d.Details)+1)
	energies = append(energies, Energy(d.Approximation))
	for _, band := range d.Details {
		energies = append(energies, Energy(band))
	}
	return energies
}

// MaxAbsError returns the largest absolute difference between a and b.
// It returns +Inf when the lengths differ.
func MaxAbsError(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, math.Inf(1))
}
