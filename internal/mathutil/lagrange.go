// Package mathutil provides small numeric helpers shared by the wavelet kernels.
package mathutil

import (
	"math/bits"
)

// Lagrange computes the Lagrange basis coefficients for a polynomial through
// n known points located at the x-coordinates 0, 1, ..., n-1, evaluated at x.
//
// The interpolated value at x is then Σ c[i] * y[i]:
//
//	c[i] = Π_{k≠i} (x - k) / (i - k)
//
// Only c[0:n] is written; c must have at least n elements.
// Coefficients always sum to 1, so constant data is reproduced exactly.
func Lagrange(x float64, n int, c []float64) {
	for i := range n {
		num := lagrangeUnity
		denom := lagrangeUnity
		for k := range n {
			if i == k {
				continue
			}
			num *= x - float64(k)
			denom *= float64(i - k)
		}
		c[i] = num / denom
	}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n >= minPowerOfTwo && n&(n-1) == 0
}

// Log2 returns ⌊log₂ n⌋ for n ≥ 1, and 0 otherwise.
func Log2(n int) int {
	if n < minPowerOfTwo {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
