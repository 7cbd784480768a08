package mathutil

// Lagrange interpolation constants
const (
	// MaxLagrangePoints is the largest number of known points Lagrange accepts.
	// The lifting predictors never interpolate over more than four even samples.
	MaxLagrangePoints = 4

	// lagrangeUnity is the neutral start value for numerator and denominator products.
	lagrangeUnity = 1.0
)

// Integer helpers
const (
	// minPowerOfTwo is the smallest positive power of two (2⁰).
	minPowerOfTwo = 1
)
