// Package testutil provides reusable test helpers for the wavelet kernels.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	RoundTripTolerance = 1e-9
	Float32Tolerance   = 1e-4
)

// Signal generator constants.
const (
	sineCyclesPerFrame = 3.0
	noiseSeedHi        = 0x5eed
	noiseAmplitude     = 2.0
)

// AssertSlicesInDelta verifies that two slices have equal length and that
// every element pair differs by at most tolerance.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"mismatch at index %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertRoundTrip verifies that restored matches original to within a
// tolerance relative to the largest magnitude in original.
func AssertRoundTrip(t *testing.T, original, restored []float64, tolerance float64) bool {
	t.Helper()
	scale := 1.0
	for _, v := range original {
		scale = math.Max(scale, math.Abs(v))
	}
	return AssertSlicesInDelta(t, original, restored, tolerance*scale)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertAllZero verifies that every element is within tolerance of zero.
func AssertAllZero(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if !assert.InDelta(t, 0.0, v, tolerance, "s[%d]=%v is not zero", i, v) {
			return false
		}
	}
	return true
}

// Ramp returns [0, 1, ..., n-1].
func Ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Sine returns a few cycles of a unit sine spread across n samples.
func Sine(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * sineCyclesPerFrame * float64(i) / float64(n))
	}
	return s
}

// Noise returns n deterministic pseudo-random samples in [-1, 1) for a given seed.
func Noise(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(noiseSeedHi, seed))
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*noiseAmplitude - 1
	}
	return s
}

// Clone returns a copy of s.
func Clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
