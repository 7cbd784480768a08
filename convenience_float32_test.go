package wavelet

import (
	"math"
	"testing"
)

// TestNewFloat32 verifies that NewFloat32 creates a working transform per basis.
func TestNewFloat32(t *testing.T) {
	tests := []struct {
		name  string
		basis Basis
	}{
		{"Haar", BasisHaar},
		{"Polynomial", BasisPolynomial},
		{"Daubechies4", BasisDaubechies4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewFloat32(tt.basis)
			if err != nil {
				t.Fatalf("NewFloat32 failed: %v", err)
			}
			if tr.Basis() != tt.basis {
				t.Errorf("Basis = %v, want %v", tr.Basis(), tt.basis)
			}
		})
	}
}

// TestNewFloat32_InvalidBasis verifies that an unknown basis is rejected.
func TestNewFloat32_InvalidBasis(t *testing.T) {
	if _, err := NewFloat32(Basis(99)); err == nil {
		t.Fatal("expected error for unknown basis")
	}
}

// TestTransformFloat32_RoundTrip verifies float32 reconstruction accuracy.
func TestTransformFloat32_RoundTrip(t *testing.T) {
	const numSamples = 2048

	input := make([]float32, numSamples)
	for i := range input {
		input[i] = float32(math.Sin(2 * math.Pi * 1000 * float64(i) / 44100))
	}

	for _, basis := range []Basis{BasisHaar, BasisPolynomial, BasisDaubechies4} {
		t.Run(basis.String(), func(t *testing.T) {
			coeffs, err := ForwardMonoFloat32(input, basis)
			if err != nil {
				t.Fatalf("ForwardMonoFloat32 failed: %v", err)
			}
			if &coeffs[0] == &input[0] {
				t.Fatal("ForwardMonoFloat32 must not alias its input")
			}

			restored, err := InverseMonoFloat32(coeffs, basis)
			if err != nil {
				t.Fatalf("InverseMonoFloat32 failed: %v", err)
			}

			var maxErr float64
			for i := range input {
				maxErr = math.Max(maxErr, math.Abs(float64(input[i]-restored[i])))
			}
			if maxErr > 1e-4 {
				t.Errorf("max reconstruction error %e exceeds 1e-4", maxErr)
			}
		})
	}
}

// TestTransformFloat32_InvalidLength verifies length validation.
func TestTransformFloat32_InvalidLength(t *testing.T) {
	tr, err := NewFloat32(BasisDaubechies4)
	if err != nil {
		t.Fatalf("NewFloat32 failed: %v", err)
	}

	for _, n := range []int{0, 2, 6, 100} {
		if err := tr.Forward(make([]float32, n)); err == nil {
			t.Errorf("Forward(len=%d) should fail", n)
		}
	}
}

// TestForwardFloat32_MatchesFloat64 verifies that the float32 entry point of
// Transform produces the float64 result rounded once.
func TestForwardFloat32_MatchesFloat64(t *testing.T) {
	const numSamples = 512

	tr, err := NewDaubechies4()
	if err != nil {
		t.Fatalf("NewDaubechies4 failed: %v", err)
	}

	in32 := make([]float32, numSamples)
	in64 := make([]float64, numSamples)
	for i := range in32 {
		in32[i] = float32(i%17) / 17
		in64[i] = float64(in32[i])
	}

	if err := tr.ForwardFloat32(in32); err != nil {
		t.Fatalf("ForwardFloat32 failed: %v", err)
	}
	if err := tr.Forward(in64); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	for i := range in32 {
		if in32[i] != float32(in64[i]) {
			t.Fatalf("sample %d: float32 path %v, float64 path %v", i, in32[i], in64[i])
		}
	}

	if err := tr.InverseFloat32(in32); err != nil {
		t.Fatalf("InverseFloat32 failed: %v", err)
	}
	for i := range in32 {
		want := float32(i%17) / 17
		if math.Abs(float64(in32[i]-want)) > 1e-5 {
			t.Fatalf("sample %d: got %v, want %v", i, in32[i], want)
		}
	}
}

// TestInterleaveToStereoFloat32 verifies float32 stereo interleaving.
func TestInterleaveToStereoFloat32(t *testing.T) {
	left := []float32{1.0, 2.0, 3.0}
	right := []float32{4.0, 5.0, 6.0}

	result := InterleaveToStereoFloat32(left, right)

	expected := []float32{1.0, 4.0, 2.0, 5.0, 3.0, 6.0}
	if len(result) != len(expected) {
		t.Fatalf("length = %d, want %d", len(result), len(expected))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("result[%d] = %v, want %v", i, result[i], expected[i])
		}
	}
}

// TestDeinterleaveFromStereoFloat32 verifies float32 stereo deinterleaving.
func TestDeinterleaveFromStereoFloat32(t *testing.T) {
	interleaved := []float32{1.0, 4.0, 2.0, 5.0, 3.0, 6.0}

	left, right := DeinterleaveFromStereoFloat32(interleaved)

	expectedLeft := []float32{1.0, 2.0, 3.0}
	expectedRight := []float32{4.0, 5.0, 6.0}
	for i := range expectedLeft {
		if left[i] != expectedLeft[i] || right[i] != expectedRight[i] {
			t.Errorf("index %d: got (%v, %v), want (%v, %v)",
				i, left[i], right[i], expectedLeft[i], expectedRight[i])
		}
	}
}
