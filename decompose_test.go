package wavelet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lifting-wavelet/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		n, minBlock, want int
	}{
		{8, 2, 3},
		{8, 4, 2},
		{4096, 2, 12},
		{4, 4, 1},
		{2, 4, 0},
		{8, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levels(tt.n, tt.minBlock), "Levels(%d, %d)", tt.n, tt.minBlock)
	}
}

func TestDecompose_Layout(t *testing.T) {
	coeffs := testutil.Ramp(16)

	d, err := Decompose(coeffs, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, d.Approximation)
	require.Len(t, d.Details, 4)
	assert.Equal(t, []float64{1}, d.Details[0])
	assert.Equal(t, []float64{2, 3}, d.Details[1])
	assert.Equal(t, []float64{4, 5, 6, 7}, d.Details[2])
	assert.Equal(t, []float64{8, 9, 10, 11, 12, 13, 14, 15}, d.Details[3])

	d4, err := Decompose(coeffs, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, d4.Approximation)
	require.Len(t, d4.Details, 3)
	assert.Equal(t, []float64{2, 3}, d4.Details[0])
}

func TestDecompose_ViewsAlias(t *testing.T) {
	coeffs := testutil.Ramp(8)
	d, err := Decompose(coeffs, 2)
	require.NoError(t, err)

	d.Details[2][0] = 42
	assert.Equal(t, 42.0, coeffs[4])
}

func TestDecompose_Invalid(t *testing.T) {
	_, err := Decompose(make([]float64, 12), 2)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = Decompose(make([]float64, 2), 4)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = Decompose(make([]float64, 8), 3)
	require.ErrorIs(t, err, ErrInvalidLength)
}

// TestBandEnergies_D4PreservesEnergy checks that the band energies of an
// orthonormal transform add up to the signal energy.
func TestBandEnergies_D4PreservesEnergy(t *testing.T) {
	const n = 1024
	signal := testutil.Noise(n, testNoiseSeed)

	coeffs, err := ForwardMono(signal, BasisDaubechies4)
	require.NoError(t, err)

	d, err := Decompose(coeffs, BasisDaubechies4.MinBlock())
	require.NoError(t, err)

	energies := BandEnergies(d)
	require.Len(t, energies, Levels(n, 4)+1)
	testutil.AssertRelativeError(t, Energy(signal), floats.Sum(energies), 1e-12)
}

// TestBandEnergies_Localisation checks that a Nyquist-rate signal puts all of
// its energy in the finest band.
func TestBandEnergies_Localisation(t *testing.T) {
	const n = 512

	alternating := make([]float64, n)
	for i := range alternating {
		alternating[i] = math.Pow(-1, float64(i))
	}

	coeffs, err := ForwardMono(alternating, BasisHaar)
	require.NoError(t, err)
	d, err := Decompose(coeffs, BasisHaar.MinBlock())
	require.NoError(t, err)

	energies := BandEnergies(d)
	finest := energies[len(energies)-1]
	assert.InDelta(t, floats.Sum(energies), finest, testutil.DefaultTolerance,
		"alternating input lives entirely in the finest band")
}

func TestMaxAbsError(t *testing.T) {
	assert.Zero(t, MaxAbsError(nil, nil))
	assert.Equal(t, 0.5, MaxAbsError([]float64{1, 2, 3}, []float64{1, 2.5, 3}))
	assert.True(t, math.IsInf(MaxAbsError([]float64{1}, []float64{1, 2}), 1))
}
