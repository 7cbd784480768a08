package haar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/testutil"
)

const (
	constantLevel = 5.0
	constantLen   = 8
	maxTestLen    = 4096
	noiseSeed     = 7
)

func TestPredict_Differences(t *testing.T) {
	h := New[float64]()
	vec := []float64{1, 2, 3, 4}

	require.NoError(t, h.Predict(vec, 4, lifting.Forward))
	// buffer[2] = 3-1, buffer[3] = 4-2
	assert.Equal(t, []float64{1, 2, 2, 2}, vec)

	require.NoError(t, h.Predict(vec, 4, lifting.Inverse))
	assert.Equal(t, []float64{1, 2, 3, 4}, vec)
}

func TestUpdate_Averages(t *testing.T) {
	h := New[float64]()
	// Split and predicted form of [1, 2, 3, 4].
	vec := []float64{1, 3, 1, 1}

	require.NoError(t, h.Update(vec, 4, lifting.Forward))
	assert.Equal(t, []float64{1.5, 3.5, 1, 1}, vec)

	require.NoError(t, h.Update(vec, 4, lifting.Inverse))
	assert.Equal(t, []float64{1, 3, 1, 1}, vec)
}

func TestBadDirection_LeavesBufferUntouched(t *testing.T) {
	h := New[float64]()
	bad := lifting.Direction(0)

	tests := []struct {
		name string
		op   func([]float64, int, lifting.Direction) error
	}{
		{"predict", h.Predict},
		{"update", h.Update},
		{"interp", h.Interp},
		{"predict_rev", h.PredictRev},
		{"update_rev", h.UpdateRev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := testutil.Ramp(8)
			err := tt.op(vec, len(vec), bad)
			require.ErrorIs(t, err, lifting.ErrBadDirection)
			assert.Equal(t, testutil.Ramp(8), vec)
		})
	}
}

// TestForwardStep_Hand traces one polynomial step on [1, 2, 3, 4]:
// split [1,3,2,4], predict [1,3,1,1], update [1.5,3.5,1,1], then the
// 2-point predictions 2.5 (x=0.5) and 4.5 (x=1.5) are subtracted.
func TestForwardStep_Hand(t *testing.T) {
	h := New[float64]()
	vec := []float64{1, 2, 3, 4}

	require.NoError(t, h.ForwardStep(vec, 4))
	assert.Equal(t, []float64{1.5, 3.5, -1.5, -3.5}, vec)
}

func TestForwardTrans_IntegerRoundTripExact(t *testing.T) {
	h := New[float64]()
	vec := []float64{1, 2, 3, 4}

	require.NoError(t, lifting.ForwardTrans[float64](h, vec, 4))
	assert.Equal(t, []float64{2.5, -0.5, -1.5, -3.5}, vec)

	require.NoError(t, lifting.InverseTrans[float64](h, vec, 4))
	assert.Equal(t, []float64{1, 2, 3, 4}, vec)
}

func TestPlainHaar_ConstantInput(t *testing.T) {
	e := lifting.New[float64](New[float64]())
	vec := testutil.Constant(constantLen, constantLevel)

	require.NoError(t, lifting.ForwardTrans[float64](e, vec, len(vec)))

	expected := make([]float64, constantLen)
	expected[0] = constantLevel
	assert.Equal(t, expected, vec)
}

// TestPolynomial_ConstantInput checks that the coarsest coefficient is the
// mean. The interpolation stage subtracts the predicted average from each
// zero difference, so detail bands hold -level rather than zero.
func TestPolynomial_ConstantInput(t *testing.T) {
	h := New[float64]()
	vec := testutil.Constant(constantLen, constantLevel)

	require.NoError(t, lifting.ForwardTrans[float64](h, vec, len(vec)))

	assert.InDelta(t, constantLevel, vec[0], testutil.DefaultTolerance)
	for i := 1; i < len(vec); i++ {
		assert.InDelta(t, -constantLevel, vec[i], testutil.DefaultTolerance, "vec[%d]", i)
	}
}

func TestRoundTrip_AllLengths(t *testing.T) {
	h := New[float64]()
	e := lifting.New[float64](h)

	for n := lifting.MinBlock; n <= maxTestLen; n <<= 1 {
		original := testutil.Noise(n, noiseSeed)

		poly := testutil.Clone(original)
		require.NoError(t, lifting.ForwardTrans[float64](h, poly, n))
		require.NoError(t, lifting.InverseTrans[float64](h, poly, n))
		testutil.AssertRoundTrip(t, original, poly, testutil.RoundTripTolerance)

		plain := testutil.Clone(original)
		require.NoError(t, lifting.ForwardTrans[float64](e, plain, n))
		require.NoError(t, lifting.InverseTrans[float64](e, plain, n))
		testutil.AssertRoundTrip(t, original, plain, testutil.RoundTripTolerance)
	}
}

func TestStep_BelowMinBlockIsNoOp(t *testing.T) {
	h := New[float64]()
	vec := []float64{3}

	require.NoError(t, h.ForwardStep(vec, 1))
	require.NoError(t, h.InverseStep(vec, 1))
	require.NoError(t, h.ForwardStep(vec, 0))
	assert.Equal(t, []float64{3}, vec)
}

func TestReverseStep_RoundTrip(t *testing.T) {
	e := lifting.New[float64](New[float64]())
	vec := []float64{1, 2, 3, 4}

	require.NoError(t, e.ForwardStepRev(vec, 4))
	// Differences (even - odd) low, averages high.
	assert.Equal(t, []float64{-1, -1, 1.5, 3.5}, vec)

	require.NoError(t, e.InverseStepRev(vec, 4))
	assert.Equal(t, []float64{1, 2, 3, 4}, vec)

	for n := lifting.MinBlock; n <= 256; n <<= 1 {
		original := testutil.Sine(n)
		buf := testutil.Clone(original)
		require.NoError(t, e.ForwardStepRev(buf, n))
		require.NoError(t, e.InverseStepRev(buf, n))
		testutil.AssertRoundTrip(t, original, buf, testutil.RoundTripTolerance)
	}
}

func TestFloat32_RoundTrip(t *testing.T) {
	h := New[float32]()
	const n = 256

	original := make([]float32, n)
	for i, v := range testutil.Sine(n) {
		original[i] = float32(v)
	}
	vec := append([]float32(nil), original...)

	require.NoError(t, lifting.ForwardTrans[float32](h, vec, n))
	require.NoError(t, lifting.InverseTrans[float32](h, vec, n))

	for i := range original {
		assert.InDelta(t, original[i], vec[i], testutil.Float32Tolerance, "index %d", i)
	}
}
