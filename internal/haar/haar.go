// Package haar implements the Haar lifting strategy refined by polynomial
// interpolation.
//
// A forward step splits the region, replaces the odd samples with their
// difference from the even neighbour (Predict), turns the even samples into
// pair averages (Update) and finally subtracts a 4-point Lagrange prediction,
// computed from the averages, from each difference (Interp). The inverse step
// runs the same stages backwards with the opposite sign.
//
// Transform also satisfies lifting.Lifter, so lifting.Engine can drive its
// Predict and Update stages alone to obtain the plain Haar wavelet.
package haar

import (
	"fmt"

	"github.com/tphakala/go-lifting-wavelet/internal/interp"
	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

// Transform is the Haar/polynomial lifting strategy.
// It holds only immutable tables and is safe for concurrent use on distinct buffers.
type Transform[F simdops.Float] struct {
	interp *interp.Interpolator[F]
}

// New creates a Transform with its interpolation tables precomputed.
func New[F simdops.Float]() *Transform[F] {
	return &Transform[F]{interp: interp.New[F]()}
}

// MinBlock returns the smallest region a step acts on.
func (t *Transform[F]) MinBlock() int {
	return lifting.MinBlock
}

// Predict replaces each odd sample vec[i], i in [n/2, n), with its difference
// from the matching even sample vec[i-n/2] (Forward), or adds it back (Inverse).
func (t *Transform[F]) Predict(vec []F, n int, dir lifting.Direction) error {
	if err := dir.Check("predict"); err != nil {
		return err
	}

	half := n >> 1
	odd := vec[half:n]
	even := vec[:half]
	if dir == lifting.Forward {
		for i := range odd {
			odd[i] -= even[i]
		}
	} else {
		for i := range odd {
			odd[i] += even[i]
		}
	}
	return nil
}

// Update adds half of each difference to its even sample (Forward), turning
// it into the pair average, or removes it again (Inverse).
func (t *Transform[F]) Update(vec []F, n int, dir lifting.Direction) error {
	if err := dir.Check("update"); err != nil {
		return err
	}

	half := n >> 1
	even := vec[:half]
	odd := vec[half:n]
	if dir == lifting.Forward {
		for i := range even {
			even[i] += odd[i] * updateScale
		}
	} else {
		for i := range even {
			even[i] -= odd[i] * updateScale
		}
	}
	return nil
}

// Interp refines the differences in vec[n/2:n] with a polynomial prediction
// computed from the averages in vec[0:n/2].
//
// Odd sample i is predicted from a window of four averages. Interior samples
// use the window [i-1, i+2] evaluated at 1.5. The first two samples reuse the
// window at 0 (offsets 0.5 and 1.5) and the last two the window ending at
// n/2-1 (offsets 2.5 and 3.5). With only two averages the interpolator falls
// back to its 2-point table; with one, the prediction is the average itself.
func (t *Transform[F]) Interp(vec []F, n int, dir lifting.Direction) error {
	if err := dir.Check("interp"); err != nil {
		return err
	}

	half := n >> 1
	var d [windowPoints]F

	for i := range half {
		var (
			predict F
			err     error
		)

		switch {
		case i == 0:
			if half == 1 {
				predict = vec[0]
				break
			}
			t.fill(vec, d[:], half, 0)
			predict, err = t.interp.InterpPoint(offsetFirst, half, d[:])
		case i == 1:
			predict, err = t.interp.InterpPoint(offsetInterior, half, d[:])
		case i == half-2:
			predict, err = t.interp.InterpPoint(offsetPenult, half, d[:])
		case i == half-1:
			predict, err = t.interp.InterpPoint(offsetLast, half, d[:])
		default:
			t.fill(vec, d[:], half, i-1)
			predict, err = t.interp.InterpPoint(offsetInterior, half, d[:])
		}
		if err != nil {
			return fmt.Errorf("interp i=%d n=%d: %w", i, n, err)
		}

		if dir == lifting.Forward {
			vec[i+half] -= predict
		} else {
			vec[i+half] += predict
		}
	}
	return nil
}

// fill copies min(windowPoints, half) averages starting at start into d.
func (t *Transform[F]) fill(vec, d []F, half, start int) {
	copy(d, vec[start:start+min(windowPoints, half)])
}

// ForwardStep performs Split, Predict, Update and Interp on vec[0:n].
// Regions smaller than MinBlock are left unchanged.
func (t *Transform[F]) ForwardStep(vec []F, n int) error {
	if n < lifting.MinBlock {
		return nil
	}

	lifting.Split(vec, n)
	if err := t.Predict(vec, n, lifting.Forward); err != nil {
		return err
	}
	if err := t.Update(vec, n, lifting.Forward); err != nil {
		return err
	}
	return t.Interp(vec, n, lifting.Forward)
}

// InverseStep undoes ForwardStep: Interp, Update and Predict in the inverse
// direction, then Merge.
func (t *Transform[F]) InverseStep(vec []F, n int) error {
	if n < lifting.MinBlock {
		return nil
	}

	if err := t.Interp(vec, n, lifting.Inverse); err != nil {
		return err
	}
	if err := t.Update(vec, n, lifting.Inverse); err != nil {
		return err
	}
	if err := t.Predict(vec, n, lifting.Inverse); err != nil {
		return err
	}
	lifting.Merge(vec, n)
	return nil
}

var (
	_ lifting.Stepper[float64]       = (*Transform[float64])(nil)
	_ lifting.Lifter[float64]        = (*Transform[float64])(nil)
	_ lifting.ReverseLifter[float64] = (*Transform[float64])(nil)
)
