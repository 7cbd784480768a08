// Package lifting implements the generic Lifting Scheme wavelet engine.
//
// A lifting step splits a region into its even and odd samples, predicts the
// odd samples from the even ones (leaving detail coefficients in the upper
// half) and updates the even samples so they carry the smoothed signal. The
// inverse step runs the same operations in reverse order with reversed signs,
// which makes every step exactly invertible.
//
// The numeric predict and update operations are supplied by a Lifter.
// Transforms that are not expressed as predict/update pairs implement Stepper
// directly and reuse ForwardTrans and InverseTrans for the multi-level loop.
package lifting

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

// MinBlock is the smallest region a lifting step can act on.
const MinBlock = 2

// Errors returned by lifting steps.
var (
	// ErrBadDirection indicates a Direction other than Forward or Inverse.
	ErrBadDirection = errors.New("lifting: bad direction")

	// ErrNotSupported indicates a step the strategy does not implement.
	ErrNotSupported = errors.New("lifting: operation not supported")
)

// Lifter supplies the predict and update operations of a lifting step.
// Both act on vec[0:n] after Split: even samples in the lower half and odd
// samples in the upper half.
type Lifter[F simdops.Float] interface {
	// Predict replaces the odd half with the prediction error of the odd
	// samples (Forward) or restores it (Inverse).
	Predict(vec []F, n int, dir Direction) error

	// Update folds the detail half into the even half (Forward) or removes
	// it again (Inverse).
	Update(vec []F, n int, dir Direction) error
}

// ReverseLifter is implemented by lifters that can also produce the reversed
// layout used by wavelet packet analysis: detail coefficients in the lower
// half and smoothed values in the upper half.
type ReverseLifter[F simdops.Float] interface {
	PredictRev(vec []F, n int, dir Direction) error
	UpdateRev(vec []F, n int, dir Direction) error
}

// Stepper is the capability every transform strategy provides: a single
// forward and inverse level on vec[0:n], and the smallest n it acts on.
type Stepper[F simdops.Float] interface {
	ForwardStep(vec []F, n int) error
	InverseStep(vec []F, n int) error
	MinBlock() int
}

// Engine composes Split and Merge with a Lifter into a Stepper.
type Engine[F simdops.Float] struct {
	lifter Lifter[F]
}

// New creates an Engine around the given lifter.
func New[F simdops.Float](l Lifter[F]) *Engine[F] {
	return &Engine[F]{lifter: l}
}

// MinBlock returns the smallest region the engine transforms.
func (e *Engine[F]) MinBlock() int {
	return MinBlock
}

// ForwardStep performs Split, Predict and Update on vec[0:n].
// Regions smaller than MinBlock are left unchanged.
func (e *Engine[F]) ForwardStep(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}

	Split(vec, n)
	if err := e.lifter.Predict(vec, n, Forward); err != nil {
		return fmt.Errorf("forward step n=%d: %w", n, err)
	}
	if err := e.lifter.Update(vec, n, Forward); err != nil {
		return fmt.Errorf("forward step n=%d: %w", n, err)
	}
	return nil
}

// InverseStep undoes ForwardStep: Update and Predict in the inverse
// direction, then Merge.
func (e *Engine[F]) InverseStep(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}

	if err := e.lifter.Update(vec, n, Inverse); err != nil {
		return fmt.Errorf("inverse step n=%d: %w", n, err)
	}
	if err := e.lifter.Predict(vec, n, Inverse); err != nil {
		return fmt.Errorf("inverse step n=%d: %w", n, err)
	}
	Merge(vec, n)
	return nil
}

// ForwardStepRev is the reversed-layout forward step. It fails with
// ErrNotSupported when the lifter does not implement ReverseLifter.
func (e *Engine[F]) ForwardStepRev(vec []F, n int) error {
	rev, ok := e.lifter.(ReverseLifter[F])
	if !ok {
		return fmt.Errorf("%w: reverse forward step", ErrNotSupported)
	}
	if n < MinBlock {
		return nil
	}

	Split(vec, n)
	if err := rev.PredictRev(vec, n, Forward); err != nil {
		return fmt.Errorf("reverse forward step n=%d: %w", n, err)
	}
	if err := rev.UpdateRev(vec, n, Forward); err != nil {
		return fmt.Errorf("reverse forward step n=%d: %w", n, err)
	}
	return nil
}

// InverseStepRev undoes ForwardStepRev. It fails with ErrNotSupported when
// the lifter does not implement ReverseLifter.
func (e *Engine[F]) InverseStepRev(vec []F, n int) error {
	rev, ok := e.lifter.(ReverseLifter[F])
	if !ok {
		return fmt.Errorf("%w: reverse inverse step", ErrNotSupported)
	}
	if n < MinBlock {
		return nil
	}

	if err := rev.UpdateRev(vec, n, Inverse); err != nil {
		return fmt.Errorf("reverse inverse step n=%d: %w", n, err)
	}
	if err := rev.PredictRev(vec, n, Inverse); err != nil {
		return fmt.Errorf("reverse inverse step n=%d: %w", n, err)
	}
	Merge(vec, n)
	return nil
}

// ForwardTrans runs the full forward transform of vec[0:length]: one forward
// step at each of n = length, length/2, ... down to s.MinBlock(), each acting
// on the smoothed prefix left by the previous level.
//
// Afterwards the coarsest values sit at the front of vec, followed by the
// detail bands in order of increasing frequency.
func ForwardTrans[F simdops.Float](s Stepper[F], vec []F, length int) error {
	for n := length; n >= s.MinBlock(); n >>= 1 {
		if err := s.ForwardStep(vec, n); err != nil {
			return err
		}
	}
	return nil
}

// InverseTrans undoes ForwardTrans with inverse steps at n = s.MinBlock(),
// 2*s.MinBlock(), ... up to length.
func InverseTrans[F simdops.Float](s Stepper[F], vec []F, length int) error {
	for n := s.MinBlock(); n <= length; n <<= 1 {
		if err := s.InverseStep(vec, n); err != nil {
			return err
		}
	}
	return nil
}

var _ Stepper[float64] = (*Engine[float64])(nil)
