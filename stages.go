package wavelet

import (
	"fmt"

	"github.com/tphakala/go-lifting-wavelet/internal/daubechies"
	"github.com/tphakala/go-lifting-wavelet/internal/haar"
	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/mathutil"
	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

// fullTransformer is implemented by kernels with their own multi-level loop.
type fullTransformer[F simdops.Float] interface {
	ForwardTrans(vec []F, length int) error
	InverseTrans(vec []F, length int) error
}

// reverseStepper is implemented by kernels with a reversed-layout step.
type reverseStepper[F simdops.Float] interface {
	ForwardStepRev(vec []F, n int) error
	InverseStepRev(vec []F, n int) error
}

// kernel binds a basis to its step implementation at one precision.
type kernel[F simdops.Float] struct {
	basis Basis
	step  lifting.Stepper[F]
	full  fullTransformer[F]
	rev   reverseStepper[F]
}

// newKernel creates the kernel for a basis.
//
//   - BasisHaar: the generic lifting engine driving the Haar predict/update
//   - BasisPolynomial: the Haar strategy with its interpolation stage
//   - BasisDaubechies4: the D4 filter bank
func newKernel[F simdops.Float](b Basis) (*kernel[F], error) {
	k := &kernel[F]{basis: b}

	switch b {
	case BasisHaar:
		e := lifting.New[F](haar.New[F]())
		k.step = e
		k.rev = e
	case BasisPolynomial:
		k.step = haar.New[F]()
	case BasisDaubechies4:
		d := daubechies.New[F]()
		k.step = d
		k.full = d
		k.rev = d
	default:
		return nil, fmt.Errorf("%w: unknown basis %d", ErrInvalidConfig, int(b))
	}

	return k, nil
}

func (k *kernel[F]) forward(vec []F) error {
	if k.full != nil {
		return k.full.ForwardTrans(vec, len(vec))
	}
	return lifting.ForwardTrans(k.step, vec, len(vec))
}

func (k *kernel[F]) inverse(vec []F) error {
	if k.full != nil {
		return k.full.InverseTrans(vec, len(vec))
	}
	return lifting.InverseTrans(k.step, vec, len(vec))
}

func (k *kernel[F]) forwardStepRev(vec []F, n int) error {
	if k.rev == nil {
		return fmt.Errorf("%w: %s has no reversed step", ErrNotSupported, k.basis)
	}
	return k.rev.ForwardStepRev(vec, n)
}

func (k *kernel[F]) inverseStepRev(vec []F, n int) error {
	if k.rev == nil {
		return fmt.Errorf("%w: %s has no reversed step", ErrNotSupported, k.basis)
	}
	return k.rev.InverseStepRev(vec, n)
}

// checkLength validates a full-transform buffer length.
func checkLength(n int, b Basis, maxLength int) error {
	if !mathutil.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}
	if n < b.MinBlock() {
		return fmt.Errorf("%w: %d below %s minimum %d", ErrInvalidLength, n, b, b.MinBlock())
	}
	if maxLength > 0 && n > maxLength {
		return fmt.Errorf("%w: %d exceeds max length %d", ErrInvalidLength, n, maxLength)
	}
	return nil
}

// checkStep validates a single-step region against its buffer and the
// configured length cap. Regions below the basis minimum are accepted and
// left unchanged by the kernel.
func checkStep(bufLen, n int, b Basis, maxLength int) error {
	if n < 0 || n > bufLen {
		return fmt.Errorf("%w: region %d outside buffer of %d", ErrInvalidLength, n, bufLen)
	}
	if maxLength > 0 && n > maxLength {
		return fmt.Errorf("%w: region %d exceeds max length %d", ErrInvalidLength, n, maxLength)
	}
	if n >= b.MinBlock() && !mathutil.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: region %d is not a power of two", ErrInvalidLength, n)
	}
	return nil
}
