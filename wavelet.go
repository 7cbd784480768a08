package wavelet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-lifting-wavelet/internal/daubechies"
	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/mathutil"
)

// Transform is the main interface for wavelet transforms.
// All operations work in place on caller-owned buffers whose length is a
// power of two no smaller than MinBlock.
type Transform interface {
	// Forward replaces buf with its full multi-level wavelet transform.
	// The coarsest values end up at the front, followed by the detail
	// bands in order of increasing frequency.
	Forward(buf []float64) error

	// Inverse undoes Forward.
	Inverse(buf []float64) error

	// ForwardStep performs a single transform level on buf[0:n].
	// Regions smaller than MinBlock are left unchanged; regions larger than
	// MaxLength are rejected with ErrInvalidLength.
	ForwardStep(buf []float64, n int) error

	// InverseStep undoes ForwardStep on buf[0:n].
	InverseStep(buf []float64, n int) error

	// ForwardStepRev is ForwardStep with the detail coefficients placed in
	// the lower half and the smoothed values in the upper half, the order
	// used by wavelet packet analysis. Bases without a reversed step return
	// ErrNotSupported.
	ForwardStepRev(buf []float64, n int) error

	// InverseStepRev undoes ForwardStepRev.
	InverseStepRev(buf []float64, n int) error

	// ForwardFloat32 is like Forward but for float32 samples.
	ForwardFloat32(buf []float32) error

	// InverseFloat32 is like Inverse but for float32 samples.
	InverseFloat32(buf []float32) error

	// ForwardMulti transforms several independent buffers, one per channel.
	// Channels are transformed concurrently when EnableParallel is set.
	ForwardMulti(bufs [][]float64) error

	// InverseMulti undoes ForwardMulti.
	InverseMulti(bufs [][]float64) error

	// Basis returns the basis function in use.
	Basis() Basis

	// MinBlock returns the smallest region a single step acts on.
	MinBlock() int
}

// Basis selects the wavelet basis function.
type Basis int

const (
	// BasisHaar is the plain lifting Haar wavelet: pairwise differences and
	// averages. Constant input produces all-zero detail bands.
	BasisHaar Basis = iota

	// BasisPolynomial is the Haar wavelet refined by 4-point polynomial
	// interpolation of the averages.
	BasisPolynomial

	// BasisDaubechies4 is the Daubechies four-coefficient wavelet with
	// periodic boundaries.
	BasisDaubechies4
)

// Config holds transform configuration.
type Config struct {
	// Basis selects the wavelet basis function.
	Basis Basis

	// MaxLength caps the accepted buffer length. It must be a power of two.
	// Set to 0 to accept any power-of-two length.
	MaxLength int

	// EnableParallel enables parallel channel processing in ForwardMulti
	// and InverseMulti. Has no effect with a single channel.
	EnableParallel bool
}

// Common errors returned by transforms.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid wavelet configuration")

	// ErrInvalidLength indicates a buffer or region length that is not a
	// power of two, is below the basis minimum, or exceeds MaxLength.
	ErrInvalidLength = errors.New("invalid transform length")

	// ErrNotSupported indicates the requested operation is not supported
	// by the basis.
	ErrNotSupported = errors.New("operation not supported")
)

// String returns the basis name as accepted by ParseBasis.
func (b Basis) String() string {
	switch b {
	case BasisHaar:
		return basisNameHaar
	case BasisPolynomial:
		return basisNamePolynomial
	case BasisDaubechies4:
		return basisNameDaubechies4
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// Valid reports whether b names a known basis.
func (b Basis) Valid() bool {
	return b >= BasisHaar && b <= BasisDaubechies4
}

// MinBlock returns the smallest region a step of this basis acts on.
func (b Basis) MinBlock() int {
	if b == BasisDaubechies4 {
		return daubechies.MinBlock
	}
	return lifting.MinBlock
}

// ParseBasis converts a basis name to a Basis. Matching is case-insensitive
// and accepts a few common aliases ("d4", "poly").
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case basisNameHaar:
		return BasisHaar, nil
	case basisNamePolynomial, "poly":
		return BasisPolynomial, nil
	case basisNameDaubechies4, "d4", "daubechies":
		return BasisDaubechies4, nil
	default:
		return 0, fmt.Errorf("%w: unknown basis %q", ErrInvalidConfig, name)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Basis.Valid() {
		return fmt.Errorf("%w: unknown basis %d", ErrInvalidConfig, int(c.Basis))
	}

	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length must not be negative", ErrInvalidConfig)
	}

	if c.MaxLength > 0 {
		if !mathutil.IsPowerOfTwo(c.MaxLength) {
			return fmt.Errorf("%w: max length %d is not a power of two", ErrInvalidConfig, c.MaxLength)
		}
		if c.MaxLength < c.Basis.MinBlock() {
			return fmt.Errorf("%w: max length %d below %s minimum %d",
				ErrInvalidConfig, c.MaxLength, c.Basis, c.Basis.MinBlock())
		}
		if c.MaxLength > maxTransformLength {
			return fmt.Errorf("%w: max length %d exceeds %d", ErrInvalidConfig, c.MaxLength, maxTransformLength)
		}
	}

	return nil
}

// New creates a new transform with the specified configuration.
func New(config *Config) (Transform, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newLiftingTransform(config)
}

// Info returns information about the transform implementation.
type Info struct {
	// Basis is the basis function name.
	Basis string

	// MinBlock is the smallest region a step acts on.
	MinBlock int

	// MaxLength is the configured length cap (0 = unbounded).
	MaxLength int

	// Parallel reports whether multi-channel calls run concurrently.
	Parallel bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// infoProvider is an optional interface for transforms that can provide detailed info.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about a transform.
// If the transform implements the infoProvider interface, it returns actual values.
// Otherwise, it returns basic info based on the transform's public methods.
func GetInfo(t Transform) Info {
	if provider, ok := t.(infoProvider); ok {
		return provider.GetInfo()
	}

	return Info{
		Basis:    t.Basis().String(),
		MinBlock: t.MinBlock(),
		SIMDType: "none",
	}
}
