// Package interp implements the fixed-offset polynomial interpolator used by
// the polynomial lifting predictor.
//
// Known points are assumed to sit at x-coordinates 0..N-1. Only the offsets
// 0.5, 1.5, 2.5 and 3.5 (4-point table) and 0.5, 1.5 (2-point table) are
// supported; their Lagrange coefficients are computed once at construction.
package interp

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-lifting-wavelet/internal/mathutil"
	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

const (
	// FourPoints is the cubic (4-point) interpolation order.
	FourPoints = 4

	// TwoPoints is the linear (2-point) interpolation order.
	TwoPoints = 2

	// firstOffset is the x-coordinate of the first table row; row r sits at r + 0.5.
	firstOffset = 0.5
)

// Errors returned by InterpPoint.
var (
	// ErrBadOffset indicates an x outside the precomputed table rows.
	ErrBadOffset = errors.New("interp: evaluation offset outside table")

	// ErrBadPointCount indicates a point count other than 2 or at least 4.
	ErrBadPointCount = errors.New("interp: unsupported number of points")

	// ErrShortInput indicates fewer known values than the table order.
	ErrShortInput = errors.New("interp: not enough known values")
)

// Interpolator holds the 4-point and 2-point coefficient tables.
// It is immutable after New and safe for concurrent use.
type Interpolator[F simdops.Float] struct {
	fourPoint [FourPoints][FourPoints]F
	twoPoint  [TwoPoints][TwoPoints]F
}

// New creates an Interpolator with both coefficient tables filled.
func New[F simdops.Float]() *Interpolator[F] {
	p := &Interpolator[F]{}

	var c [mathutil.MaxLagrangePoints]float64
	for row := range FourPoints {
		mathutil.Lagrange(firstOffset+float64(row), FourPoints, c[:])
		for i := range FourPoints {
			p.fourPoint[row][i] = F(c[i])
		}
	}
	for row := range TwoPoints {
		mathutil.Lagrange(firstOffset+float64(row), TwoPoints, c[:])
		for i := range TwoPoints {
			p.twoPoint[row][i] = F(c[i])
		}
	}

	return p
}

// InterpPoint returns the value at x of the polynomial through the known
// values d, located at x-coordinates 0..m-1 where m = min(n, 4).
//
// x selects a table row by truncation, so it is expected to be one of the
// tabulated offsets. n below 4 selects the 2-point table and only d[0], d[1]
// contribute.
func (p *Interpolator[F]) InterpPoint(x float64, n int, d []F) (F, error) {
	m := min(n, FourPoints)
	if m != FourPoints && m != TwoPoints {
		return 0, fmt.Errorf("%w: n = %d", ErrBadPointCount, n)
	}

	// Also rejects NaN and values too large to truncate.
	if !(x >= 0 && x < float64(m)) {
		return 0, fmt.Errorf("%w: n = %d, x = %g", ErrBadOffset, m, x)
	}
	row := int(x)

	if len(d) < m {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortInput, m, len(d))
	}

	if m == TwoPoints {
		c := &p.twoPoint[row]
		return c[0]*d[0] + c[1]*d[1], nil
	}

	c := &p.fourPoint[row]
	return c[0]*d[0] + c[1]*d[1] + c[2]*d[2] + c[3]*d[3], nil
}

// Table returns a copy of the coefficient table for the given order
// (TwoPoints or FourPoints). Row r holds the coefficients at x = r + 0.5.
// It returns nil for any other order.
func (p *Interpolator[F]) Table(points int) [][]F {
	switch points {
	case FourPoints:
		out := make([][]F, FourPoints)
		for r := range out {
			out[r] = append([]F(nil), p.fourPoint[r][:]...)
		}
		return out
	case TwoPoints:
		out := make([][]F, TwoPoints)
		for r := range out {
			out[r] = append([]F(nil), p.twoPoint[r][:]...)
		}
		return out
	default:
		return nil
	}
}
