// Package daubechies implements the Daubechies D4 wavelet as a periodic
// four-tap filter bank.
//
// Each forward step correlates the region with the scaling filter h and the
// wavelet filter g, wrapping the last two samples around to the start, and
// keeps every second output. The smoothed half goes to [0, n/2) and the
// wavelet coefficients to [n/2, n). The inverse step applies the transposed
// filters to the interleaved halves.
//
// D4 has no predict/update decomposition here, so it does not implement
// lifting.Lifter; it is a lifting.Stepper and reuses the shared multi-level
// loops.
package daubechies

import (
	"math"

	"github.com/tphakala/go-lifting-wavelet/internal/lifting"
	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

const (
	// MinBlock is the smallest region a D4 step acts on.
	MinBlock = 4

	// Taps is the filter length.
	Taps = 4

	// periodicPad is the number of samples wrapped from the start of a region
	// onto its end.
	periodicPad = Taps - 2
)

// Coefficients is the D4 filter set.
type Coefficients[F simdops.Float] struct {
	H  [Taps]F // forward scaling (low pass)
	G  [Taps]F // forward wavelet (high pass)
	IH [Taps]F // inverse, even outputs
	IG [Taps]F // inverse, odd outputs
}

// D4 is the Daubechies four-coefficient transform. Its coefficients never
// change after New, so a single D4 may transform distinct buffers concurrently.
type D4[F simdops.Float] struct {
	coef   Coefficients[F]
	fwd    [][]F
	inv    [][]F
	ops    *simdops.Ops[F]
	arenas arenaPool[F]
}

// New creates a D4 transform.
func New[F simdops.Float]() *D4[F] {
	sqrt3 := math.Sqrt(3)
	denom := 4 * math.Sqrt2

	h := [Taps]float64{
		(1 + sqrt3) / denom,
		(3 + sqrt3) / denom,
		(3 - sqrt3) / denom,
		(1 - sqrt3) / denom,
	}
	g := [Taps]float64{h[3], -h[2], h[1], -h[0]}

	var c Coefficients[F]
	for i := range Taps {
		c.H[i] = F(h[i])
		c.G[i] = F(g[i])
	}
	c.IH = [Taps]F{c.H[2], c.G[2], c.H[0], c.G[0]}
	c.IG = [Taps]F{c.H[3], c.G[3], c.H[1], c.G[1]}

	d := &D4[F]{coef: c, ops: simdops.For[F]()}
	d.fwd = [][]F{d.coef.H[:], d.coef.G[:]}
	d.inv = [][]F{d.coef.IH[:], d.coef.IG[:]}
	return d
}

// Coefficients returns a copy of the filter set.
func (d *D4[F]) Coefficients() Coefficients[F] {
	return d.coef
}

// MinBlock returns the smallest region a step acts on.
func (d *D4[F]) MinBlock() int {
	return MinBlock
}

// ForwardStep transforms vec[0:n]: smoothed values to [0, n/2), wavelet
// coefficients to [n/2, n). Regions smaller than MinBlock are left unchanged.
func (d *D4[F]) ForwardStep(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}
	a := d.arenas.get(n)
	defer d.arenas.put(a)

	half := n >> 1
	d.forward(a, vec, n, vec[:half], vec[half:n])
	return nil
}

// ForwardStepRev is ForwardStep with the halves swapped: wavelet
// coefficients to [0, n/2), smoothed values to [n/2, n).
func (d *D4[F]) ForwardStepRev(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}
	a := d.arenas.get(n)
	defer d.arenas.put(a)

	half := n >> 1
	d.forward(a, vec, n, vec[half:n], vec[:half])
	return nil
}

// InverseStep undoes ForwardStep on vec[0:n].
func (d *D4[F]) InverseStep(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}
	a := d.arenas.get(n)
	defer d.arenas.put(a)

	half := n >> 1
	d.inverse(a, vec, n, vec[:half], vec[half:n])
	return nil
}

// InverseStepRev undoes ForwardStepRev on vec[0:n].
func (d *D4[F]) InverseStepRev(vec []F, n int) error {
	if n < MinBlock {
		return nil
	}
	a := d.arenas.get(n)
	defer d.arenas.put(a)

	half := n >> 1
	d.inverse(a, vec, n, vec[half:n], vec[:half])
	return nil
}

// ForwardTrans runs the full forward transform of vec[0:length] using one
// scratch arena for every level.
func (d *D4[F]) ForwardTrans(vec []F, length int) error {
	if length < MinBlock {
		return nil
	}
	a := d.arenas.get(length)
	defer d.arenas.put(a)

	return lifting.ForwardTrans[F](&arenaStepper[F]{d: d, a: a}, vec, length)
}

// InverseTrans undoes ForwardTrans.
func (d *D4[F]) InverseTrans(vec []F, length int) error {
	if length < MinBlock {
		return nil
	}
	a := d.arenas.get(length)
	defer d.arenas.put(a)

	return lifting.InverseTrans[F](&arenaStepper[F]{d: d, a: a}, vec, length)
}

// forward correlates the periodic extension of vec[0:n] with h and g and
// writes the even-indexed outputs to smooth and detail.
func (d *D4[F]) forward(a *arena[F], vec []F, n int, smooth, detail []F) {
	ext, dsts := a.views(n)
	copy(ext, vec[:n])
	copy(ext[n:], vec[:periodicPad])

	d.ops.ConvolveValidMulti(dsts, ext, d.fwd)

	lo, hi := dsts[0], dsts[1]
	for k := range smooth {
		smooth[k] = lo[2*k]
		detail[k] = hi[2*k]
	}
}

// inverse rebuilds vec[0:n] from the smoothed and wavelet halves. The
// interleaved sequence is prefixed with the last pair so the transposed
// filters see the same periodic wrap as the forward step.
func (d *D4[F]) inverse(a *arena[F], vec []F, n int, smooth, detail []F) {
	half := n >> 1
	ext, dsts := a.views(n)
	ext[0] = smooth[half-1]
	ext[1] = detail[half-1]
	d.ops.Interleave2(ext[periodicPad:], smooth, detail)

	d.ops.ConvolveValidMulti(dsts, ext, d.inv)

	even, odd := dsts[0], dsts[1]
	for k := range half {
		vec[2*k] = even[2*k]
		vec[2*k+1] = odd[2*k]
	}
}

// arenaStepper runs D4 steps on a borrowed arena.
type arenaStepper[F simdops.Float] struct {
	d *D4[F]
	a *arena[F]
}

func (s *arenaStepper[F]) MinBlock() int { return MinBlock }

func (s *arenaStepper[F]) ForwardStep(vec []F, n int) error {
	half := n >> 1
	s.d.forward(s.a, vec, n, vec[:half], vec[half:n])
	return nil
}

func (s *arenaStepper[F]) InverseStep(vec []F, n int) error {
	half := n >> 1
	s.d.inverse(s.a, vec, n, vec[:half], vec[half:n])
	return nil
}

var (
	_ lifting.Stepper[float64] = (*D4[float64])(nil)
	_ lifting.Stepper[float64] = (*arenaStepper[float64])(nil)
)
