package daubechies

import (
	"sync"

	"github.com/tphakala/go-lifting-wavelet/internal/simdops"
)

// arena is the scratch space for one transform: the periodically extended
// input (n+2) and the two filter outputs (n-1 each).
type arena[F simdops.Float] struct {
	ext  []F
	lo   []F
	hi   []F
	dsts [2][]F
}

// arenaPool hands out arenas large enough for a given region length.
type arenaPool[F simdops.Float] struct {
	pool sync.Pool
}

// get returns an arena able to hold a step of length n.
func (p *arenaPool[F]) get(n int) *arena[F] {
	a, ok := p.pool.Get().(*arena[F])
	if !ok {
		a = &arena[F]{}
	}
	a.grow(n)
	return a
}

func (p *arenaPool[F]) put(a *arena[F]) {
	p.pool.Put(a)
}

func (a *arena[F]) grow(n int) {
	if cap(a.ext) >= n+periodicPad {
		return
	}
	a.ext = make([]F, n+periodicPad)
	a.lo = make([]F, n-1)
	a.hi = make([]F, n-1)
}

// views returns the scratch slices sized for a step of length n.
func (a *arena[F]) views(n int) (ext []F, dsts [][]F) {
	a.dsts[0] = a.lo[:n-1]
	a.dsts[1] = a.hi[:n-1]
	return a.ext[:n+periodicPad], a.dsts[:]
}
