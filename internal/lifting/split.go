package lifting

import "github.com/tphakala/go-lifting-wavelet/internal/simdops"

// Split reorders vec[0:n] so that the elements at even indices occupy
// [0, n/2) and the elements at odd indices occupy [n/2, n), each keeping
// its relative order.
//
// The permutation is done in place by swapping adjacent pairs on a window
// that shrinks from [1, n-1) by one element at each end per pass.
func Split[F simdops.Float](vec []F, n int) {
	start := 1
	end := n - 1

	for start < end {
		for i := start; i < end; i += 2 {
			vec[i], vec[i+1] = vec[i+1], vec[i]
		}
		start++
		end--
	}
}

// Merge is the inverse of Split: it interleaves the even half [0, n/2) and
// the odd half [n/2, n) of vec back into natural order.
//
// Passes start at the centre pair [n/2-1, n/2) and widen by one element at
// each end.
func Merge[F simdops.Float](vec []F, n int) {
	half := n >> 1
	start := half - 1
	end := half

	for start > 0 {
		for i := start; i < end; i += 2 {
			vec[i], vec[i+1] = vec[i+1], vec[i]
		}
		start--
		end++
	}
}
