package haar

import "github.com/tphakala/go-lifting-wavelet/internal/lifting"

// PredictRev is the reversed-layout predict: the even samples in the lower
// half become differences (even - odd) and the odd samples stay put.
func (t *Transform[F]) PredictRev(vec []F, n int, dir lifting.Direction) error {
	if err := dir.Check("predict rev"); err != nil {
		return err
	}

	half := n >> 1
	even := vec[:half]
	odd := vec[half:n]
	if dir == lifting.Forward {
		for i := range even {
			even[i] -= odd[i]
		}
	} else {
		for i := range even {
			even[i] += odd[i]
		}
	}
	return nil
}

// UpdateRev turns the upper half into pair averages using the differences
// left in the lower half by PredictRev.
func (t *Transform[F]) UpdateRev(vec []F, n int, dir lifting.Direction) error {
	if err := dir.Check("update rev"); err != nil {
		return err
	}

	half := n >> 1
	diff := vec[:half]
	odd := vec[half:n]
	if dir == lifting.Forward {
		for i := range odd {
			odd[i] += diff[i] * updateScale
		}
	} else {
		for i := range odd {
			odd[i] -= diff[i] * updateScale
		}
	}
	return nil
}
