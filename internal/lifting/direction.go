package lifting

import "fmt"

// Direction selects the sign of every in-place lifting update.
type Direction int

const (
	// Forward is the analysis direction (signal → coefficients).
	Forward Direction = iota + 1

	// Inverse is the synthesis direction (coefficients → signal).
	Inverse
)

// Valid reports whether d is Forward or Inverse.
func (d Direction) Valid() bool {
	return d == Forward || d == Inverse
}

// Check returns ErrBadDirection, annotated with op, unless d is valid.
func (d Direction) Check(op string) error {
	if d.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s: %d", ErrBadDirection, op, int(d))
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
