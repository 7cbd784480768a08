// Command wavelet-tables prints the coefficient tables behind the lifting
// kernels together with a few sanity checks on them.
package main

import (
	"fmt"
	"math"

	wavelet "github.com/tphakala/go-lifting-wavelet"
	"github.com/tphakala/go-lifting-wavelet/internal/daubechies"
	"github.com/tphakala/go-lifting-wavelet/internal/interp"
	"gonum.org/v1/gonum/floats"
)

const (
	// Impulse response probe
	probeLength   = 16
	impulseOffset = 5

	// Row x-coordinates start here and step by one
	firstRowOffset = 0.5
)

func main() {
	fmt.Println("=== Lagrange Interpolation Tables ===")

	p := interp.New[float64]()
	for _, points := range []int{interp.FourPoints, interp.TwoPoints} {
		fmt.Printf("\n%d-point table:\n", points)
		for r, row := range p.Table(points) {
			// Coefficients of an interpolating polynomial always sum to one
			fmt.Printf("  x = %.1f: %v  (sum %.10f)\n", firstRowOffset+float64(r), formatRow(row), floats.Sum(row))
		}
	}

	fmt.Println("\n=== Daubechies D4 Coefficients ===")

	c := daubechies.New[float64]().Coefficients()
	h, g := c.H[:], c.G[:]
	fmt.Printf("  H:  %v\n", formatRow(h))
	fmt.Printf("  G:  %v\n", formatRow(g))
	fmt.Printf("  IH: %v\n", formatRow(c.IH[:]))
	fmt.Printf("  IG: %v\n", formatRow(c.IG[:]))
	fmt.Printf("\n  sum(H)  = %.10f (sqrt 2 = %.10f)\n", floats.Sum(h), math.Sqrt2)
	fmt.Printf("  sum(G)  = %.10f\n", floats.Sum(g))
	fmt.Printf("  |H|^2   = %.10f\n", floats.Dot(h, h))
	fmt.Printf("  <H, G>  = %.10f\n", floats.Dot(h, g))

	fmt.Printf("\n=== Impulse Response (N = %d, impulse at %d) ===\n", probeLength, impulseOffset)

	for _, basis := range []wavelet.Basis{wavelet.BasisHaar, wavelet.BasisPolynomial, wavelet.BasisDaubechies4} {
		impulse := make([]float64, probeLength)
		impulse[impulseOffset] = 1

		coeffs, err := wavelet.ForwardMono(impulse, basis)
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", basis, err)
			continue
		}

		d, err := wavelet.Decompose(coeffs, basis.MinBlock())
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", basis, err)
			continue
		}

		_, maxErr, err := wavelet.RoundTrip(impulse, basis)
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", basis, err)
			continue
		}

		fmt.Printf("\n  %s:\n", basis)
		fmt.Printf("    coefficients: %v\n", formatRow(coeffs))
		fmt.Printf("    band energies (coarse to fine): %v\n", formatRow(wavelet.BandEnergies(d)))
		fmt.Printf("    round trip error: %.3e\n", maxErr)
	}
}

func formatRow(row []float64) string {
	s := "["
	for i, v := range row {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%+.6f", v)
	}
	return s + "]"
}
