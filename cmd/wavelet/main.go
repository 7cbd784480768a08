package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	wavelet "github.com/tphakala/go-lifting-wavelet"
	"github.com/tphakala/go-lifting-wavelet/internal/mathutil"
)

func main() {
	// Command-line flags
	var (
		basisName = flag.String("basis", defaultBasis, "Wavelet basis: haar, polynomial, daubechies4")
		length    = flag.Int("length", defaultLength, "Transform length (power of two)")
		channels  = flag.Int("channels", defaultChannels, "Number of channels to transform")
		signal    = flag.String("signal", defaultSignal, "Test signal: sine, ramp, constant, impulse")
		demo      = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	basis, err := wavelet.ParseBasis(*basisName)
	if err != nil {
		log.Fatalf("Invalid basis: %v", err)
	}

	if err := validateLength(*length, basis); err != nil {
		log.Fatalf("Invalid length: %v", err)
	}

	tr, err := wavelet.New(&wavelet.Config{
		Basis:          basis,
		MaxLength:      *length,
		EnableParallel: *channels > 1,
	})
	if err != nil {
		log.Fatalf("Failed to create transform: %v", err)
	}

	info := wavelet.GetInfo(tr)
	fmt.Printf("Transform created:\n")
	fmt.Printf("  Basis: %s\n", info.Basis)
	fmt.Printf("  Min block: %d samples\n", info.MinBlock)
	fmt.Printf("  Max length: %d samples\n", info.MaxLength)
	fmt.Printf("  Levels: %d\n", wavelet.Levels(*length, info.MinBlock))
	fmt.Printf("  Parallel: %v\n", info.Parallel)
	fmt.Printf("  SIMD: %s\n", info.SIMDType)

	fmt.Println("\nProcessing test signal...")
	bufs := make([][]float64, max(*channels, 1))
	originals := make([][]float64, len(bufs))
	for ch := range bufs {
		bufs[ch] = generateTestSignal(*signal, *length, ch)
		originals[ch] = append([]float64(nil), bufs[ch]...)
	}

	if err := tr.ForwardMulti(bufs); err != nil {
		log.Fatalf("Forward transform failed: %v", err)
	}

	d, err := wavelet.Decompose(bufs[0], tr.MinBlock())
	if err != nil {
		log.Fatalf("Decompose failed: %v", err)
	}
	fmt.Printf("First coefficients: %v\n", bufs[0][:min(coeffsToShow, len(bufs[0]))])
	printBands(d)

	if err := tr.InverseMulti(bufs); err != nil {
		log.Fatalf("Inverse transform failed: %v", err)
	}

	var maxErr float64
	for ch := range bufs {
		maxErr = max(maxErr, wavelet.MaxAbsError(originals[ch], bufs[ch]))
	}
	fmt.Printf("Round trip max error: %.3e\n", maxErr)
}

// validateLength rejects transform lengths the basis cannot process.
// A zero -length would otherwise pass as an unbounded MaxLength.
func validateLength(n int, basis wavelet.Basis) error {
	if !mathutil.IsPowerOfTwo(n) {
		return fmt.Errorf("%d is not a power of two", n)
	}
	if n < basis.MinBlock() {
		return fmt.Errorf("%d is below the %s minimum of %d", n, basis, basis.MinBlock())
	}
	return nil
}

// timeRoundTrips runs forward and inverse transforms of buf the given number
// of times and returns the mean duration of one round trip.
func timeRoundTrips(tr wavelet.Transform, buf []float64, iterations int) (time.Duration, error) {
	if iterations < 1 {
		return 0, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	start := time.Now()
	for range iterations {
		if err := tr.Forward(buf); err != nil {
			return 0, fmt.Errorf("forward: %w", err)
		}
		if err := tr.Inverse(buf); err != nil {
			return 0, fmt.Errorf("inverse: %w", err)
		}
	}
	return time.Since(start) / time.Duration(iterations), nil
}

func generateTestSignal(kind string, samples, channel int) []float64 {
	signal := make([]float64, samples)

	switch kind {
	case "ramp":
		for i := range signal {
			signal[i] = float64(i) / float64(samples)
		}
	case "constant":
		for i := range signal {
			signal[i] = constantLevel
		}
	case "impulse":
		if samples > 0 {
			signal[samples/2] = 1
		}
	default:
		// 1kHz sine, phase shifted per channel
		omega := 2 * math.Pi * testSignalFrequency / testSampleRate
		for i := range signal {
			signal[i] = math.Sin(omega*float64(i) + float64(channel))
		}
	}

	return signal
}

func printBands(d wavelet.Decomposition) {
	energies := wavelet.BandEnergies(d)
	var total float64
	for _, e := range energies {
		total += e
	}
	if total == 0 {
		fmt.Println("Signal has no energy")
		return
	}

	fmt.Printf("Energy in approximation: %.2f%%\n", energies[0]/total*percentScale)
	first := max(1, len(energies)-bandsToShow)
	for i := first; i < len(energies); i++ {
		fmt.Printf("Energy in detail band %d (%d coefficients): %.2f%%\n",
			i, len(d.Details[i-1]), energies[i]/total*percentScale)
	}
}

func runDemo() {
	fmt.Println("=== Go Lifting Wavelet Demo ===")

	bases := []wavelet.Basis{
		wavelet.BasisHaar,
		wavelet.BasisPolynomial,
		wavelet.BasisDaubechies4,
	}

	// Demo 1: Energy compaction
	fmt.Println("1. Energy Compaction (1 kHz sine)")
	fmt.Println("---------------------------------")

	for _, n := range []int{lengthShort, lengthMedium, lengthLong} {
		fmt.Printf("\nN = %d:\n", n)
		for _, basis := range bases {
			coeffs, err := wavelet.ForwardMono(generateTestSignal("sine", n, 0), basis)
			if err != nil {
				fmt.Printf("  %s: Error - %v\n", basis, err)
				continue
			}
			d, err := wavelet.Decompose(coeffs, basis.MinBlock())
			if err != nil {
				fmt.Printf("  %s: Error - %v\n", basis, err)
				continue
			}
			energies := wavelet.BandEnergies(d)
			finest := energies[len(energies)-1] / wavelet.Energy(coeffs) * percentScale
			fmt.Printf("  %-12s %2d levels, finest band holds %.3f%% of the energy\n",
				basis.String()+":", len(d.Details), finest)
		}
	}

	// Demo 2: Performance characteristics
	fmt.Println("\n2. Performance Characteristics")
	fmt.Println("------------------------------")

	fmt.Printf("Forward + inverse of %d samples, %d iterations:\n", lengthLong, demoIterations)

	for _, basis := range bases {
		tr, err := wavelet.New(&wavelet.Config{Basis: basis})
		if err != nil {
			continue
		}

		perRoundTrip, err := timeRoundTrips(tr, generateTestSignal("sine", lengthLong, 0), demoIterations)
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", basis, err)
			continue
		}
		fmt.Printf("  %-12s %v per round trip\n", basis.String()+":", perRoundTrip)
	}

	// Demo 3: Multi-channel processing
	fmt.Println("\n3. Multi-channel Processing")
	fmt.Println("---------------------------")

	for _, ch := range []int{monoChannels, stereoChannels, surround5_1, surround7_1} {
		tr, err := wavelet.New(&wavelet.Config{
			Basis:          wavelet.BasisDaubechies4,
			EnableParallel: true,
		})
		if err != nil {
			fmt.Printf("  %d channels: Error - %v\n", ch, err)
			continue
		}

		bufs := make([][]float64, ch)
		for i := range bufs {
			bufs[i] = generateTestSignal("sine", lengthMedium, i)
		}

		start := time.Now()
		if err := tr.ForwardMulti(bufs); err != nil {
			fmt.Printf("  %d channels: Error - %v\n", ch, err)
			continue
		}
		fmt.Printf("  %d channels: %v\n", ch, time.Since(start))
	}

	fmt.Println("\n=== Demo Complete ===")
}
