// Command wavelet-wav runs a wavelet analysis over WAV audio files.
//
// Each channel is cut into power-of-two frames, forward-transformed, and the
// energy of every frequency band is accumulated. The frames are then
// inverse-transformed to measure the reconstruction error and, optionally,
// written to a new WAV file.
//
// Usage:
//
//	wavelet-wav input.wav
//	wavelet-wav -basis d4 -frame 4096 input.wav
//	wavelet-wav -basis polynomial -o restored.wav input.wav
//	wavelet-wav -parallel=false input.wav                   # Disable parallel processing
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	wavelet "github.com/tphakala/go-lifting-wavelet"
)

const (
	// Number of sample frames decoded per read
	bufferSize = 65536

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%

	// CLI defaults
	defaultFrameSize = 1024
	defaultBasis     = "daubechies4"
	minRequiredArgs  = 1
	percentScale     = 100

	// WAV format tag for integer PCM
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// options holds the parsed command line.
type options struct {
	basis      wavelet.Basis
	frameSize  int
	parallel   bool
	verbose    bool
	outputPath string
}

func run() error {
	basisName := flag.String("basis", defaultBasis, "Wavelet basis: haar, polynomial, daubechies4 (d4)")
	frameSize := flag.Int("frame", defaultFrameSize, "Frame size in samples (power of two)")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	outputPath := flag.String("o", "", "Write the reconstructed audio to this WAV file")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s music.wav                         # D4 band energies\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -basis haar -frame 256 speech.wav # Short Haar frames\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o restored.wav music.wav         # Write reconstruction\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	basis, err := wavelet.ParseBasis(*basisName)
	if err != nil {
		return err
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	opts := options{
		basis:      basis,
		frameSize:  *frameSize,
		parallel:   *parallel,
		verbose:    *verbose,
		outputPath: *outputPath,
	}
	inputPath := args[0]

	if opts.verbose {
		log.Printf("Input: %s", inputPath)
		if opts.outputPath != "" {
			log.Printf("Output: %s", opts.outputPath)
		}
		log.Printf("Basis: %s", opts.basis)
		log.Printf("Frame size: %d samples", opts.frameSize)
		if opts.parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	stats, err := analyzeWAV(inputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printSummary(os.Stdout, filepath.Base(inputPath), stats, elapsed)
	return nil
}

// analysisStats collects the results of a run.
type analysisStats struct {
	basis        wavelet.Basis
	rate         int
	channels     int
	bitDepth     int
	frameSize    int
	frames       int64
	inputSamples int64
	bands        *bandAccumulator
	maxError     float64
}

func analyzeWAV(inputPath string, opts options) (stats *analysisStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Create the transform; MaxLength doubles as frame size validation
	tr, err := wavelet.New(&wavelet.Config{
		Basis:          opts.basis,
		MaxLength:      opts.frameSize,
		EnableParallel: opts.parallel,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid frame size %d for %s: %w", opts.frameSize, opts.basis, err)
	}

	// 3. Create output writer if requested
	var output *wavOutputWriter
	if opts.outputPath != "" {
		output, err = createWAVOutput(opts.outputPath, input.rate, input.bitDepth, input.channels)
		if err != nil {
			return nil, err
		}
		// Capture close errors on success path (the encoder finalises the header)
		defer func() {
			if closeErr := output.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	// 4. Initialize processing state
	buffers := newAnalysisBuffers(input.channels, input.bitDepth, opts.frameSize, input.format)
	framers, err := newChannelFramers(input.channels, opts.frameSize)
	if err != nil {
		return nil, err
	}
	proc := newFrameProcessor(tr, input.channels, opts.frameSize)

	stats = &analysisStats{
		basis:     opts.basis,
		rate:      input.rate,
		channels:  input.channels,
		bitDepth:  input.bitDepth,
		frameSize: opts.frameSize,
		bands:     proc.bands,
	}
	progress := newProgressTracker(input.totalSamples, opts.verbose)

	emit := func(valid int) error {
		if err := proc.process(buffers.frames); err != nil {
			return err
		}
		stats.frames++
		if output == nil {
			return nil
		}
		n := interleaveInto(proc.restored, valid, buffers.outputIntBuf, buffers.maxVal)
		if err := output.WriteSamples(buffers.outputIntBuf[:n]); err != nil {
			return fmt.Errorf("failed to write audio data: %w", err)
		}
		return nil
	}

	// 5. Main processing loop
	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		samplesPerChannel := n / input.channels
		stats.inputSamples += int64(samplesPerChannel)

		deinterleaveInto(buffers.intBuffer.Data[:n], buffers.channelBufs, input.channels, samplesPerChannel, buffers.invMaxVal)
		framers.push(buffers.channelBufs, samplesPerChannel)

		for framers.next(buffers.frames) {
			if err := emit(opts.frameSize); err != nil {
				return nil, err
			}
		}

		progress.reportIfNeeded(stats.inputSamples)
	}

	// 6. Final partial frame, zero-padded
	if valid, ok := framers.flush(buffers.frames); ok {
		if err := emit(valid); err != nil {
			return nil, err
		}
	}

	stats.maxError = proc.maxError
	return stats, nil
}

// printSummary writes the analysis report.
func printSummary(w io.Writer, name string, stats *analysisStats, elapsed time.Duration) {
	fmt.Fprintf(w, "Analyzed %s with %s\n", name, stats.basis)
	fmt.Fprintf(w, "  %d Hz, %d channels, %d-bit\n", stats.rate, stats.channels, stats.bitDepth)
	fmt.Fprintf(w, "  %d samples in %d frames of %d\n", stats.inputSamples, stats.frames, stats.frameSize)

	fmt.Fprintf(w, "  Band energy:\n")
	for _, row := range stats.bands.report(stats.rate) {
		fmt.Fprintf(w, "    %-24s %6.2f%%\n", row.label, row.percent)
	}

	fmt.Fprintf(w, "  Max reconstruction error: %.3e\n", stats.maxError)
	if stats.rate > 0 && elapsed > 0 {
		fmt.Fprintf(w, "  Duration: %.2fs, Speed: %.1fx realtime\n",
			elapsed.Seconds(),
			float64(stats.inputSamples)/float64(stats.rate)/elapsed.Seconds())
	}
}
