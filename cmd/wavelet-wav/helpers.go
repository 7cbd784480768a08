package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	wavelet "github.com/tphakala/go-lifting-wavelet"
	"github.com/tphakala/go-lifting-wavelet/internal/framing"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if format.NumChannels < 1 {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Get total duration for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(duration.Seconds() * float64(format.SampleRate))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file     *os.File
	encoder  *wav.Encoder
	format   *audio.Format
	bitDepth int
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:     outputFile,
		encoder:  wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		format:   &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		bitDepth: bitDepth,
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	if len(samples) == 0 {
		return nil
	}
	return w.encoder.Write(&audio.IntBuffer{
		Format:         w.format,
		Data:           samples,
		SourceBitDepth: w.bitDepth,
	})
}

// Close finalises the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// analysisBuffers holds all preallocated buffers for the main loop.
type analysisBuffers struct {
	intBuffer    *audio.IntBuffer
	channelBufs  [][]float64
	frames       [][]float64
	outputIntBuf []int
	invMaxVal    float64
	maxVal       float64
}

// newAnalysisBuffers creates and preallocates all processing buffers.
func newAnalysisBuffers(channels, bitDepth, frameSize int, format *audio.Format) *analysisBuffers {
	channelBufs := make([][]float64, channels)
	frames := make([][]float64, channels)
	for ch := range channels {
		channelBufs[ch] = make([]float64, bufferSize)
		frames[ch] = make([]float64, frameSize)
	}

	maxVal := getMaxValue(bitDepth)

	return &analysisBuffers{
		intBuffer: &audio.IntBuffer{
			Data:   make([]int, bufferSize*channels),
			Format: format,
		},
		channelBufs:  channelBufs,
		frames:       frames,
		outputIntBuf: make([]int, frameSize*channels),
		invMaxVal:    1.0 / maxVal,
		maxVal:       maxVal,
	}
}

// channelFramers cuts every channel into frames in lockstep.
type channelFramers []*framing.Framer

func newChannelFramers(channels, frameSize int) (channelFramers, error) {
	framers := make(channelFramers, channels)
	for ch := range framers {
		f, err := framing.NewFramer(frameSize)
		if err != nil {
			return nil, err
		}
		framers[ch] = f
	}
	return framers, nil
}

// push appends the first n samples of each channel buffer.
func (c channelFramers) push(bufs [][]float64, n int) {
	for ch, f := range c {
		f.Push(bufs[ch][:n])
	}
}

// next fills one frame per channel. All channels receive the same number of
// samples, so they run out together.
func (c channelFramers) next(frames [][]float64) bool {
	for ch, f := range c {
		if !f.Next(frames[ch]) {
			return false
		}
	}
	return true
}

// flush emits the zero-padded tail of every channel and the number of real samples.
func (c channelFramers) flush(frames [][]float64) (int, bool) {
	valid, ok := 0, false
	for ch, f := range c {
		n, got := f.Flush(frames[ch])
		if got {
			valid, ok = n, true
		}
	}
	return valid, ok
}

// frameProcessor analyses and reconstructs one frame per channel.
type frameProcessor struct {
	tr       wavelet.Transform
	restored [][]float64
	bands    *bandAccumulator
	maxError float64
}

func newFrameProcessor(tr wavelet.Transform, channels, frameSize int) *frameProcessor {
	restored := make([][]float64, channels)
	for ch := range restored {
		restored[ch] = make([]float64, frameSize)
	}
	return &frameProcessor{
		tr:       tr,
		restored: restored,
		bands:    newBandAccumulator(frameSize, tr.MinBlock()),
	}
}

// process transforms frames, records band energies, and leaves the
// reconstruction in p.restored.
func (p *frameProcessor) process(frames [][]float64) error {
	for ch := range frames {
		copy(p.restored[ch], frames[ch])
	}

	if err := p.tr.ForwardMulti(p.restored); err != nil {
		return fmt.Errorf("forward transform: %w", err)
	}

	for ch := range p.restored {
		d, err := wavelet.Decompose(p.restored[ch], p.tr.MinBlock())
		if err != nil {
			return err
		}
		p.bands.add(d)
	}

	if err := p.tr.InverseMulti(p.restored); err != nil {
		return fmt.Errorf("inverse transform: %w", err)
	}

	for ch := range frames {
		p.maxError = max(p.maxError, wavelet.MaxAbsError(frames[ch], p.restored[ch]))
	}
	return nil
}

// bandAccumulator sums band energies over frames and channels.
type bandAccumulator struct {
	frameSize int
	lengths   []int
	energies  []float64
}

func newBandAccumulator(frameSize, minBlock int) *bandAccumulator {
	levels := wavelet.Levels(frameSize, minBlock)
	lengths := make([]int, 0, levels+1)
	lengths = append(lengths, minBlock/2)
	for l := minBlock / 2; len(lengths) <= levels; l <<= 1 {
		lengths = append(lengths, l)
	}
	return &bandAccumulator{
		frameSize: frameSize,
		lengths:   lengths,
		energies:  make([]float64, len(lengths)),
	}
}

func (b *bandAccumulator) add(d wavelet.Decomposition) {
	for i, e := range wavelet.BandEnergies(d) {
		b.energies[i] += e
	}
}

// bandRow is one line of the energy report.
type bandRow struct {
	label   string
	percent float64
}

// report returns each band's share of the total energy, labelled with its
// approximate frequency range. Band i of length L covers
// [rate*L/(2N), rate*L/N] for frame size N; the approximation covers [0, rate*L/(2N)].
func (b *bandAccumulator) report(rate int) []bandRow {
	var total float64
	for _, e := range b.energies {
		total += e
	}

	rows := make([]bandRow, len(b.energies))
	for i, e := range b.energies {
		hi := float64(rate) * float64(b.lengths[i]) / float64(b.frameSize)
		lo := hi / 2
		label := fmt.Sprintf("detail %.0f-%.0f Hz", lo, hi)
		if i == 0 {
			label = fmt.Sprintf("approx 0-%.0f Hz", lo)
		}

		var pct float64
		if total > 0 {
			pct = e / total * percentScale
		}
		rows[i] = bandRow{label: label, percent: pct}
	}
	return rows
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleaveInto converts interleaved int samples into preallocated per-channel buffers.
func deinterleaveInto(data []int, channelBufs [][]float64, numChannels, samplesPerChannel int, invMaxVal float64) {
	// Fast path for mono
	if numChannels == monoChannels {
		buf := channelBufs[0]
		for i := range samplesPerChannel {
			buf[i] = float64(data[i]) * invMaxVal
		}
		return
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		buf0, buf1 := channelBufs[0], channelBufs[1]
		for i := range samplesPerChannel {
			idx := i * stereoChannels
			buf0[i] = float64(data[idx]) * invMaxVal
			buf1[i] = float64(data[idx+1]) * invMaxVal
		}
		return
	}

	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channelBufs[ch][i] = float64(data[base+ch]) * invMaxVal
		}
	}
}

// interleaveInto converts the first n samples of each channel into a
// preallocated int buffer, clamping to [-1, 1]. Returns the number of
// elements written, or 0 if dst is too small.
func interleaveInto(channels [][]float64, n int, dst []int, maxVal float64) int {
	numChannels := len(channels)
	totalLen := n * numChannels
	if numChannels == 0 || n == 0 || len(dst) < totalLen {
		return 0
	}

	for i := range n {
		base := i * numChannels
		for ch := range numChannels {
			sample := max(-1.0, min(1.0, channels[ch][i]))
			dst[base+ch] = int(sample * maxVal)
		}
	}
	return totalLen
}
