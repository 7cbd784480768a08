package framing

import (
	"errors"
	"fmt"
)

// ErrFrameSize indicates a frame size that is not positive.
var ErrFrameSize = errors.New("framing: frame size must be positive")

// Framer accumulates samples and hands them out as fixed-size frames.
type Framer struct {
	frameSize int
	buf       *RingBuffer
}

// NewFramer creates a Framer emitting frames of frameSize samples.
func NewFramer(frameSize int) (*Framer, error) {
	if frameSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFrameSize, frameSize)
	}
	return &Framer{
		frameSize: frameSize,
		buf:       NewRingBuffer(frameSize * bufferedFrames),
	}, nil
}

// FrameSize returns the frame length.
func (f *Framer) FrameSize() int {
	return f.frameSize
}

// Push appends samples to the pending stream.
func (f *Framer) Push(samples []float64) {
	f.buf.Write(samples)
}

// Pending returns the number of buffered samples not yet emitted.
func (f *Framer) Pending() int {
	return f.buf.Available()
}

// Next fills dst[:FrameSize()] with the next full frame. It returns false,
// leaving dst untouched, when fewer than FrameSize() samples are pending.
func (f *Framer) Next(dst []float64) bool {
	if f.buf.Available() < f.frameSize {
		return false
	}
	f.buf.ReadInto(dst[:f.frameSize])
	return true
}

// Flush emits the final partial frame, zero-padded to FrameSize(), and
// returns how many of its samples are real. It returns false when nothing
// is pending.
func (f *Framer) Flush(dst []float64) (int, bool) {
	frame := dst[:f.frameSize]
	n := f.buf.ReadInto(frame)
	if n == 0 {
		return 0, false
	}
	clear(frame[n:])
	return n, true
}

// Reset discards any pending samples.
func (f *Framer) Reset() {
	f.buf.Clear()
}
