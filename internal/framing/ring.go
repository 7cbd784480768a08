// Package framing cuts a stream of samples into fixed-size frames for the
// block transforms, which only accept power-of-two lengths.
package framing

import (
	"sync"
)

// minRingCapacity is the smallest capacity NewRingBuffer allocates.
const minRingCapacity = 1

// RingBuffer is a growable circular buffer of samples.
type RingBuffer struct {
	data     []float64
	size     int
	readPos  int
	writePos int
	mu       sync.Mutex
}

// NewRingBuffer creates a ring buffer with the given initial capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, minRingCapacity))}
}

// Write appends samples, growing the buffer if they do not fit.
func (b *RingBuffer) Write(samples []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(samples) == 0 {
		return
	}
	if b.size+len(samples) > len(b.data) {
		b.grow(b.size + len(samples))
	}

	// At most two copies: up to the end of data, then from the start.
	n := copy(b.data[b.writePos:], samples)
	copy(b.data, samples[n:])
	b.writePos = (b.writePos + len(samples)) % len(b.data)
	b.size += len(samples)
}

// ReadInto moves up to len(dst) samples into dst and returns the count.
func (b *RingBuffer) ReadInto(dst []float64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := min(len(dst), b.size)
	if n == 0 {
		return 0
	}

	first := copy(dst[:n], b.data[b.readPos:])
	copy(dst[first:n], b.data)
	b.readPos = (b.readPos + n) % len(b.data)
	b.size -= n
	return n
}

// Available returns the number of samples available for reading.
func (b *RingBuffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Capacity returns the current buffer capacity.
func (b *RingBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Clear removes all samples from the buffer.
func (b *RingBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow doubles the capacity until it holds minCapacity samples, keeping
// the buffered samples in order.
func (b *RingBuffer) grow(minCapacity int) {
	newCapacity := len(b.data)
	for newCapacity < minCapacity {
		newCapacity *= 2
	}

	newData := make([]float64, newCapacity)
	if b.size > 0 {
		n := copy(newData[:b.size], b.data[b.readPos:])
		copy(newData[n:b.size], b.data)
	}

	b.data = newData
	b.readPos = 0
	b.writePos = b.size
}
