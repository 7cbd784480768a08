package wavelet

import (
	"fmt"
	"sync"

	"github.com/tphakala/simd/cpu"
)

// liftingTransform implements Transform over a float64 kernel.
// The kernel is immutable, so one liftingTransform may be used from
// several goroutines on distinct buffers.
type liftingTransform struct {
	config Config
	kernel *kernel[float64]
}

// newLiftingTransform creates a transform for a validated configuration.
func newLiftingTransform(config *Config) (*liftingTransform, error) {
	k, err := newKernel[float64](config.Basis)
	if err != nil {
		return nil, fmt.Errorf("failed to create kernel: %w", err)
	}

	return &liftingTransform{
		config: *config,
		kernel: k,
	}, nil
}

// Forward performs the full forward transform in place.
func (t *liftingTransform) Forward(buf []float64) error {
	if err := checkLength(len(buf), t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.forward(buf)
}

// Inverse performs the full inverse transform in place.
func (t *liftingTransform) Inverse(buf []float64) error {
	if err := checkLength(len(buf), t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.inverse(buf)
}

// ForwardStep performs one forward level on buf[0:n].
func (t *liftingTransform) ForwardStep(buf []float64, n int) error {
	if err := checkStep(len(buf), n, t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.step.ForwardStep(buf, n)
}

// InverseStep performs one inverse level on buf[0:n].
func (t *liftingTransform) InverseStep(buf []float64, n int) error {
	if err := checkStep(len(buf), n, t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.step.InverseStep(buf, n)
}

// ForwardStepRev performs one reversed-layout forward level on buf[0:n].
func (t *liftingTransform) ForwardStepRev(buf []float64, n int) error {
	if err := checkStep(len(buf), n, t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.forwardStepRev(buf, n)
}

// InverseStepRev undoes ForwardStepRev on buf[0:n].
func (t *liftingTransform) InverseStepRev(buf []float64, n int) error {
	if err := checkStep(len(buf), n, t.config.Basis, t.config.MaxLength); err != nil {
		return err
	}
	return t.kernel.inverseStepRev(buf, n)
}

// ForwardFloat32 transforms float32 data.
// Internally converts to float64 for processing, then converts back, so
// that rounding happens once rather than at every level.
func (t *liftingTransform) ForwardFloat32(buf []float32) error {
	return t.viaFloat64(buf, t.Forward)
}

// InverseFloat32 undoes ForwardFloat32.
func (t *liftingTransform) InverseFloat32(buf []float32) error {
	return t.viaFloat64(buf, t.Inverse)
}

func (t *liftingTransform) viaFloat64(buf []float32, fn func([]float64) error) error {
	buf64 := make([]float64, len(buf))
	for i, v := range buf {
		buf64[i] = float64(v)
	}

	if err := fn(buf64); err != nil {
		return err
	}

	for i, v := range buf64 {
		buf[i] = float32(v)
	}
	return nil
}

// ForwardMulti transforms every channel buffer.
func (t *liftingTransform) ForwardMulti(bufs [][]float64) error {
	return t.processMulti(bufs, t.Forward)
}

// InverseMulti inverse-transforms every channel buffer.
func (t *liftingTransform) InverseMulti(bufs [][]float64) error {
	return t.processMulti(bufs, t.Inverse)
}

// processMulti applies fn to each channel.
// When EnableParallel is true in config, channels are processed concurrently.
// Otherwise, channels are processed sequentially.
func (t *liftingTransform) processMulti(bufs [][]float64, fn func([]float64) error) error {
	// Sequential processing (default or when parallel disabled)
	if !t.config.EnableParallel || len(bufs) <= 1 {
		for ch := range bufs {
			if err := fn(bufs[ch]); err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}
		}
		return nil
	}

	// Parallel processing: each goroutine owns one buffer
	var wg sync.WaitGroup
	errChan := make(chan error, len(bufs))

	for ch := range bufs {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()

			if err := fn(bufs[channel]); err != nil {
				errChan <- fmt.Errorf("channel %d: %w", channel, err)
			}
		}(ch)
	}

	wg.Wait()
	close(errChan)

	// Check for errors
	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

// Basis returns the configured basis.
func (t *liftingTransform) Basis() Basis {
	return t.config.Basis
}

// MinBlock returns the smallest region a step acts on.
func (t *liftingTransform) MinBlock() int {
	return t.config.Basis.MinBlock()
}

// GetInfo returns information about the transform.
func (t *liftingTransform) GetInfo() Info {
	return Info{
		Basis:     t.config.Basis.String(),
		MinBlock:  t.MinBlock(),
		MaxLength: t.config.MaxLength,
		Parallel:  t.config.EnableParallel,
		SIMDType:  cpu.Info(),
	}
}
