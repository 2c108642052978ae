package dft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by transform functions.
var (
	ErrInvalidLength  = errors.New("dft: length must be > 0")
	ErrLengthMismatch = errors.New("dft: buffer length mismatch")
)

// Transform computes forward and inverse DFTs of one fixed length.
//
// A Transform holds scratch memory and is not safe for concurrent use.
// Create one per goroutine.
type Transform struct {
	n int

	// Exactly one backend is set.
	plan *algofft.Plan[complex128]
	cfft *fourier.CmplxFFT

	scratch []complex128
}

// NewTransform creates a transform for sequences of length n.
func NewTransform(n int) (*Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	t := &Transform{
		n:       n,
		scratch: make([]complex128, n),
	}

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("dft: failed to create FFT plan: %w", err)
		}
		t.plan = plan
	} else {
		t.cfft = fourier.NewCmplxFFT(n)
	}

	return t, nil
}

// Len returns the transform length.
func (t *Transform) Len() int {
	return t.n
}

// Forward computes the complex spectrum of the real sequence src.
//
// The result is written to dst, which is allocated when nil and must
// otherwise have length Len().
func (t *Transform) Forward(dst []complex128, src []float64) ([]complex128, error) {
	if len(src) != t.n {
		return nil, fmt.Errorf("%w: input has %d samples, want %d", ErrLengthMismatch, len(src), t.n)
	}
	dst, err := t.ensure(dst)
	if err != nil {
		return nil, err
	}

	for i, v := range src {
		t.scratch[i] = complex(v, 0)
	}

	if t.plan != nil {
		if err := t.plan.Forward(dst, t.scratch); err != nil {
			return nil, fmt.Errorf("dft: forward FFT failed: %w", err)
		}
		return dst, nil
	}

	t.cfft.Coefficients(dst, t.scratch)
	return dst, nil
}

// Inverse computes the real part of the normalized inverse transform of
// spec.
//
// The result is written to dst, which is allocated when nil and must
// otherwise have length Len().
func (t *Transform) Inverse(dst []float64, spec []complex128) ([]float64, error) {
	if len(spec) != t.n {
		return nil, fmt.Errorf("%w: spectrum has %d bins, want %d", ErrLengthMismatch, len(spec), t.n)
	}
	if dst == nil {
		dst = make([]float64, t.n)
	} else if len(dst) != t.n {
		return nil, fmt.Errorf("%w: output has %d samples, want %d", ErrLengthMismatch, len(dst), t.n)
	}

	copy(t.scratch, spec)

	if t.plan != nil {
		if err := t.plan.Inverse(t.scratch, t.scratch); err != nil {
			return nil, fmt.Errorf("dft: inverse FFT failed: %w", err)
		}
		for i := range dst {
			dst[i] = real(t.scratch[i])
		}
		return dst, nil
	}

	// gonum leaves the inverse unnormalized.
	seq := t.cfft.Sequence(nil, t.scratch)
	scale := 1 / float64(t.n)
	for i := range dst {
		dst[i] = real(seq[i]) * scale
	}
	return dst, nil
}

func (t *Transform) ensure(dst []complex128) ([]complex128, error) {
	if dst == nil {
		return make([]complex128, t.n), nil
	}
	if len(dst) != t.n {
		return nil, fmt.Errorf("%w: output has %d bins, want %d", ErrLengthMismatch, len(dst), t.n)
	}
	return dst, nil
}

// Forward is a one-shot convenience that transforms src with a temporary
// [Transform].
func Forward(src []float64) ([]complex128, error) {
	t, err := NewTransform(len(src))
	if err != nil {
		return nil, err
	}
	return t.Forward(nil, src)
}

// Multiply computes the elementwise product dst[i] = a[i] * b[i].
// All slices must have the same length. dst may alias a or b.
func Multiply(dst, a, b []complex128) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(dst), len(a), len(b))
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
	return nil
}

// MultiplyInPlace computes dst[i] *= src[i].
func MultiplyInPlace(dst, src []complex128) error {
	return Multiply(dst, dst, src)
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
