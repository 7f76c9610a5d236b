package matched

import (
	"errors"
	"fmt"
)

// Sentinel errors for pulse compression.
var (
	// ErrEmptyInput is returned when the received record or the pulse is empty.
	ErrEmptyInput = errors.New("matched: empty input")

	// ErrZeroEnergy is returned when normalisation is requested for an all-zero pulse.
	ErrZeroEnergy = errors.New("matched: pulse has zero energy")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognised engine name.
	ErrUnknownMethod = errors.New("matched: unknown method")
)

// Method selects the convolution engine.
type Method int

const (
	// FFT convolves through zero-padded power-of-two spectra. O((N+M)·log(N+M)).
	FFT Method = iota

	// Direct evaluates the convolution sum in the time domain. O(N·M).
	Direct
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case FFT:
		return "fft"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// Option configures Compress.
type Option func(*options)

type options struct {
	normalize bool
	method    Method
}

func newOptions(opts ...Option) options {
	o := options{normalize: true, method: FFT}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithoutNormalization returns the raw correlation instead of dividing by Σ|p|².
func WithoutNormalization() Option {
	return func(o *options) {
		o.normalize = false
	}
}

// WithNormalization sets the normalisation flag explicitly.
func WithNormalization(on bool) Option {
	return func(o *options) {
		o.normalize = on
	}
}

// WithMethod selects the convolution engine. Panics on an unknown Method.
func WithMethod(m Method) Option {
	if m != FFT && m != Direct {
		panic("matched: WithMethod(unknown)")
	}
	return func(o *options) {
		o.method = m
	}
}

// ParseMethod maps "fft" (or "") and "direct" to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "fft":
		return FFT, nil
	case "direct":
		return Direct, nil
	default:
		return FFT, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
