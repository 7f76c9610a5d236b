// SPDX-License-Identifier: MIT
// Package: lvradar/waveform
//
// types.go - Pulse, Window, options and sentinel errors.

package waveform

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/cmplxs"
)

// Sentinel errors for pulse synthesis.
var (
	// ErrInvalidParameter is returned for non-positive or non-finite
	// duration/sample rate, or a negative/non-finite bandwidth or frequency.
	ErrInvalidParameter = errors.New("waveform: invalid parameter")

	// ErrUnknownWindow is returned when a window name is not recognized.
	ErrUnknownWindow = errors.New("waveform: unknown window")

	// ErrEmptyPulse is returned when duration·sampleRate rounds to no samples.
	ErrEmptyPulse = errors.New("waveform: pulse has no samples")
)

// Window names a real-valued taper applied to the pulse envelope.
type Window string

const (
	// NoWindow leaves the pulse at unit magnitude.
	NoWindow Window = "none"

	// Hanning is the symmetric Hann taper 0.5·(1 − cos(2πn/(N−1))).
	Hanning Window = "hanning"

	// Hamming is the symmetric Hamming taper 0.54 − 0.46·cos(2πn/(N−1)).
	Hamming Window = "hamming"

	// Blackman is the symmetric three-term Blackman taper.
	Blackman Window = "blackman"
)

// ParseWindow maps a case-insensitive name onto a Window.
// "" and "none" mean NoWindow; "hann" is accepted as an alias of Hanning.
func ParseWindow(name string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(NoWindow):
		return NoWindow, nil
	case string(Hanning), "hann":
		return Hanning, nil
	case string(Hamming):
		return Hamming, nil
	case string(Blackman):
		return Blackman, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
}

// String implements fmt.Stringer.
func (w Window) String() string { return string(w) }

// Pulse is an immutable complex-baseband transmit pulse.
//
// Fields:
//   - Samples    - complex envelope, len N.
//   - Time       - sample instants i/SampleRate, len N.
//   - SampleRate - samples per second.
//   - Duration   - requested pulse length in seconds (N/SampleRate ≈ Duration).
//   - StartFreq  - instantaneous frequency at t=0 (Hz).
//   - Bandwidth  - swept bandwidth (Hz); 0 for a tone.
//   - ChirpRate  - k in Hz/s; negative for a down-chirp.
//   - Window     - taper that was applied.
//
// Downstream stages read Samples only; callers that need to mutate must Clone.
type Pulse struct {
	Samples    []complex128
	Time       []float64
	SampleRate float64
	Duration   float64
	StartFreq  float64
	Bandwidth  float64
	ChirpRate  float64
	Window     Window
}

// Len returns the number of samples N.
func (p *Pulse) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Samples)
}

// Energy returns Σ|p[i]|².
func (p *Pulse) Energy() float64 {
	if p == nil {
		return 0
	}

	return Energy(p.Samples)
}

// Energy returns Σ|x[i]|² of any complex sequence.
func Energy(x []complex128) float64 {
	return real(cmplxs.Dot(x, x))
}

// Clone returns a deep copy.
func (p *Pulse) Clone() *Pulse {
	if p == nil {
		return nil
	}
	c := *p
	c.Samples = append([]complex128(nil), p.Samples...)
	c.Time = append([]float64(nil), p.Time...)

	return &c
}

// Option configures GenerateChirp.
type Option func(*chirpConfig)

type chirpConfig struct {
	down      bool
	amplitude float64
}

// WithDownChirp makes the instantaneous frequency decrease over time (k < 0).
func WithDownChirp() Option {
	return func(c *chirpConfig) {
		c.down = true
	}
}

// WithAmplitude scales the envelope by A (>0) before tapering.
// Panics if A <= 0 or NaN: a zero-energy pulse can never be matched.
func WithAmplitude(A float64) Option {
	if !(A > 0) {
		panic("waveform: WithAmplitude(A<=0)")
	}
	return func(c *chirpConfig) {
		c.amplitude = A
	}
}

func newChirpConfig(opts ...Option) chirpConfig {
	cfg := chirpConfig{amplitude: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
