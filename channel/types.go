// SPDX-License-Identifier: MIT
// Package: lvradar/channel
//
// types.go - targets, attenuation laws, records, options and sentinels.

package channel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvradar/noise"
)

// Physical defaults. Both are overridable per call.
const (
	// SpeedOfLight is the default propagation speed in m/s.
	SpeedOfLight = 3e8

	// DefaultMargin is the extra listening time appended to every record (s).
	DefaultMargin = 5e-6
)

// Sentinel errors for channel simulation.
var (
	// ErrNoTargets is returned when the target list is empty.
	ErrNoTargets = errors.New("channel: no targets")

	// ErrInvalidRange is returned for a non-positive or non-finite target range.
	ErrInvalidRange = errors.New("channel: target range must be > 0")

	// ErrInvalidParameter is returned for a bad sample rate, noise level or reflectivity.
	ErrInvalidParameter = errors.New("channel: invalid parameter")

	// ErrEmptyPulse is returned when the transmit pulse has no samples.
	ErrEmptyPulse = errors.New("channel: empty pulse")

	// ErrUnknownAttenuation is returned by ParseAttenuation for unknown names.
	ErrUnknownAttenuation = errors.New("channel: unknown attenuation law")
)

// Target is a point scatterer. Callers own the slice; Simulate only reads it.
type Target struct {
	// Range is the one-way distance in meters (> 0).
	Range float64 `mapstructure:"range" yaml:"range"`

	// Reflectivity scales the echo amplitude. Zero means 1.
	Reflectivity float64 `mapstructure:"reflectivity" yaml:"reflectivity,omitempty"`
}

// Targets builds unit-reflectivity targets from ranges.
func Targets(ranges ...float64) []Target {
	out := make([]Target, len(ranges))
	for i, r := range ranges {
		out[i] = Target{Range: r}
	}

	return out
}

// Ranges extracts the Range of every target, in order.
func Ranges(targets []Target) []float64 {
	out := make([]float64, len(targets))
	for i, t := range targets {
		out[i] = t.Range
	}

	return out
}

func (t Target) reflectivity() float64 {
	if t.Reflectivity == 0 {
		return 1
	}

	return t.Reflectivity
}

// Attenuation selects the amplitude-versus-range law.
type Attenuation int

const (
	// InverseSquare: amplitude = 1/R² (power ∝ 1/R⁴, the radar equation).
	InverseSquare Attenuation = iota

	// InverseSquareTwoWay: amplitude = 1/(2R)², i.e. 1/R² over the round-trip path.
	InverseSquareTwoWay

	// Unity: no range loss. Useful for unit-amplitude fixtures.
	Unity
)

var attenuationNames = map[Attenuation]string{
	InverseSquare:       "inverse_square",
	InverseSquareTwoWay: "inverse_square_two_way",
	Unity:               "unity",
}

// Gain returns the amplitude factor for a target at range r (> 0).
func (a Attenuation) Gain(r float64) float64 {
	switch a {
	case InverseSquareTwoWay:
		return 1 / ((2 * r) * (2 * r))
	case Unity:
		return 1
	default:
		return 1 / (r * r)
	}
}

// String implements fmt.Stringer.
func (a Attenuation) String() string {
	if s, ok := attenuationNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Attenuation(%d)", int(a))
}

// ParseAttenuation maps a case-insensitive name onto an Attenuation.
// The empty string selects InverseSquare.
func ParseAttenuation(name string) (Attenuation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return InverseSquare, nil
	}
	for a, s := range attenuationNames {
		if s == n {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAttenuation, name)
}

// Echo describes how one target was rendered into a Record.
type Echo struct {
	Target       Target
	DelaySamples int     // ⌊2R/c·fs⌋
	Amplitude    float64 // ρ·L(R)
	Dropped      bool    // placement window exceeded the record
}

// Record is one simulated receive window.
type Record struct {
	Samples []complex128
	Time    []float64
	Echoes  []Echo
}

// Len returns the number of samples.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Samples)
}

// Option customizes Simulate.
type Option func(*config)

type config struct {
	speed     float64
	margin    float64
	law       Attenuation
	src       noise.Source
	recordLen int
}

func newConfig(opts ...Option) config {
	cfg := config{
		speed:  SpeedOfLight,
		margin: DefaultMargin,
		law:    InverseSquare,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.src == nil {
		cfg.src = noise.New(0)
	}

	return cfg
}

// WithPropagationSpeed overrides c (m/s). Panics if c <= 0.
func WithPropagationSpeed(c float64) Option {
	if !(c > 0) {
		panic("channel: WithPropagationSpeed(c<=0)")
	}
	return func(cfg *config) {
		cfg.speed = c
	}
}

// WithMargin overrides the listening margin in seconds. Panics if m < 0.
func WithMargin(m float64) Option {
	if !(m >= 0) {
		panic("channel: WithMargin(m<0)")
	}
	return func(cfg *config) {
		cfg.margin = m
	}
}

// WithAttenuation selects the amplitude-versus-range law.
func WithAttenuation(a Attenuation) Option {
	if _, ok := attenuationNames[a]; !ok {
		panic("channel: WithAttenuation(unknown law)")
	}
	return func(cfg *config) {
		cfg.law = a
	}
}

// WithSource injects the noise generator. Panics on nil.
func WithSource(src noise.Source) Option {
	if src == nil {
		panic("channel: WithSource(nil)")
	}
	return func(cfg *config) {
		cfg.src = src
	}
}

// WithSeed is shorthand for WithSource(noise.New(seed)).
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.src = noise.New(seed)
	}
}

// WithRecordLength fixes the record length to n samples instead of sizing it
// from the farthest target. Echoes that do not fit are dropped.
// Panics if n < 1.
func WithRecordLength(n int) Option {
	if n < 1 {
		panic("channel: WithRecordLength(n<1)")
	}
	return func(cfg *config) {
		cfg.recordLen = n
	}
}
