// SPDX-License-Identifier: MIT
// Package: lvradar/radar
//
// config.go - run parameters, defaults, validation and derived metrics.

package radar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvradar/cfar"
	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/integrate"
	"github.com/katalvlaran/lvradar/matched"
	"github.com/katalvlaran/lvradar/ranging"
	"github.com/katalvlaran/lvradar/waveform"
)

// ErrConfiguration classifies every Config validation failure.
var ErrConfiguration = errors.New("radar: invalid configuration")

// Config holds the parameters of one simulated radar.
type Config struct {
	// SampleRate is the complex baseband sampling rate (Hz).
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`

	// Bandwidth is the chirp sweep (Hz).
	Bandwidth float64 `mapstructure:"bandwidth" yaml:"bandwidth"`

	// PulseDuration is the transmit pulse length (s).
	PulseDuration float64 `mapstructure:"pulse_duration" yaml:"pulse_duration"`

	// StartFreq is the instantaneous baseband frequency at t=0 (Hz).
	StartFreq float64 `mapstructure:"start_freq" yaml:"start_freq"`

	// DownChirp sweeps downwards from StartFreq.
	DownChirp bool `mapstructure:"down_chirp" yaml:"down_chirp"`

	// Window is the taper applied to the pulse.
	Window waveform.Window `mapstructure:"window" yaml:"window"`

	// NPulses is the number of coherently integrated pulses.
	NPulses int `mapstructure:"n_pulses" yaml:"n_pulses"`

	// PRF is the pulse repetition frequency (Hz).
	PRF float64 `mapstructure:"prf" yaml:"prf"`

	// NoiseStd is the complex noise standard deviation, E|n|² = NoiseStd².
	NoiseStd float64 `mapstructure:"noise_std" yaml:"noise_std"`

	// CFAR parameterizes the detector.
	CFAR cfar.Options `mapstructure:"cfar" yaml:"cfar"`

	// Attenuation names the amplitude-versus-range law (channel.ParseAttenuation).
	Attenuation string `mapstructure:"attenuation" yaml:"attenuation"`

	// FilterMethod names the compression engine (matched.ParseMethod).
	FilterMethod string `mapstructure:"filter_method" yaml:"filter_method"`

	// PropagationSpeed is c (m/s).
	PropagationSpeed float64 `mapstructure:"propagation_speed" yaml:"propagation_speed"`

	// Margin is the extra listening time appended to each raw record (s).
	Margin float64 `mapstructure:"margin" yaml:"margin"`

	// Seed drives every noise draw; 0 selects noise.DefaultSeed.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// Workers bounds integration concurrency; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// DefaultConfig returns the reference scenario.
func DefaultConfig() Config {
	const bandwidth = 20e6

	return Config{
		SampleRate:    100e6,
		Bandwidth:     bandwidth,
		PulseDuration: 10e-6,
		StartFreq:     -bandwidth / 2,
		Window:        waveform.Hanning,
		NPulses:       128,
		PRF:           integrate.DefaultPRF,
		NoiseStd:      3e-7,
		CFAR: cfar.Options{
			NumTrain:  35,
			NumGuard:  5,
			PFA:       8e-3,
			PeakGuard: 1,
			Mode:      cfar.CellAveraging,
		},
		Attenuation:      channel.InverseSquare.String(),
		FilterMethod:     matched.FFT.String(),
		PropagationSpeed: channel.SpeedOfLight,
		Margin:           channel.DefaultMargin,
	}
}

// Validate checks every field and returns the first problem found, wrapped
// so that errors.Is matches both ErrConfiguration and the package sentinel
// behind it (waveform.ErrUnknownWindow, cfar.ErrInvalidPFA, ...).
//
// Complexity: O(1).
func (c Config) Validate() error {
	// Stage 1: sampling and pulse geometry.
	if !positive(c.SampleRate) {
		return fieldError("sample_rate", c.SampleRate)
	}
	if !positive(c.Bandwidth) {
		return fieldError("bandwidth", c.Bandwidth)
	}
	if !positive(c.PulseDuration) {
		return fieldError("pulse_duration", c.PulseDuration)
	}
	if math.IsNaN(c.StartFreq) || math.IsInf(c.StartFreq, 0) {
		return fieldError("start_freq", c.StartFreq)
	}
	if _, err := waveform.ParseWindow(string(c.Window)); err != nil {
		return fmt.Errorf("window: %w: %w", ErrConfiguration, err)
	}

	// Stage 2: pulse train.
	if c.NPulses < 1 {
		return fmt.Errorf("n_pulses=%d: %w: %w", c.NPulses, ErrConfiguration, integrate.ErrInvalidPulseCount)
	}
	if !positive(c.PRF) || c.PRISamples() < 1 {
		return fmt.Errorf("prf=%g: %w: %w", c.PRF, ErrConfiguration, integrate.ErrInvalidPRF)
	}
	if c.PRI() < c.PulseDuration {
		return fmt.Errorf("prf=%g: PRI %g s shorter than the pulse: %w: %w", c.PRF, c.PRI(), ErrConfiguration, integrate.ErrInvalidPRF)
	}

	// Stage 3: channel model.
	if !(c.NoiseStd >= 0) || math.IsInf(c.NoiseStd, 0) {
		return fieldError("noise_std", c.NoiseStd)
	}
	if !positive(c.PropagationSpeed) {
		return fieldError("propagation_speed", c.PropagationSpeed)
	}
	if !(c.Margin >= 0) || math.IsInf(c.Margin, 0) {
		return fieldError("margin", c.Margin)
	}
	if _, err := channel.ParseAttenuation(c.Attenuation); err != nil {
		return fmt.Errorf("attenuation: %w: %w", ErrConfiguration, err)
	}

	// Stage 4: processing.
	if _, err := matched.ParseMethod(c.FilterMethod); err != nil {
		return fmt.Errorf("filter_method: %w: %w", ErrConfiguration, err)
	}
	if err := c.CFAR.Validate(); err != nil {
		return fmt.Errorf("cfar: %w: %w", ErrConfiguration, err)
	}
	if c.Workers < 0 {
		return fieldError("workers", float64(c.Workers))
	}

	return nil
}

// PRI returns the pulse repetition interval 1/PRF (s).
func (c Config) PRI() float64 {
	return 1 / c.PRF
}

// PRISamples returns round(SampleRate/PRF), the length of every range line.
func (c Config) PRISamples() int {
	return integrate.PRISamples(c.SampleRate, c.PRF)
}

// PulseSamples returns the number of samples in the transmit pulse.
func (c Config) PulseSamples() int {
	return waveform.SampleCount(c.PulseDuration, c.SampleRate)
}

// RangeResolution returns c/(2B), the compressed-pulse resolution (m).
func (c Config) RangeResolution() float64 {
	return c.PropagationSpeed / (2 * c.Bandwidth)
}

// UnambiguousRange returns c·PRI/2 (m).
func (c Config) UnambiguousRange() float64 {
	return c.PropagationSpeed * c.PRI() / 2
}

// RangeBin returns the range extent of one sample, c/(2·fs) (m).
func (c Config) RangeBin() float64 {
	return ranging.Bin(c.SampleRate, c.PropagationSpeed)
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func fieldError(name string, v float64) error {
	return fmt.Errorf("%s=%g: %w", name, v, ErrConfiguration)
}
