// SPDX-License-Identifier: MIT
// Package: lvradar/waveform
//
// chirp.go - complex-baseband LFM chirp and CW tone generators.
//
// Contract:
//   - GenerateChirp / GenerateTone validate every parameter before allocating.
//   - Samples sit on the half-open axis [0, duration) at spacing 1/sampleRate.
//   - O(N) time, O(N) memory. No panics on user input. No global state.

package waveform

import (
	"fmt"
	"math"
	"math/cmplx"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// axisTol is the relative tolerance under which duration·sampleRate is
// treated as an exact integer. Products such as 10e-6·100e6 can land one ulp
// above the integer; without the snap the half-open axis would gain a sample.
const axisTol = 1e-9

// GenerateChirp returns a linear-FM pulse sweeping bandwidth Hz from startFreq
// over duration seconds, sampled at sampleRate and tapered by window.
//
// Model:
//   - tᵢ = i/fs for every i with tᵢ < duration
//   - k  = bandwidth/duration (negated by WithDownChirp)
//   - φᵢ = 2π(f0·tᵢ + ½·k·tᵢ²)
//   - pᵢ = A·w[i]·exp(jφᵢ)
//
// Errors:
//   - ErrInvalidParameter for fs<=0, duration<=0, bandwidth<0 or any non-finite input.
//   - ErrUnknownWindow for a window outside {none, hanning, hamming, blackman}.
//   - ErrEmptyPulse when duration·fs is zero within axisTol (no tᵢ < duration).
func GenerateChirp(startFreq, bandwidth, duration, sampleRate float64, window Window, opts ...Option) (*Pulse, error) {
	if err := validateAxis(duration, sampleRate); err != nil {
		return nil, fmt.Errorf("GenerateChirp: %w", err)
	}
	if !finite(startFreq) || !finite(bandwidth) || bandwidth < 0 {
		return nil, fmt.Errorf("GenerateChirp: bandwidth=%g start=%g: %w", bandwidth, startFreq, ErrInvalidParameter)
	}
	win, err := ParseWindow(string(window))
	if err != nil {
		return nil, fmt.Errorf("GenerateChirp: %w", err)
	}

	cfg := newChirpConfig(opts...)

	n := sampleCount(duration, sampleRate)
	if n < 1 {
		return nil, fmt.Errorf("GenerateChirp: duration=%g fs=%g: %w", duration, sampleRate, ErrEmptyPulse)
	}

	k := bandwidth / duration
	if cfg.down {
		k = -k
	}

	t := timeAxis(n, sampleRate)
	out := make([]complex128, n)

	var phase float64
	for i, ti := range t {
		phase = tau * (startFreq*ti + 0.5*k*ti*ti)
		out[i] = complex(cfg.amplitude, 0) * cmplx.Exp(complex(0, phase))
	}

	applyTaper(out, taper(win, n))

	return &Pulse{
		Samples:    out,
		Time:       t,
		SampleRate: sampleRate,
		Duration:   duration,
		StartFreq:  startFreq,
		Bandwidth:  bandwidth,
		ChirpRate:  k,
		Window:     win,
	}, nil
}

// GenerateTone returns the legacy constant-frequency pulse
// exp(j(2π·frequency·t + phase)) on the same half-open axis as GenerateChirp.
// It carries no taper; it is kept for Doppler-style references and
// comparisons against the chirp's compression gain.
func GenerateTone(frequency, duration, sampleRate, phase float64) (*Pulse, error) {
	if err := validateAxis(duration, sampleRate); err != nil {
		return nil, fmt.Errorf("GenerateTone: %w", err)
	}
	if !finite(frequency) || !finite(phase) {
		return nil, fmt.Errorf("GenerateTone: frequency=%g phase=%g: %w", frequency, phase, ErrInvalidParameter)
	}

	n := sampleCount(duration, sampleRate)
	if n < 1 {
		return nil, fmt.Errorf("GenerateTone: duration=%g fs=%g: %w", duration, sampleRate, ErrEmptyPulse)
	}

	t := timeAxis(n, sampleRate)
	out := make([]complex128, n)
	for i, ti := range t {
		out[i] = cmplx.Exp(complex(0, tau*frequency*ti+phase))
	}

	return &Pulse{
		Samples:    out,
		Time:       t,
		SampleRate: sampleRate,
		Duration:   duration,
		StartFreq:  frequency,
		Window:     NoWindow,
	}, nil
}

// SampleCount reports how many samples a pulse of the given duration holds.
// It returns 0 for invalid input.
func SampleCount(duration, sampleRate float64) int {
	if validateAxis(duration, sampleRate) != nil {
		return 0
	}

	return sampleCount(duration, sampleRate)
}

// sampleCount counts i >= 0 with i/fs < duration.
func sampleCount(duration, sampleRate float64) int {
	x := duration * sampleRate
	r := math.Round(x)
	if math.Abs(x-r) <= axisTol*math.Max(1, math.Abs(x)) {
		return int(r)
	}

	return int(math.Ceil(x))
}

// timeAxis returns i/fs for i in [0, n).
func timeAxis(n int, sampleRate float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / sampleRate
	}

	return t
}

func validateAxis(duration, sampleRate float64) error {
	if !finite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("sample rate %g: %w", sampleRate, ErrInvalidParameter)
	}
	if !finite(duration) || duration <= 0 {
		return fmt.Errorf("duration %g: %w", duration, ErrInvalidParameter)
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
