// SPDX-License-Identifier: MIT
// Package: lvradar/channel
//
// simulate.go - echo placement and additive noise.
//
// Contract:
//   - All validation happens before the record is allocated (fail fast).
//   - Echoes superpose additively; nothing is clipped.
//   - An echo whose window [d, d+M) exceeds the record is dropped silently.
//   - Noise draws come only from the configured Source.

package channel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvradar/noise"
)

// Simulate renders every target's echo of pulse into a zero-filled record
// sampled at sampleRate and adds complex Gaussian noise of total power
// noiseStd² (I and Q each noiseStd/√2).
//
// Steps:
//  1. Validate pulse, sample rate, noise level and every target.
//  2. Size the record: ⌊(margin + 2·max(R)/c + M/fs)·fs⌋ (or WithRecordLength).
//  3. For each target: d = ⌊2R/c·fs⌋, a = ρ·L(R); add a·pulse at [d, d+M)
//     unless that window runs past the record (then mark the echo Dropped).
//  4. Add noise when noiseStd > 0.
//
// Errors:
//   - ErrEmptyPulse, ErrNoTargets, ErrInvalidRange, ErrInvalidParameter.
//
// Complexity: O(N + T·M) time, O(N) memory.
func Simulate(pulse []complex128, sampleRate float64, targets []Target, noiseStd float64, opts ...Option) (*Record, error) {
	if err := validate(pulse, sampleRate, targets, noiseStd); err != nil {
		return nil, fmt.Errorf("Simulate: %w", err)
	}

	cfg := newConfig(opts...)
	m := len(pulse)

	n := cfg.recordLen
	if n == 0 {
		n = recordLength(m, sampleRate, targets, cfg)
	}

	rec := &Record{
		Samples: make([]complex128, n),
		Time:    make([]float64, n),
		Echoes:  make([]Echo, len(targets)),
	}

	var (
		d   int
		amp complex128
	)
	for i, tg := range targets {
		d = delaySamples(tg.Range, sampleRate, cfg.speed)
		echo := Echo{
			Target:       tg,
			DelaySamples: d,
			Amplitude:    tg.reflectivity() * cfg.law.Gain(tg.Range),
		}
		if d+m > n {
			echo.Dropped = true
			rec.Echoes[i] = echo

			continue
		}

		amp = complex(echo.Amplitude, 0)
		seg := rec.Samples[d : d+m]
		for j, p := range pulse {
			seg[j] += amp * p
		}
		rec.Echoes[i] = echo
	}

	noise.AddComplexGaussian(rec.Samples, noiseStd, cfg.src)

	for i := range rec.Time {
		rec.Time[i] = float64(i) / sampleRate
	}

	return rec, nil
}

// RecordLength reports the record size Simulate would allocate for the given
// pulse length and targets, or 0 when targets is empty.
func RecordLength(pulseLen int, sampleRate float64, targets []Target, opts ...Option) int {
	if len(targets) == 0 || pulseLen < 1 || !(sampleRate > 0) {
		return 0
	}
	cfg := newConfig(opts...)
	if cfg.recordLen > 0 {
		return cfg.recordLen
	}

	return recordLength(pulseLen, sampleRate, targets, cfg)
}

func recordLength(pulseLen int, sampleRate float64, targets []Target, cfg config) int {
	maxRange := 0.0
	for _, tg := range targets {
		if tg.Range > maxRange {
			maxRange = tg.Range
		}
	}
	maxDelay := 2 * maxRange / cfg.speed
	pulseDur := float64(pulseLen) / sampleRate
	total := cfg.margin + maxDelay + pulseDur

	return int(math.Floor(total * sampleRate))
}

// delaySamples is ⌊2R/c·fs⌋, evaluated in that order.
func delaySamples(rangeM, sampleRate, speed float64) int {
	delay := 2 * rangeM / speed

	return int(math.Floor(delay * sampleRate))
}

func validate(pulse []complex128, sampleRate float64, targets []Target, noiseStd float64) error {
	if len(pulse) == 0 {
		return ErrEmptyPulse
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate %g: %w", sampleRate, ErrInvalidParameter)
	}
	if !(noiseStd >= 0) || math.IsInf(noiseStd, 0) {
		return fmt.Errorf("noise std %g: %w", noiseStd, ErrInvalidParameter)
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}
	for i, tg := range targets {
		if !(tg.Range > 0) || math.IsInf(tg.Range, 0) {
			return fmt.Errorf("target %d range %g: %w", i, tg.Range, ErrInvalidRange)
		}
		if !(tg.Reflectivity >= 0) || math.IsInf(tg.Reflectivity, 0) {
			return fmt.Errorf("target %d reflectivity %g: %w", i, tg.Reflectivity, ErrInvalidParameter)
		}
	}

	return nil
}
