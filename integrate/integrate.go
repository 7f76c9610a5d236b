// SPDX-License-Identifier: MIT
// Package: lvradar/integrate
//
// integrate.go - coherent pulse integration over a bounded worker pool.
//
// Determinism:
//   - line i depends only on (inputs, seed, i);
//   - lines are produced in batches, then accumulated strictly in ascending i,
//     so the floating-point summation order never depends on scheduling.

package integrate

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/matched"
	"github.com/katalvlaran/lvradar/noise"
)

// batchFactor scales the number of lines held in memory per worker.
const batchFactor = 4

// Integrate simulates nPulses independent receptions of pulse against targets,
// compresses each one and returns their coherent sum.
//
// Steps per pulse i:
//  1. channel.Simulate with the noise stream noise.Derive(seed, i);
//  2. FitLength to PRI samples;
//  3. matched.Compress against pulse.
//
// Errors:
//   - ErrInvalidPulseCount, ErrInvalidPRF before any work starts;
//   - the first channel or matched error, wrapped with its pulse index;
//   - ctx.Err() if the context is cancelled.
func Integrate(
	ctx context.Context,
	pulse []complex128,
	sampleRate float64,
	targets []channel.Target,
	noiseStd float64,
	nPulses int,
	opts ...Option,
) (*Result, error) {
	if nPulses < 1 {
		return nil, fmt.Errorf("Integrate: nPulses=%d: %w", nPulses, ErrInvalidPulseCount)
	}

	o := newOptions(opts...)
	pri, err := priSamples(o, sampleRate)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Profile:    make([]complex128, pri),
		PRISamples: pri,
		Pulses:     nPulses,
	}
	if o.keepMatrix {
		res.Matrix = make([][]complex128, nPulses)
	}

	batch := o.workers * batchFactor
	lines := make([][]complex128, batch)
	for start := 0; start < nPulses; start += batch {
		end := min(start+batch, nPulses)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for i := start; i < end; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				line, err := rangeLine(pulse, sampleRate, targets, noiseStd, pri, i, o)
				if err != nil {
					return fmt.Errorf("Integrate: pulse %d: %w", i, err)
				}
				lines[i-start] = line

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for j, line := range lines[:end-start] {
			for k, v := range line {
				res.Profile[k] += v
			}
			if o.keepMatrix {
				res.Matrix[start+j] = line
			}
			lines[j] = nil
			if o.onPulse != nil {
				o.onPulse(start+j+1, nPulses)
			}
		}
	}

	return res, nil
}

// Line produces the single compressed, PRI-fitted range line for pulse index
// i, exactly as Integrate would for the same options.
func Line(
	pulse []complex128,
	sampleRate float64,
	targets []channel.Target,
	noiseStd float64,
	i int,
	opts ...Option,
) ([]complex128, error) {
	o := newOptions(opts...)
	pri, err := priSamples(o, sampleRate)
	if err != nil {
		return nil, err
	}

	return rangeLine(pulse, sampleRate, targets, noiseStd, pri, i, o)
}

// FitLength returns a copy of x zero-padded or truncated to exactly n samples.
// It returns nil for n < 0.
func FitLength(x []complex128, n int) []complex128 {
	if n < 0 {
		return nil
	}
	out := make([]complex128, n)
	copy(out, x)

	return out
}

// PRISamples returns round(sampleRate/prf), or 0 when either is not a finite
// positive number.
func PRISamples(sampleRate, prf float64) int {
	if !(sampleRate > 0) || !(prf > 0) || math.IsInf(sampleRate, 0) || math.IsInf(prf, 0) {
		return 0
	}

	return int(math.Round(sampleRate / prf))
}

func priSamples(o options, sampleRate float64) (int, error) {
	if o.priSamples > 0 {
		return o.priSamples, nil
	}
	n := PRISamples(sampleRate, o.prf)
	if n < 1 {
		return 0, fmt.Errorf("Integrate: prf=%g fs=%g: %w", o.prf, sampleRate, ErrInvalidPRF)
	}

	return n, nil
}

func rangeLine(
	pulse []complex128,
	sampleRate float64,
	targets []channel.Target,
	noiseStd float64,
	pri, i int,
	o options,
) ([]complex128, error) {
	chOpts := make([]channel.Option, 0, len(o.channel)+1)
	chOpts = append(chOpts, o.channel...)
	chOpts = append(chOpts, channel.WithSource(noise.Derive(o.seed, uint64(i))))

	rec, err := channel.Simulate(pulse, sampleRate, targets, noiseStd, chOpts...)
	if err != nil {
		return nil, err
	}

	return matched.Compress(FitLength(rec.Samples, pri), pulse, o.filter...)
}
