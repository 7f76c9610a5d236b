// SPDX-License-Identifier: MIT
// Package: lvradar/matched
//
// compress.go - same-length matched filtering.
//
// Contract:
//   - Inputs are read-only; a fresh output slice is always returned.
//   - Output length is exactly len(received), whatever len(pulse) is.
//   - Both engines implement the same index mapping; they differ only in
//     floating-point rounding.

package matched

import (
	"fmt"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"

	"github.com/katalvlaran/lvradar/waveform"
)

// Compress correlates received with pulse and returns the range profile.
//
// Definition (N = len(received), M = len(pulse), h = Kernel(pulse)):
//
//	full[j] = Σₘ received[j−m]·h[m],  j ∈ [0, N+M−1)
//	out[k]  = full[k + ⌊(M−1)/2⌋] / E,  k ∈ [0, N)
//
// where E = Σ|pulse|² when normalisation is on and 1 otherwise.
//
// Errors:
//   - ErrEmptyInput if either input is empty.
//   - ErrZeroEnergy if normalising an all-zero pulse.
func Compress(received, pulse []complex128, opts ...Option) ([]complex128, error) {
	if len(received) == 0 || len(pulse) == 0 {
		return nil, fmt.Errorf("Compress: len(received)=%d len(pulse)=%d: %w", len(received), len(pulse), ErrEmptyInput)
	}

	o := newOptions(opts...)

	scale := 1.0
	if o.normalize {
		e := waveform.Energy(pulse)
		if e == 0 {
			return nil, fmt.Errorf("Compress: %w", ErrZeroEnergy)
		}
		scale = 1 / e
	}

	h := Kernel(pulse)

	var out []complex128
	switch o.method {
	case Direct:
		out = convolveSameDirect(received, h)
	default:
		out = convolveSameFFT(received, h)
	}

	if scale != 1 {
		s := complex(scale, 0)
		for i := range out {
			out[i] *= s
		}
	}

	return out, nil
}

// Kernel returns the matched filter h[m] = conj(p[M−1−m]).
func Kernel(pulse []complex128) []complex128 {
	m := len(pulse)
	h := make([]complex128, m)
	for i, v := range pulse {
		h[m-1-i] = complex(real(v), -imag(v))
	}

	return h
}

// GroupDelay is the index offset ⌊M/2⌋ between an echo's start and its
// compressed peak in the same-length output.
func GroupDelay(pulseLen int) int {
	if pulseLen < 0 {
		return 0
	}

	return pulseLen / 2
}

// sameOffset is the first full-convolution index kept in the same-length output.
func sameOffset(m int) int {
	return (m - 1) / 2
}

// convolveSameDirect evaluates the kept window of x∗h in the time domain.
func convolveSameDirect(x, h []complex128) []complex128 {
	n, m := len(x), len(h)
	off := sameOffset(m)
	out := make([]complex128, n)

	var (
		j    int
		acc  complex128
		lo   int
		hi   int
		xIdx int
	)
	for k := 0; k < n; k++ {
		j = k + off
		// m ranges over indices where both x[j−m] and h[m] exist.
		lo = j - (n - 1)
		if lo < 0 {
			lo = 0
		}
		hi = j
		if hi > m-1 {
			hi = m - 1
		}
		acc = 0
		for mm := lo; mm <= hi; mm++ {
			xIdx = j - mm
			acc += x[xIdx] * h[mm]
		}
		out[k] = acc
	}

	return out
}

// convolveSameFFT computes the full linear convolution via zero-padded
// power-of-two FFTs and slices the same-length window out of it.
//
// Indices no nonzero input pair can reach stay exactly zero, matching Direct.
func convolveSameFFT(x, h []complex128) []complex128 {
	n, m := len(x), len(h)
	out := make([]complex128, n)

	xa, xb := nonzeroSpan(x)
	ha, hb := nonzeroSpan(h)
	if xa < 0 || ha < 0 {
		return out
	}

	size := dsputils.NextPowerOf2(n + m - 1)

	// go-dsp never writes to its inputs, so x may be padded in place of a copy.
	xp := dsputils.ZeroPad(x, size)
	hp := dsputils.ZeroPad(h, size)

	full := fft.Convolve(xp, hp)

	// full is nonzero only on [xa+ha, xb+hb]; map that onto out.
	off := sameOffset(m)
	lo := max(xa+ha-off, 0)
	hi := min(xb+hb-off, n-1)
	if lo <= hi {
		copy(out[lo:hi+1], full[lo+off:hi+off+1])
	}

	return out
}

// nonzeroSpan returns the first and last indices of x holding a nonzero
// value, or (−1, −1) when x is all zero.
func nonzeroSpan(x []complex128) (first, last int) {
	first, last = -1, -1
	for i, v := range x {
		if v != 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return -1, -1
	}
	for i := len(x) - 1; i >= first; i-- {
		if x[i] != 0 {
			last = i
			break
		}
	}

	return first, last
}
