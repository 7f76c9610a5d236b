// SPDX-License-Identifier: MIT
// Package: lvradar/cfar
//
// detect.go - sliding-window CFAR with local-maximum suppression.
//
// Windows for CUT k (N = NumTrain, G = NumGuard):
//   left  = [k−G−N, k−G)
//   right = [k+G+1, k+G+N+1)

package cfar

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Alpha returns the threshold multiplier N·(pfa^(−1/N) − 1).
// It returns NaN for numTrain < 1 or pfa outside (0, 1).
func Alpha(pfa float64, numTrain int) float64 {
	if numTrain < 1 || !(pfa > 0 && pfa < 1) {
		return math.NaN()
	}
	n := float64(numTrain)

	return n * (math.Pow(pfa, -1/n) - 1)
}

// Magnitude returns |x| element-wise.
func Magnitude(x []complex128) []float64 {
	mag := make([]float64, len(x))
	for i, v := range x {
		mag[i] = cmplx.Abs(v)
	}

	return mag
}

// Detect runs DetectMagnitude on |signal|.
func Detect(signal []complex128, opts Options) []int {
	if opts.Validate() != nil || len(signal) < opts.MinLength() {
		return nil
	}

	return DetectMagnitude(Magnitude(signal), opts)
}

// DetectMagnitude returns the ascending indices k with
//
//	mag[k] > α·noise(k)  and  mag[k] == max(mag[k−g .. k+g])
//
// where g = PeakGuard and the window is clamped to the signal. A cell with an
// equal value to its left inside the window is rejected, so a plateau reports
// only its leftmost cell.
//
// Invalid options or len(mag) < MinLength() return nil.
func DetectMagnitude(mag []float64, opts Options) []int {
	if opts.Validate() != nil {
		return nil
	}
	n := len(mag)
	if n < opts.MinLength() {
		return nil
	}

	alpha := Alpha(opts.PFA, opts.NumTrain)

	var hits []int
	lo, hi := opts.NumTrain+opts.NumGuard, n-opts.NumTrain-opts.NumGuard
	for k := lo; k < hi; k++ {
		if !(mag[k] > alpha*noiseLevel(mag, k, opts)) {
			continue
		}
		if !isLocalMax(mag, k, opts.PeakGuard) {
			continue
		}
		hits = append(hits, k)
	}

	return hits
}

// Threshold returns α·noise(k) for every evaluated cell and NaN for the edge
// cells that are never tested. Invalid options yield all NaN.
func Threshold(mag []float64, opts Options) []float64 {
	out := make([]float64, len(mag))
	floats.AddConst(math.NaN(), out)
	if opts.Validate() != nil || len(mag) < opts.MinLength() {
		return out
	}

	alpha := Alpha(opts.PFA, opts.NumTrain)
	for k := opts.NumTrain + opts.NumGuard; k < len(mag)-opts.NumTrain-opts.NumGuard; k++ {
		out[k] = alpha * noiseLevel(mag, k, opts)
	}

	return out
}

// noiseLevel combines the left and right training means according to the mode.
func noiseLevel(mag []float64, k int, opts Options) float64 {
	nt, g := opts.NumTrain, opts.NumGuard
	left := floats.Sum(mag[k-g-nt : k-g])
	right := floats.Sum(mag[k+g+1 : k+g+nt+1])
	den := float64(nt)

	switch opts.Mode {
	case GreatestOf:
		return math.Max(left, right) / den
	case SmallestOf:
		return math.Min(left, right) / den
	default:
		return (left + right) / (2 * den)
	}
}

// isLocalMax reports whether mag[k] is the leftmost maximum of the clamped
// window [k−g, k+g].
func isLocalMax(mag []float64, k, g int) bool {
	lo, hi := max(k-g, 0), min(k+g, len(mag)-1)
	v := mag[k]
	for i := lo; i < k; i++ {
		if mag[i] >= v {
			return false
		}
	}
	for i := k + 1; i <= hi; i++ {
		if mag[i] > v {
			return false
		}
	}

	return true
}
