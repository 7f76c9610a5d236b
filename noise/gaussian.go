package noise

import "math"

// AddComplexGaussian adds complex white Gaussian noise of total power std²
// to dst in place. The in-phase and quadrature components are independent,
// each with standard deviation std/√2.
//
// Policy:
//   - std <= 0 (or NaN) is a no-op; dst is left untouched and src is not consumed.
//   - If src is nil, New(0) is used (deterministic default stream).
//
// Draw order is I then Q for each sample, ascending index; tests rely on it.
//
// Complexity: O(len(dst)) time, O(1) extra space.
func AddComplexGaussian(dst []complex128, std float64, src Source) {
	if !(std > 0) || len(dst) == 0 {
		return
	}
	if src == nil {
		src = New(0)
	}

	sigma := std / math.Sqrt2

	var re, im float64
	for i := range dst {
		re = sigma * src.NormFloat64()
		im = sigma * src.NormFloat64()
		dst[i] += complex(re, im)
	}
}

// ComplexGaussian returns a fresh length-n buffer of complex Gaussian noise.
// It is a convenience for noise-only trials (false-alarm studies).
//
// Complexity: O(n).
func ComplexGaussian(n int, std float64, src Source) []complex128 {
	if n <= 0 {
		return nil
	}
	out := make([]complex128, n)
	AddComplexGaussian(out, std, src)

	return out
}
