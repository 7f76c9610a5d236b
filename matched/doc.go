// Package matched implements pulse compression: correlation of a received
// record against the transmitted pulse through its matched filter
// h[m] = conj(p[M−1−m]).
//
// 🚀 Why a matched filter?
//
//	Under additive white Gaussian noise, the linear filter that maximizes
//	output SNR at the echo position is the time-reversed complex conjugate
//	of the transmitted pulse. For an LFM chirp it also compresses the long
//	pulse into a narrow peak of width ≈ 1/B.
//
// ✨ Semantics:
//   - "same"-length output: len(out) == len(received); index k maps to the
//     full convolution index k + ⌊(M−1)/2⌋.
//   - optional energy normalisation by Σ|p|² (on by default) so that a
//     unit-amplitude matched echo peaks at 1.
//   - group delay: an echo starting at index d peaks at d + ⌊M/2⌋
//     (GroupDelay); range conversion must subtract it first.
//
// ⚙️ Engines:
//   - FFT (default): zero-pad both operands to the next power of two
//     ≥ N+M−1 and multiply spectra with github.com/mjibson/go-dsp/fft.
//     Indices outside the support of the nonzero inputs are exactly zero.
//   - Direct: O(N·M) time-domain sum; the reference the FFT engine is tested against.
//
// Usage:
//
//	profile, err := matched.Compress(rec.Samples, pulse.Samples)
//	peak := d + matched.GroupDelay(len(pulse.Samples))
package matched
