// Package integrate performs coherent multi-pulse integration: it repeats the
// channel → fit-to-PRI → matched-filter chain once per transmitted pulse, each
// with an independent noise realization, and sums the compressed range lines.
//
// 🚀 Why integrate?
//
//	A stationary, phase-coherent target adds in amplitude across pulses while
//	independent noise adds in power, so summing n lines raises the peak SNR by
//	≈ n (≈ 10·log10(n) dB) before detection.
//
// ✨ Key features:
//   - every raw record is zero-padded or truncated to exactly one PRI
//     (round(fs/PRF) samples) so lines align sample-for-sample
//   - pulse i always draws from noise.Derive(seed, i), whichever worker runs it
//   - lines are summed in ascending pulse order; the profile is bit-identical
//     for 1 or 64 workers
//   - bounded worker pool (golang.org/x/sync/errgroup); the context cancels
//     pending pulses
//   - optional slow-time × fast-time matrix (WithKeepMatrix) and progress hook
//
// ⚙️ Usage:
//
//	res, err := integrate.Integrate(ctx, pulse.Samples, 100e6, targets, 3e-7, 128,
//	  integrate.WithPRF(5e3), integrate.WithSeed(42))
//	if err != nil {
//	  // ErrInvalidPulseCount, ErrInvalidPRF, channel/matched errors or ctx.Err()
//	}
//	_ = res.Profile // len == res.PRISamples
//
// Performance:
//
//   - Time:   O(n · P·log P) with the FFT engine, P = PRI samples
//   - Memory: O(P · batch) live lines; O(P · n) with WithKeepMatrix
package integrate
