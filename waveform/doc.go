// Package waveform synthesizes the transmit pulses of the radar chain:
// complex-baseband linear-FM chirps and the legacy constant-frequency tone,
// with optional real-valued tapers.
//
// 🚀 What is an LFM chirp?
//
//	A pulse whose instantaneous frequency sweeps linearly over its duration.
//	After matched filtering, a chirp of bandwidth B compresses to a response
//	roughly 1/B wide, so long (high-energy) pulses still resolve closely
//	spaced targets.
//
//	phase(t) = 2π·(f0·t + ½·k·t²),  k = ±B/T
//	pulse(t) = w(t)·exp(j·phase(t)),  t = 0, 1/fs, 2/fs, ... < T
//
// ✨ Key features:
//   - half-open time axis [0, T) that fixes the sample count exactly
//   - up- or down-chirp (WithDownChirp)
//   - Hann / Hamming / Blackman tapers (symmetric, N−1 denominator)
//   - no implicit energy normalisation; the matched filter owns that step
//
// ⚙️ Usage:
//
//	p, err := waveform.GenerateChirp(-10e6, 20e6, 10e-6, 100e6, waveform.Hanning)
//	if err != nil {
//	  // ErrInvalidParameter, ErrUnknownWindow or ErrEmptyPulse
//	}
//	fmt.Println(p.Len()) // 1000
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N) for samples + O(N) for the time axis
package waveform
