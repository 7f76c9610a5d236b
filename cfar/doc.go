// Package cfar implements constant-false-alarm-rate detection on a compressed
// range profile.
//
// 🚀 What does CFAR do?
//
//	A fixed threshold either misses weak targets or fires on every noise
//	burst when the noise floor moves. CFAR estimates the floor locally from
//	training cells around the cell under test (CUT), skipping a guard band
//	that would otherwise leak target energy into the estimate:
//
//	  [ train ×N ][ guard ×G ][ CUT ][ guard ×G ][ train ×N ]
//
//	threshold(k) = α · noise(k),   α = N·(pfa^(−1/N) − 1)
//
// ✨ Modes:
//   - CellAveraging (CA): noise = mean of all 2N training cells
//   - GreatestOf (GO):    max(mean(left), mean(right)); fewer false alarms at clutter edges
//   - SmallestOf (SO):    min(mean(left), mean(right)); resolves closely spaced targets
//
// A CUT is declared only if |s[k]| exceeds the threshold and is the maximum of
// |s| over [k−PeakGuard, k+PeakGuard]. On an exact plateau the leftmost cell
// wins. Only k ∈ [N+G, n−N−G) is evaluated, so edges are never flagged.
//
// ⚙️ Usage:
//
//	opts := cfar.DefaultOptions()
//	opts.PFA = 8e-3
//	hits := cfar.Detect(profile, opts) // ascending indices
//
// Degenerate options or a signal of length ≤ 2(N+G)+1 yield an empty result,
// not an error; Validate exists for callers that want to fail fast.
//
// Complexity: O(n·(NumTrain+PeakGuard)) time, O(n) memory.
package cfar
