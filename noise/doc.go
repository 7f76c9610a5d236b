// Package noise provides the injectable, seedable randomness used by the
// radar channel model: a minimal Source interface, deterministic stream
// derivation for parallel workers, and complex additive white Gaussian noise.
//
// What is it for?
//
//	Every stochastic step in lvradar draws from a Source handed in by the
//	caller. Tests lock exact sample sequences with New(seed); the pulse
//	integrator derives one independent stream per pulse with Derive, so the
//	same seed yields the same integrated profile no matter how many workers
//	run.
//
// Complex noise model:
//
//	n = nI + j·nQ,  nI, nQ ~ N(0, σ/√2)  ⇒  E|n|² = σ²
//
// Usage:
//
//	src := noise.New(42)
//	buf := make([]complex128, 1024)
//	noise.AddComplexGaussian(buf, 3e-7, src)
//
//	// per-worker streams
//	s0 := noise.Derive(42, 0)
//	s1 := noise.Derive(42, 1)
//
// Concurrency:
//
//	*rand.Rand is NOT goroutine-safe. Never share one Source between
//	goroutines; derive a stream per worker instead.
package noise
