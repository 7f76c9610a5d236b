// Package channel models the propagation path of a pulsed radar: it places
// range-delayed, range-attenuated replicas of the transmit pulse into a
// receive record and adds complex white Gaussian noise.
//
// Model:
//
//	N      = ⌊(margin + 2·max(R)/c + M/fs)·fs⌋        record length
//	dᵢ     = ⌊2·Rᵢ/c·fs⌋                               echo start index
//	aᵢ     = ρᵢ·L(Rᵢ)                                  amplitude
//	x[dᵢ+m] += aᵢ·p[m],  m ∈ [0, M)                    superposition
//	x      += n,  n ~ CN(0, σ²)                        thermal noise
//
// The attenuation law L is explicit and configurable (InverseSquare by
// default: amplitude ∝ 1/R², power ∝ 1/R⁴). Echoes whose placement window
// would run past the end of the record are dropped, not clipped and not
// reported as an error; Record.Echoes marks them.
//
// Nothing here holds state between calls: the propagation speed, margin and
// noise source all travel through Options, so concurrent simulations with
// different parameters are safe as long as they do not share a Source.
package channel
