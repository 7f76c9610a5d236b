package ranging

import "math"

// SpeedOfLight is the default propagation speed in m/s.
const SpeedOfLight = 3e8

// Option configures ToRange.
type Option func(*config)

type config struct {
	speed float64
}

// WithPropagationSpeed overrides c (m/s). Panics if c <= 0.
func WithPropagationSpeed(c float64) Option {
	if !(c > 0) {
		panic("ranging: WithPropagationSpeed(c<=0)")
	}
	return func(cfg *config) {
		cfg.speed = c
	}
}

// ToRange converts ascending detection indices into ranges in metres.
// Returns an empty slice when sampleRate is not positive.
func ToRange(indices []int, sampleRate float64, pulseLen int, opts ...Option) []float64 {
	cfg := config{speed: SpeedOfLight}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, 0, len(indices))
	if !(sampleRate > 0) {
		return out
	}

	offset := pulseLen / 2
	for _, k := range indices {
		corrected := k - offset
		if corrected < 0 {
			continue
		}
		out = append(out, float64(corrected)/sampleRate*cfg.speed/2)
	}

	return out
}

// Bin returns the range extent of one sample, c/(2·fs).
func Bin(sampleRate, c float64) float64 {
	if !(sampleRate > 0) || !(c > 0) {
		return math.NaN()
	}

	return c / (2 * sampleRate)
}

// IndexForRange is the inverse of ToRange: the profile index at which an echo
// from rangeM is expected to peak, round(2R·fs/c) + ⌊M/2⌋.
// It returns -1 for unusable input: fs or c not positive, a negative or
// non-finite range, or pulseLen < 0.
func IndexForRange(rangeM, sampleRate float64, pulseLen int, c float64) int {
	if !(sampleRate > 0) || !(c > 0) || !(rangeM >= 0) || math.IsInf(sampleRate, 0) || math.IsInf(rangeM, 0) || pulseLen < 0 {
		return -1
	}

	return int(math.Round(2*rangeM*sampleRate/c)) + pulseLen/2
}
