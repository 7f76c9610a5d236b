package integrate

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/matched"
)

// DefaultPRF is the pulse repetition frequency used when none is given (Hz).
const DefaultPRF = 5e3

// Sentinel errors for integration.
var (
	// ErrInvalidPulseCount is returned when nPulses < 1.
	ErrInvalidPulseCount = errors.New("integrate: pulse count must be >= 1")

	// ErrInvalidPRF is returned when the PRF is not a finite positive number or
	// the resulting PRI holds no samples.
	ErrInvalidPRF = errors.New("integrate: invalid PRF")
)

// Result carries the integrated profile and, optionally, every range line.
type Result struct {
	// Profile is the coherent sum of all compressed lines, len == PRISamples.
	Profile []complex128

	// Matrix holds line i at Matrix[i] when WithKeepMatrix was set; nil otherwise.
	Matrix [][]complex128

	// PRISamples is the fast-time length every line was fitted to.
	PRISamples int

	// Pulses is the number of lines summed.
	Pulses int
}

// Option configures Integrate.
type Option func(*options)

type options struct {
	prf        float64
	priSamples int
	workers    int
	seed       int64
	keepMatrix bool
	onPulse    func(done, total int)
	channel    []channel.Option
	filter     []matched.Option
}

func newOptions(opts ...Option) options {
	o := options{
		prf:     DefaultPRF,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithPRF sets the pulse repetition frequency in Hz. A non-positive value is
// reported by Integrate as ErrInvalidPRF.
func WithPRF(prf float64) Option {
	return func(o *options) {
		o.prf = prf
	}
}

// WithPRISamples fixes the line length directly, overriding WithPRF.
// Panics if n < 1.
func WithPRISamples(n int) Option {
	if n < 1 {
		panic("integrate: WithPRISamples(n<1)")
	}
	return func(o *options) {
		o.priSamples = n
	}
}

// WithWorkers bounds the number of pulses processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("integrate: WithWorkers(n<1)")
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed sets the parent seed; pulse i uses noise.Derive(seed, i).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithKeepMatrix retains every compressed line in Result.Matrix.
func WithKeepMatrix() Option {
	return func(o *options) {
		o.keepMatrix = true
	}
}

// WithOnPulse registers a progress callback, invoked from the calling
// goroutine after each line is accumulated, in ascending order.
func WithOnPulse(fn func(done, total int)) Option {
	return func(o *options) {
		o.onPulse = fn
	}
}

// WithChannelOptions forwards options to every channel.Simulate call.
// Any noise source among them is superseded by the per-pulse stream.
func WithChannelOptions(opts ...channel.Option) Option {
	return func(o *options) {
		o.channel = append(o.channel, opts...)
	}
}

// WithFilterOptions forwards options to every matched.Compress call.
func WithFilterOptions(opts ...matched.Option) Option {
	return func(o *options) {
		o.filter = append(o.filter, opts...)
	}
}
