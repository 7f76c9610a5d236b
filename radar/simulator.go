// SPDX-License-Identifier: MIT
// Package: lvradar/radar
//
// simulator.go - the end-to-end pipeline.
//
// Stream layout for Config.Seed:
//   - pulses 0..NPulses−1 of the integration use noise.Derive(seed, i);
//   - the single-pulse preview uses noise.Derive(seed, previewStream).

package radar

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvradar/cfar"
	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/integrate"
	"github.com/katalvlaran/lvradar/matched"
	"github.com/katalvlaran/lvradar/noise"
	"github.com/katalvlaran/lvradar/ranging"
	"github.com/katalvlaran/lvradar/waveform"
)

// previewStream is the noise stream of ProcessSinglePulse in Run.
const previewStream uint64 = math.MaxUint64

// progressEvery is the pulse interval between progress log lines.
const progressEvery = 32

// Simulator runs target scenarios against one validated Config.
// It is safe for concurrent use.
type Simulator struct {
	cfg    Config
	log    logrus.FieldLogger
	pulse  *waveform.Pulse
	law    channel.Attenuation
	method matched.Method
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger routes pipeline logs to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// New validates cfg and synthesizes the transmit pulse.
//
// Errors: anything Config.Validate reports.
func New(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)
	s := &Simulator{cfg: cfg, log: silent}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	// Validate already accepted these names.
	s.law, _ = channel.ParseAttenuation(cfg.Attenuation)
	s.method, _ = matched.ParseMethod(cfg.FilterMethod)

	var wopts []waveform.Option
	if cfg.DownChirp {
		wopts = append(wopts, waveform.WithDownChirp())
	}
	p, err := waveform.GenerateChirp(cfg.StartFreq, cfg.Bandwidth, cfg.PulseDuration, cfg.SampleRate, cfg.Window, wopts...)
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrConfiguration, err)
	}
	s.pulse = p

	s.log.WithFields(logrus.Fields{
		"samples":          p.Len(),
		"chirp_rate":       p.ChirpRate,
		"window":           p.Window,
		"range_resolution": cfg.RangeResolution(),
		"unambiguous":      cfg.UnambiguousRange(),
		"pri_samples":      cfg.PRISamples(),
	}).Debug("radar configured")

	return s, nil
}

// Config returns the validated configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Pulse returns a copy of the transmit pulse.
func (s *Simulator) Pulse() *waveform.Pulse {
	return s.pulse.Clone()
}

// PulseResult is one transmit → receive → compress cycle.
type PulseResult struct {
	// Received is the raw record fitted to one PRI.
	Received []complex128

	// Profile is the compressed range line, len == len(Received).
	Profile []complex128

	// Time is the fast-time axis k/fs of Received and Profile.
	Time []float64

	// Echoes reports where each target landed in the raw record.
	Echoes []channel.Echo
}

// ProcessSinglePulse simulates one reception with noise from src (nil means
// noise.New(Config.Seed)), fits it to one PRI and compresses it.
func (s *Simulator) ProcessSinglePulse(targets []channel.Target, src noise.Source) (*PulseResult, error) {
	if src == nil {
		src = noise.New(s.cfg.Seed)
	}

	rec, err := channel.Simulate(s.pulse.Samples, s.cfg.SampleRate, targets, s.cfg.NoiseStd,
		append(s.channelOptions(), channel.WithSource(src))...)
	if err != nil {
		return nil, fmt.Errorf("ProcessSinglePulse: %w", err)
	}

	pri := s.cfg.PRISamples()
	received := integrate.FitLength(rec.Samples, pri)
	profile, err := matched.Compress(received, s.pulse.Samples, matched.WithMethod(s.method))
	if err != nil {
		return nil, fmt.Errorf("ProcessSinglePulse: %w", err)
	}

	return &PulseResult{
		Received: received,
		Profile:  profile,
		Time:     s.TimeAxis(),
		Echoes:   rec.Echoes,
	}, nil
}

// Integrate coherently sums Config.NPulses compressed lines.
func (s *Simulator) Integrate(ctx context.Context, targets []channel.Target) (*integrate.Result, error) {
	opts := []integrate.Option{
		integrate.WithPRF(s.cfg.PRF),
		integrate.WithSeed(s.cfg.Seed),
		integrate.WithChannelOptions(s.channelOptions()...),
		integrate.WithFilterOptions(matched.WithMethod(s.method)),
		integrate.WithOnPulse(func(done, total int) {
			if done%progressEvery == 0 || done == total {
				s.log.WithFields(logrus.Fields{"done": done, "total": total}).Debug("integrating")
			}
		}),
	}
	if s.cfg.Workers > 0 {
		opts = append(opts, integrate.WithWorkers(s.cfg.Workers))
	}

	res, err := integrate.Integrate(ctx, s.pulse.Samples, s.cfg.SampleRate, targets, s.cfg.NoiseStd, s.cfg.NPulses, opts...)
	if err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}

	return res, nil
}

// Detect runs CFAR on profile and converts the hits to ranges.
func (s *Simulator) Detect(profile []complex128) (indices []int, ranges []float64) {
	indices = cfar.Detect(profile, s.cfg.CFAR)
	ranges = ranging.ToRange(indices, s.cfg.SampleRate, s.pulse.Len(),
		ranging.WithPropagationSpeed(s.cfg.PropagationSpeed))

	return indices, ranges
}

// TimeAxis returns k/fs for k ∈ [0, PRISamples).
func (s *Simulator) TimeAxis() []float64 {
	t := make([]float64, s.cfg.PRISamples())
	for k := range t {
		t[k] = float64(k) / s.cfg.SampleRate
	}

	return t
}

// Run executes the full chain for targets: a single-pulse preview, coherent
// integration, detection, ranging and assessment against the true ranges
// (gate = RangeResolution).
func (s *Simulator) Run(ctx context.Context, targets []channel.Target) (*Result, error) {
	start := time.Now()
	log := s.log.WithField("targets", len(targets))

	single, err := s.ProcessSinglePulse(targets, noise.Derive(s.cfg.Seed, previewStream))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for _, e := range single.Echoes {
		if e.Dropped {
			log.WithField("range", e.Target.Range).Warn("echo does not fit the record and was dropped")
		}
	}

	integrated, err := s.Integrate(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	indices, ranges := s.Detect(integrated.Profile)
	truth := channel.Ranges(targets)
	assessment := ranging.Assess(truth, ranges, s.cfg.RangeResolution())

	res := &Result{
		Config:        s.cfg,
		Pulse:         s.Pulse(),
		Targets:       append([]channel.Target(nil), targets...),
		Time:          single.Time,
		Received:      single.Received,
		SingleProfile: single.Profile,
		Profile:       integrated.Profile,
		Detections:    indices,
		Ranges:        ranges,
		Assessment:    assessment,
		Elapsed:       time.Since(start),
	}

	fields := logrus.Fields{
		"detections": len(indices),
		"elapsed":    res.Elapsed,
	}
	if len(ranges) != len(truth) {
		log.WithFields(fields).Warnf("detected %d targets, expected %d", len(ranges), len(truth))
	} else {
		log.WithFields(fields).WithField("rms_error", assessment.RMSError).Info("run complete")
	}

	return res, nil
}

func (s *Simulator) channelOptions() []channel.Option {
	return []channel.Option{
		channel.WithPropagationSpeed(s.cfg.PropagationSpeed),
		channel.WithMargin(s.cfg.Margin),
		channel.WithAttenuation(s.law),
	}
}
