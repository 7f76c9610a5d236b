package radar

import (
	"time"

	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/ranging"
	"github.com/katalvlaran/lvradar/waveform"
)

// Result holds every artifact of a Run, read-only for plotting front-ends.
type Result struct {
	Config  Config
	Pulse   *waveform.Pulse
	Targets []channel.Target

	// Time is the fast-time axis shared by Received, SingleProfile and Profile.
	Time []float64

	// Received is the PRI-fitted raw record of the single-pulse preview.
	Received []complex128

	// SingleProfile is the compressed preview line.
	SingleProfile []complex128

	// Profile is the coherently integrated range profile.
	Profile []complex128

	// Detections are ascending CFAR indices into Profile.
	Detections []int

	// Ranges are the estimated target ranges (m), one per surviving detection.
	Ranges []float64

	Assessment ranging.Assessment
	Elapsed    time.Duration
}

// Summary is the condensed, serializable view of a Result.
type Summary struct {
	SampleRate       float64   `yaml:"sample_rate"`
	Bandwidth        float64   `yaml:"bandwidth"`
	PulseSamples     int       `yaml:"pulse_samples"`
	Pulses           int       `yaml:"pulses"`
	PRISamples       int       `yaml:"pri_samples"`
	RangeResolution  float64   `yaml:"range_resolution_m"`
	RangeBin         float64   `yaml:"range_bin_m"`
	UnambiguousRange float64   `yaml:"unambiguous_range_m"`
	Targets          []float64 `yaml:"targets_m"`
	Detections       []int     `yaml:"detections"`
	Ranges           []float64 `yaml:"ranges_m"`

	Assessment ranging.Assessment `yaml:"assessment"`
	Elapsed    string             `yaml:"elapsed"`
}

// Summary condenses r for reporting.
func (r *Result) Summary() Summary {
	return Summary{
		SampleRate:       r.Config.SampleRate,
		Bandwidth:        r.Config.Bandwidth,
		PulseSamples:     r.Pulse.Len(),
		Pulses:           r.Config.NPulses,
		PRISamples:       len(r.Profile),
		RangeResolution:  r.Config.RangeResolution(),
		RangeBin:         r.Config.RangeBin(),
		UnambiguousRange: r.Config.UnambiguousRange(),
		Targets:          channel.Ranges(r.Targets),
		Detections:       r.Detections,
		Ranges:           r.Ranges,
		Assessment:       r.Assessment,
		Elapsed:          r.Elapsed.Round(time.Millisecond).String(),
	}
}
