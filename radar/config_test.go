package radar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvradar/cfar"
	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/integrate"
	"github.com/katalvlaran/lvradar/matched"
	"github.com/katalvlaran/lvradar/radar"
	"github.com/katalvlaran/lvradar/waveform"
)

func TestDefaultConfig_Derived(t *testing.T) {
	cfg := radar.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, -10e6, cfg.StartFreq)
	assert.Equal(t, 128, cfg.NPulses)
	assert.Equal(t, waveform.Hanning, cfg.Window)
	assert.Equal(t, 8e-3, cfg.CFAR.PFA)
	assert.Equal(t, 1, cfg.CFAR.PeakGuard)

	assert.InDelta(t, 200e-6, cfg.PRI(), 1e-18)
	assert.Equal(t, 20000, cfg.PRISamples())
	assert.Equal(t, 1000, cfg.PulseSamples())
	assert.InDelta(t, 7.5, cfg.RangeResolution(), 1e-12)
	assert.InDelta(t, 30000, cfg.UnambiguousRange(), 1e-9)
	assert.InDelta(t, 1.5, cfg.RangeBin(), 1e-12)
}

// TestConfig_Validate checks that every failure is a configuration error and,
// where a package owns the check, also carries that package's sentinel.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*radar.Config)
		also   error
	}{
		{"zero sample rate", func(c *radar.Config) { c.SampleRate = 0 }, nil},
		{"inf sample rate", func(c *radar.Config) { c.SampleRate = math.Inf(1) }, nil},
		{"negative bandwidth", func(c *radar.Config) { c.Bandwidth = -1 }, nil},
		{"zero duration", func(c *radar.Config) { c.PulseDuration = 0 }, nil},
		{"nan start", func(c *radar.Config) { c.StartFreq = math.NaN() }, nil},
		{"unknown window", func(c *radar.Config) { c.Window = "kaiser" }, waveform.ErrUnknownWindow},
		{"no pulses", func(c *radar.Config) { c.NPulses = 0 }, integrate.ErrInvalidPulseCount},
		{"zero prf", func(c *radar.Config) { c.PRF = 0 }, integrate.ErrInvalidPRF},
		{"pri shorter than pulse", func(c *radar.Config) { c.PRF = 200e3 }, integrate.ErrInvalidPRF},
		{"negative noise", func(c *radar.Config) { c.NoiseStd = -1 }, nil},
		{"zero speed", func(c *radar.Config) { c.PropagationSpeed = 0 }, nil},
		{"negative margin", func(c *radar.Config) { c.Margin = -1e-6 }, nil},
		{"unknown law", func(c *radar.Config) { c.Attenuation = "free_space" }, channel.ErrUnknownAttenuation},
		{"unknown engine", func(c *radar.Config) { c.FilterMethod = "winograd" }, matched.ErrUnknownMethod},
		{"pfa one", func(c *radar.Config) { c.CFAR.PFA = 1 }, cfar.ErrInvalidPFA},
		{"no training", func(c *radar.Config) { c.CFAR.NumTrain = 0 }, cfar.ErrInvalidTraining},
		{"negative workers", func(c *radar.Config) { c.Workers = -2 }, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := radar.DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, radar.ErrConfiguration)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}

			sim, err := radar.New(cfg)
			assert.Nil(t, sim)
			assert.ErrorIs(t, err, radar.ErrConfiguration)
		})
	}

	// empty names select the defaults
	cfg := radar.DefaultConfig()
	cfg.Window, cfg.Attenuation, cfg.FilterMethod = "", "", ""
	assert.NoError(t, cfg.Validate())
}
