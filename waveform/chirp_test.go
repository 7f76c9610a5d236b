package waveform_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvradar/waveform"
)

const (
	fs  = 100e6 // 100 MHz
	bw  = 20e6  // 20 MHz sweep
	dur = 10e-6 // 10 µs
)

// TestGenerateChirp_HalfOpenAxis locks N = duration·fs for the reference
// configuration and checks the time-axis spacing.
func TestGenerateChirp_HalfOpenAxis(t *testing.T) {
	p, err := waveform.GenerateChirp(-bw/2, bw, dur, fs, waveform.NoWindow)
	require.NoError(t, err)
	require.Equal(t, 1000, p.Len(), "half-open [0,T) axis must hold exactly T·fs samples")
	require.Len(t, p.Time, 1000)

	assert.Equal(t, 0.0, p.Time[0])
	assert.InDelta(t, 999/fs, p.Time[999], 1e-18)
	assert.Less(t, p.Time[len(p.Time)-1], dur)
	assert.InEpsilon(t, bw/dur, p.ChirpRate, 1e-12)
	assert.Equal(t, waveform.NoWindow, p.Window)
}

// TestGenerateChirp_NonIntegerAxis covers a duration that is not a whole
// number of samples: ceil(T·fs) samples, all strictly before T.
func TestGenerateChirp_NonIntegerAxis(t *testing.T) {
	p, err := waveform.GenerateChirp(0, 1e6, 10.5e-6, 1e6, waveform.NoWindow)
	require.NoError(t, err)
	assert.Equal(t, 11, p.Len())
	assert.Equal(t, 11, waveform.SampleCount(10.5e-6, 1e6))
	assert.Equal(t, 0, waveform.SampleCount(-1, 1e6))
}

// TestGenerateChirp_UnitMagnitude checks the untapered envelope is exactly
// unit magnitude and that Energy equals N.
func TestGenerateChirp_UnitMagnitude(t *testing.T) {
	p, err := waveform.GenerateChirp(-bw/2, bw, dur, fs, waveform.NoWindow)
	require.NoError(t, err)
	for i, v := range p.Samples {
		require.InDelta(t, 1.0, cmplx.Abs(v), 1e-12, "sample %d", i)
	}
	assert.InDelta(t, float64(p.Len()), p.Energy(), 1e-9)
}

// TestGenerateChirp_InstantaneousFrequency recovers f(t) = f0 + k·t from the
// phase increment between neighbouring samples.
func TestGenerateChirp_InstantaneousFrequency(t *testing.T) {
	tests := []struct {
		name string
		opts []waveform.Option
		sign float64
	}{
		{"up", nil, 1},
		{"down", []waveform.Option{waveform.WithDownChirp()}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := waveform.GenerateChirp(0, bw, dur, fs, waveform.NoWindow, tc.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tc.sign*bw/dur, p.ChirpRate, 1e-6)

			for _, i := range []int{10, 250, 500, 900} {
				dphi := cmplx.Phase(p.Samples[i+1] * cmplx.Conj(p.Samples[i]))
				got := dphi * fs / (2 * math.Pi)
				mid := (float64(i) + 0.5) / fs
				want := tc.sign * bw / dur * mid
				assert.InDelta(t, want, got, 1e3, "f(t) at sample %d", i)
			}
		})
	}
}

// TestGenerateChirp_Windows checks taper endpoints and that the taper only
// touches magnitude.
func TestGenerateChirp_Windows(t *testing.T) {
	tests := []struct {
		w        waveform.Window
		endpoint float64
	}{
		{waveform.Hanning, 0},
		{waveform.Hamming, 0.08},
		{waveform.Blackman, 0},
	}
	for _, tc := range tests {
		t.Run(tc.w.String(), func(t *testing.T) {
			p, err := waveform.GenerateChirp(-bw/2, bw, dur, fs, tc.w)
			require.NoError(t, err)
			n := p.Len()
			assert.InDelta(t, tc.endpoint, cmplx.Abs(p.Samples[0]), 1e-9)
			assert.InDelta(t, tc.endpoint, cmplx.Abs(p.Samples[n-1]), 1e-9)
			assert.InDelta(t, cmplx.Abs(p.Samples[10]), cmplx.Abs(p.Samples[n-11]), 1e-9, "taper must be symmetric")
			assert.Less(t, p.Energy(), float64(n), "tapering removes energy")

			w, err := waveform.Taper(tc.w, n)
			require.NoError(t, err)
			assert.InDelta(t, w[n/3], cmplx.Abs(p.Samples[n/3]), 1e-12)
		})
	}
}

// TestGenerateChirp_Errors verifies the sentinel classification of bad input.
func TestGenerateChirp_Errors(t *testing.T) {
	_, err := waveform.GenerateChirp(0, bw, dur, fs, waveform.Window("kaiser"))
	assert.ErrorIs(t, err, waveform.ErrUnknownWindow)

	_, err = waveform.GenerateChirp(0, bw, 0, fs, waveform.Hanning)
	assert.ErrorIs(t, err, waveform.ErrInvalidParameter)

	_, err = waveform.GenerateChirp(0, bw, dur, -1, waveform.Hanning)
	assert.ErrorIs(t, err, waveform.ErrInvalidParameter)

	_, err = waveform.GenerateChirp(0, -bw, dur, fs, waveform.Hanning)
	assert.ErrorIs(t, err, waveform.ErrInvalidParameter)

	_, err = waveform.GenerateChirp(math.NaN(), bw, dur, fs, waveform.Hanning)
	assert.ErrorIs(t, err, waveform.ErrInvalidParameter)

	// T·fs within the axis tolerance of zero holds no sample.
	_, err = waveform.GenerateChirp(0, bw, 1e-18, fs, waveform.Hanning)
	assert.ErrorIs(t, err, waveform.ErrEmptyPulse)

	// any larger fraction of a sample still holds t=0.
	p, err := waveform.GenerateChirp(0, bw, 1e-15, fs, waveform.NoWindow)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
}

// TestParseWindow covers names, aliases and case folding.
func TestParseWindow(t *testing.T) {
	for in, want := range map[string]waveform.Window{
		"":         waveform.NoWindow,
		"none":     waveform.NoWindow,
		"Hanning":  waveform.Hanning,
		"hann":     waveform.Hanning,
		"HAMMING":  waveform.Hamming,
		"blackman": waveform.Blackman,
	} {
		got, err := waveform.ParseWindow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := waveform.ParseWindow("bartlett")
	assert.ErrorIs(t, err, waveform.ErrUnknownWindow)

	w, err := waveform.Taper(waveform.NoWindow, 8)
	assert.NoError(t, err)
	assert.Nil(t, w)
}

// TestGenerateChirp_Amplitude checks WithAmplitude scaling and its panic guard.
func TestGenerateChirp_Amplitude(t *testing.T) {
	p, err := waveform.GenerateChirp(0, bw, dur, fs, waveform.NoWindow, waveform.WithAmplitude(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cmplx.Abs(p.Samples[17]), 1e-12)
	assert.InDelta(t, 4*float64(p.Len()), p.Energy(), 1e-8)

	assert.Panics(t, func() { waveform.WithAmplitude(0) })
}

// TestGenerateTone checks the legacy CW pulse.
func TestGenerateTone(t *testing.T) {
	p, err := waveform.GenerateTone(5e3, 0.1e-3, 1e6, math.Pi/4)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Len())
	assert.InDelta(t, math.Pi/4, cmplx.Phase(p.Samples[0]), 1e-12)
	assert.Zero(t, p.Bandwidth)
	assert.Zero(t, p.ChirpRate)

	dphi := cmplx.Phase(p.Samples[2] * cmplx.Conj(p.Samples[1]))
	assert.InDelta(t, 2*math.Pi*5e3/1e6, dphi, 1e-12)

	_, err = waveform.GenerateTone(math.Inf(1), 1e-4, 1e6, 0)
	assert.ErrorIs(t, err, waveform.ErrInvalidParameter)
}

// TestPulse_Clone verifies that Clone is deep and nil-safe.
func TestPulse_Clone(t *testing.T) {
	p, err := waveform.GenerateChirp(0, bw, dur, fs, waveform.Hanning)
	require.NoError(t, err)
	c := p.Clone()
	c.Samples[5] = 42
	assert.NotEqual(t, c.Samples[5], p.Samples[5])

	var nilPulse *waveform.Pulse
	assert.Nil(t, nilPulse.Clone())
	assert.Zero(t, nilPulse.Len())
	assert.Zero(t, nilPulse.Energy())
}
