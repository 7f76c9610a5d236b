package matched_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/matched"
	"github.com/katalvlaran/lvradar/noise"
	"github.com/katalvlaran/lvradar/waveform"
)

const fs = 100e6

func chirp(t testing.TB, w waveform.Window) []complex128 {
	t.Helper()
	p, err := waveform.GenerateChirp(-10e6, 20e6, 10e-6, fs, w)
	require.NoError(t, err)

	return p.Samples
}

func argmaxAbs(x []complex128) int {
	best, idx := -1.0, -1
	for i, v := range x {
		if a := cmplx.Abs(v); a > best {
			best, idx = a, i
		}
	}

	return idx
}

// TestCompress_SmallCases pins the "same" window on hand-computed inputs.
func TestCompress_SmallCases(t *testing.T) {
	tests := []struct {
		name string
		x, p []complex128
		want []complex128
	}{
		{
			name: "even pulse",
			x:    []complex128{1, 2, 3},
			p:    []complex128{1, 1},
			want: []complex128{1, 3, 5},
		},
		{
			name: "odd pulse",
			x:    []complex128{1, 2, 3},
			p:    []complex128{1, 0, 0},
			want: []complex128{0, 1, 2},
		},
		{
			name: "conjugation",
			x:    []complex128{1i},
			p:    []complex128{1i},
			want: []complex128{1},
		},
	}
	for _, tc := range tests {
		for _, method := range []matched.Method{matched.Direct, matched.FFT} {
			t.Run(tc.name+"/"+method.String(), func(t *testing.T) {
				got, err := matched.Compress(tc.x, tc.p, matched.WithoutNormalization(), matched.WithMethod(method))
				require.NoError(t, err)
				require.Len(t, got, len(tc.want))
				for i := range tc.want {
					assert.InDelta(t, 0, cmplx.Abs(got[i]-tc.want[i]), 1e-12, "index %d", i)
				}
			})
		}
	}
}

// TestCompress_Autocorrelation checks that an energy-normalised matched echo
// at zero delay peaks at exactly 1 at the group-delay index.
func TestCompress_Autocorrelation(t *testing.T) {
	for _, w := range []waveform.Window{waveform.NoWindow, waveform.Hanning, waveform.Blackman} {
		t.Run(w.String(), func(t *testing.T) {
			p := chirp(t, w)
			out, err := matched.Compress(p, p)
			require.NoError(t, err)
			require.Len(t, out, len(p))

			k := argmaxAbs(out)
			assert.Equal(t, matched.GroupDelay(len(p)), k)
			assert.InDelta(t, 1.0, real(out[k]), 1e-9)
			assert.InDelta(t, 0.0, imag(out[k]), 1e-9)
		})
	}
}

// TestCompress_GroupDelay checks that an echo starting at d peaks at
// d + ⌊M/2⌋ in a longer record.
func TestCompress_GroupDelay(t *testing.T) {
	p := chirp(t, waveform.Hanning)
	rec, err := channel.Simulate(p, fs, channel.Targets(1700), 0, channel.WithAttenuation(channel.Unity))
	require.NoError(t, err)

	out, err := matched.Compress(rec.Samples, p)
	require.NoError(t, err)
	require.Len(t, out, rec.Len())

	d := rec.Echoes[0].DelaySamples
	assert.Equal(t, d+matched.GroupDelay(len(p)), argmaxAbs(out))
	assert.InDelta(t, 1.0, cmplx.Abs(out[d+len(p)/2]), 1e-9)
}

// TestCompress_EnginesAgree compares FFT and Direct on a noisy multi-target record.
func TestCompress_EnginesAgree(t *testing.T) {
	p := chirp(t, waveform.Hamming)
	rec, err := channel.Simulate(p, fs, channel.Targets(900, 1300), 0.5,
		channel.WithAttenuation(channel.Unity), channel.WithSeed(4))
	require.NoError(t, err)

	a, err := matched.Compress(rec.Samples, p, matched.WithMethod(matched.FFT))
	require.NoError(t, err)
	b, err := matched.Compress(rec.Samples, p, matched.WithMethod(matched.Direct))
	require.NoError(t, err)
	require.Len(t, a, len(b))
	for i := range a {
		require.InDelta(t, 0, cmplx.Abs(a[i]-b[i]), 1e-9, "index %d", i)
	}

	// a pulse longer than the record still yields len(received) samples.
	short := rec.Samples[:300]
	a, err = matched.Compress(short, p)
	require.NoError(t, err)
	b, err = matched.Compress(short, p, matched.WithMethod(matched.Direct))
	require.NoError(t, err)
	require.Len(t, a, 300)
	for i := range a {
		require.InDelta(t, 0, cmplx.Abs(a[i]-b[i]), 1e-9, "short index %d", i)
	}
}

// TestCompress_ExactZeros checks that the FFT engine leaves every index no
// echo can reach at exactly zero, like Direct, so a padded record carries no
// roundoff floor.
func TestCompress_ExactZeros(t *testing.T) {
	p := chirp(t, waveform.Hanning)
	rec, err := channel.Simulate(p, fs, channel.Targets(1700), 0,
		channel.WithAttenuation(channel.Unity), channel.WithRecordLength(8000))
	require.NoError(t, err)

	a, err := matched.Compress(rec.Samples, p, matched.WithMethod(matched.FFT))
	require.NoError(t, err)
	b, err := matched.Compress(rec.Samples, p, matched.WithMethod(matched.Direct))
	require.NoError(t, err)

	zeros := 0
	for i := range b {
		if b[i] == 0 {
			zeros++
			require.Zero(t, a[i], "index %d must be exactly zero", i)
		}
	}
	assert.Greater(t, zeros, 5000, "head and padded tail are echo-free")
	assert.Zero(t, a[0])
	assert.Zero(t, a[len(a)-1])
	assert.Equal(t, rec.Echoes[0].DelaySamples+matched.GroupDelay(len(p)), argmaxAbs(a))

	// all-zero input stays all zero
	silent, err := matched.Compress(make([]complex128, 64), p)
	require.NoError(t, err)
	assert.Equal(t, make([]complex128, 64), silent)
}

// TestCompress_Normalization checks the unnormalised peak equals Σ|p|².
func TestCompress_Normalization(t *testing.T) {
	p := chirp(t, waveform.Hanning)
	raw, err := matched.Compress(p, p, matched.WithNormalization(false))
	require.NoError(t, err)
	k := matched.GroupDelay(len(p))
	assert.InDelta(t, waveform.Energy(p), real(raw[k]), 1e-6)
}

// TestCompress_ProcessingGain verifies the white-noise contract: a
// unit-magnitude pulse of length M reduces output noise power to σ²/M
// (normalised filter), i.e. an SNR gain of M.
func TestCompress_ProcessingGain(t *testing.T) {
	p := chirp(t, waveform.NoWindow)
	const sigma = 1.0
	x := noise.ComplexGaussian(20000, sigma, noise.New(21))

	out, err := matched.Compress(x, p)
	require.NoError(t, err)

	pw := make([]float64, 0, len(out)-2*len(p))
	for _, v := range out[len(p) : len(out)-len(p)] {
		pw = append(pw, real(v)*real(v)+imag(v)*imag(v))
	}
	want := sigma * sigma / float64(len(p))
	assert.InEpsilon(t, want, stat.Mean(pw, nil), 0.15)
}

// TestCompress_Errors verifies sentinel classification and read-only inputs.
func TestCompress_Errors(t *testing.T) {
	_, err := matched.Compress(nil, []complex128{1})
	assert.ErrorIs(t, err, matched.ErrEmptyInput)
	_, err = matched.Compress([]complex128{1}, nil)
	assert.ErrorIs(t, err, matched.ErrEmptyInput)
	_, err = matched.Compress([]complex128{1, 2}, []complex128{0, 0})
	assert.ErrorIs(t, err, matched.ErrZeroEnergy)

	x := []complex128{1, 2, 3}
	p := []complex128{1i, 2}
	_, err = matched.Compress(x, p)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2, 3}, x, "received must not be modified")
	assert.Equal(t, []complex128{1i, 2}, p, "pulse must not be modified")

	assert.Equal(t, []complex128{2, -1i}, matched.Kernel(p))
	assert.Equal(t, 0, matched.GroupDelay(-3))
	assert.Panics(t, func() { matched.WithMethod(matched.Method(9)) })
}

// TestParseMethod covers the configuration names of both engines.
func TestParseMethod(t *testing.T) {
	for _, m := range []matched.Method{matched.FFT, matched.Direct} {
		got, err := matched.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	def, err := matched.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, matched.FFT, def)

	_, err = matched.ParseMethod("winograd")
	assert.ErrorIs(t, err, matched.ErrUnknownMethod)
	assert.Equal(t, "unknown", matched.Method(7).String())
}
