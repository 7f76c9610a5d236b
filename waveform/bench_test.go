package waveform_test

import (
	"testing"

	"github.com/katalvlaran/lvradar/waveform"
)

// BenchmarkGenerateChirp_Hann measures the reference 1000-sample tapered chirp.
func BenchmarkGenerateChirp_Hann(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := waveform.GenerateChirp(-10e6, 20e6, 10e-6, 100e6, waveform.Hanning); err != nil {
			b.Fatalf("GenerateChirp failed: %v", err)
		}
	}
}
