package cfar_test

import (
	"testing"

	"github.com/katalvlaran/lvradar/cfar"
	"github.com/katalvlaran/lvradar/noise"
)

// BenchmarkDetect_20000 measures one PRI-length profile with default options.
func BenchmarkDetect_20000(b *testing.B) {
	x := noise.ComplexGaussian(20000, 1, noise.New(1))
	opts := cfar.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfar.Detect(x, opts)
	}
}
