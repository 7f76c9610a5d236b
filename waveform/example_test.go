package waveform_test

import (
	"fmt"

	"github.com/katalvlaran/lvradar/waveform"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerateChirp
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A symmetric ±10 MHz sweep (20 MHz bandwidth) lasting 10 µs, sampled at
//	100 MHz and Hann-tapered to lower range sidelobes.
//
// Complexity: O(N) time, O(N) memory
func ExampleGenerateChirp() {
	p, err := waveform.GenerateChirp(-10e6, 20e6, 10e-6, 100e6, waveform.Hanning)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d\nchirp rate=%.0e Hz/s\nwindow=%s\n", p.Len(), p.ChirpRate, p.Window)
	// Output:
	// samples=1000
	// chirp rate=2e+12 Hz/s
	// window=hanning
}

// ExampleParseWindow shows the configuration-error path for an unknown taper.
func ExampleParseWindow() {
	_, err := waveform.ParseWindow("kaiser")
	fmt.Println(err)
	// Output:
	// waveform: unknown window: "kaiser"
}
