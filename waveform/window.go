package waveform

import "github.com/mjibson/go-dsp/window"

// Taper returns the n-point coefficients of w, or nil for NoWindow.
// Unknown names yield ErrUnknownWindow.
func Taper(w Window, n int) ([]float64, error) {
	win, err := ParseWindow(string(w))
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, nil
	}

	return taper(win, n), nil
}

// taper expects an already parsed Window.
func taper(w Window, n int) []float64 {
	switch w {
	case Hanning:
		return window.Hann(n)
	case Hamming:
		return window.Hamming(n)
	case Blackman:
		return window.Blackman(n)
	default:
		return nil
	}
}

// applyTaper multiplies x elementwise by the real coefficients w.
// A nil taper leaves x untouched.
func applyTaper(x []complex128, w []float64) {
	if w == nil {
		return
	}
	for i := range x {
		x[i] *= complex(w[i], 0)
	}
}
