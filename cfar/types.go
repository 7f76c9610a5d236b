package cfar

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate and ParseMode.
var (
	// ErrInvalidTraining indicates NumTrain < 1.
	ErrInvalidTraining = errors.New("cfar: num_train must be >= 1")

	// ErrInvalidGuard indicates NumGuard < 0 or PeakGuard < 0.
	ErrInvalidGuard = errors.New("cfar: guard cells must be >= 0")

	// ErrInvalidPFA indicates a probability of false alarm outside (0, 1).
	ErrInvalidPFA = errors.New("cfar: pfa must be in (0, 1)")

	// ErrUnknownMode indicates an unsupported noise estimator.
	ErrUnknownMode = errors.New("cfar: unknown mode")
)

// Mode selects how the training cells are combined into a noise estimate.
type Mode int

const (
	// CellAveraging averages all 2·NumTrain training cells.
	CellAveraging Mode = iota

	// GreatestOf takes the larger of the left and right training means.
	GreatestOf

	// SmallestOf takes the smaller of the left and right training means.
	SmallestOf
)

var modeNames = map[Mode]string{
	CellAveraging: "ca",
	GreatestOf:    "go",
	SmallestOf:    "so",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return "unknown"
}

// ParseMode maps "ca" (or ""), "go" and "so" to a Mode.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return CellAveraging, nil
	}
	for m, s := range modeNames {
		if s == name {
			return m, nil
		}
	}

	return CellAveraging, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Options holds the detector parameters.
type Options struct {
	// NumTrain is the number of training cells on each side of the CUT.
	NumTrain int `mapstructure:"num_train" yaml:"num_train"`

	// NumGuard is the number of guard cells on each side of the CUT.
	NumGuard int `mapstructure:"num_guard" yaml:"num_guard"`

	// PFA is the design probability of false alarm, 0 < PFA < 1.
	PFA float64 `mapstructure:"pfa" yaml:"pfa"`

	// PeakGuard is the half-width of the local-maximum window.
	PeakGuard int `mapstructure:"peak_guard" yaml:"peak_guard"`

	// Mode selects the noise estimator.
	Mode Mode `mapstructure:"-" yaml:"-"`
}

// DefaultOptions returns N=35, G=5, pfa=1e-3, peak guard 2, cell averaging.
func DefaultOptions() Options {
	return Options{
		NumTrain:  35,
		NumGuard:  5,
		PFA:       1e-3,
		PeakGuard: 2,
		Mode:      CellAveraging,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case o.NumTrain < 1:
		return fmt.Errorf("num_train=%d: %w", o.NumTrain, ErrInvalidTraining)
	case o.NumGuard < 0:
		return fmt.Errorf("num_guard=%d: %w", o.NumGuard, ErrInvalidGuard)
	case o.PeakGuard < 0:
		return fmt.Errorf("peak_guard=%d: %w", o.PeakGuard, ErrInvalidGuard)
	case !(o.PFA > 0 && o.PFA < 1):
		return fmt.Errorf("pfa=%g: %w", o.PFA, ErrInvalidPFA)
	}
	if _, ok := modeNames[o.Mode]; !ok {
		return fmt.Errorf("mode=%d: %w", int(o.Mode), ErrUnknownMode)
	}

	return nil
}

// MinLength is the shortest signal for which any cell is evaluated.
func (o Options) MinLength() int {
	return 2*(o.NumTrain+o.NumGuard) + 2
}
