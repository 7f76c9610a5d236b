package ranging

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Assessment scores estimated ranges against the true target ranges.
type Assessment struct {
	// Truth echoes the true ranges in input order.
	Truth []float64 `yaml:"truth"`

	// Matched holds, per true target, the detection paired with it or NaN.
	Matched []float64 `yaml:"matched"`

	// Errors holds Matched[i] − Truth[i], or NaN for a missed target.
	Errors []float64 `yaml:"errors"`

	// Missed counts true targets with no detection inside the gate.
	Missed int `yaml:"missed"`

	// FalseAlarms counts detections paired with no target.
	FalseAlarms int `yaml:"false_alarms"`

	// MeanError and RMSError are taken over matched targets only; NaN if none.
	MeanError float64 `yaml:"mean_error"`
	RMSError  float64 `yaml:"rms_error"`
}

// Detected reports how many true targets were matched.
func (a Assessment) Detected() int {
	return len(a.Truth) - a.Missed
}

// Assess pairs every true range with its nearest unused detection no farther
// than gate metres. Targets are visited in ascending range so close pairs
// resolve the same way on every run. gate <= 0 disables gating.
func Assess(truth, detected []float64, gate float64) Assessment {
	if !(gate > 0) {
		gate = math.Inf(1)
	}

	a := Assessment{
		Truth:     append([]float64(nil), truth...),
		Matched:   make([]float64, len(truth)),
		Errors:    make([]float64, len(truth)),
		MeanError: math.NaN(),
		RMSError:  math.NaN(),
	}

	order := make([]int, len(truth))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return truth[order[i]] < truth[order[j]] })

	used := make([]bool, len(detected))
	var errs []float64
	for _, ti := range order {
		best, bestDist := -1, math.Inf(1)
		for di, d := range detected {
			if used[di] {
				continue
			}
			if dist := math.Abs(d - truth[ti]); dist <= gate && dist < bestDist {
				best, bestDist = di, dist
			}
		}
		if best < 0 {
			a.Matched[ti] = math.NaN()
			a.Errors[ti] = math.NaN()
			a.Missed++
			continue
		}
		used[best] = true
		a.Matched[ti] = detected[best]
		a.Errors[ti] = detected[best] - truth[ti]
		errs = append(errs, a.Errors[ti])
	}

	for _, u := range used {
		if !u {
			a.FalseAlarms++
		}
	}

	if len(errs) > 0 {
		a.MeanError = stat.Mean(errs, nil)
		sq := make([]float64, len(errs))
		for i, e := range errs {
			sq[i] = e * e
		}
		a.RMSError = math.Sqrt(stat.Mean(sq, nil))
	}

	return a
}
