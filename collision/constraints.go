package collision

import (
	"math"

	m "pfeifer.dev/colprev/math"
)

// Reduction maps an obstacle distance onto the fraction of speed to remove
// towards it: 0 at the max detection distance, 1 at the safety distance and
// above 1 when the vehicle is already closer. A detection range that does not
// reach past the safety distance always yields a full stop.
func Reduction(distance float64, maxDetection float64, safety float64) float64 {
	if maxDetection <= safety {
		return 1
	}
	return (maxDetection - distance) / (maxDetection - safety)
}

// accumulate keeps the worst case reduction per axis and direction.
func (a *AxisLimits) accumulate(component float64) {
	if component > 0 && component > a.Positive {
		a.Positive = component
	}
	if component < 0 && -component > a.Negative {
		a.Negative = -component
	}
}

func (a AxisLimits) constrain(low float64, high float64) AxisLimits {
	return AxisLimits{
		Negative: m.Constrain(a.Negative, low, high),
		Positive: m.Constrain(a.Positive, low, high),
	}
}

// Clamp limits every normalized reduction to [0, 1].
func (l Limits) Clamp() Limits {
	return Limits{X: l.X.constrain(0, 1), Y: l.Y.constrain(0, 1)}
}

// NormalizedLimits turns a distance profile into per-axis speed reductions in
// [0, 1]. X points north and Y east, matching bin angles measured clockwise
// from north.
func NormalizedLimits(profile DistanceProfile, safety float64) Limits {
	limits := Limits{}
	maxDetection := float64(profile.MaxDistance) * CM_TO_M

	for i := range profile.Distances {
		if !profile.ValidBin(i) {
			continue
		}
		distance := float64(profile.Distances[i]) * CM_TO_M
		angle := m.Radians(profile.BinAngle(i))
		reduction := Reduction(distance, maxDetection, safety)

		limits.X.accumulate(reduction * math.Cos(angle))
		limits.Y.accumulate(reduction * math.Sin(angle))
	}

	return limits.Clamp()
}
