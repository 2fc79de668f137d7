package collision

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	m "pfeifer.dev/colprev/math"
)

// AbsoluteLimits converts normalized reductions into speed limits in m/s.
func AbsoluteLimits(normalized Limits, maxSpeed float64) Limits {
	maxSpeed = max(maxSpeed, 0)
	return Limits{
		X: AxisLimits{
			Negative: maxSpeed * (1 - normalized.X.Negative),
			Positive: maxSpeed * (1 - normalized.X.Positive),
		},
		Y: AxisLimits{
			Negative: maxSpeed * (1 - normalized.Y.Negative),
			Positive: maxSpeed * (1 - normalized.Y.Positive),
		},
	}
}

// ClampSetpoint bounds each axis of the setpoint into
// [-limit.Negative, limit.Positive].
func ClampSetpoint(setpoint r2.Vec, absolute Limits) r2.Vec {
	return r2.Vec{
		X: m.Constrain(setpoint.X, -absolute.X.Negative, absolute.X.Positive),
		Y: m.Constrain(setpoint.Y, -absolute.Y.Negative, absolute.Y.Positive),
	}
}

// Interfering reports whether the adapted setpoint moved more than fraction of
// max speed away from the original on either axis.
func Interfering(original r2.Vec, adapted r2.Vec, maxSpeed float64, fraction float64) bool {
	threshold := fraction * max(maxSpeed, 0)
	diff := r2.Sub(adapted, original)
	return math.Abs(diff.X) > threshold || math.Abs(diff.Y) > threshold
}
