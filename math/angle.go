package math

import (
	m "math"
)

const (
	TO_RADIANS = m.Pi / 180
	TO_DEGREES = 180 / m.Pi
)

func Radians(degrees float64) float64 {
	return degrees * TO_RADIANS
}

func Degrees(radians float64) float64 {
	return radians * TO_DEGREES
}

// WrapPi wraps an angle in radians into [-pi, pi].
func WrapPi(angle float64) float64 {
	if m.IsNaN(angle) || m.IsInf(angle, 0) {
		return angle
	}
	if angle >= -m.Pi && angle <= m.Pi {
		return angle
	}
	wrapped := m.Mod(angle+m.Pi, 2*m.Pi)
	if wrapped < 0 {
		wrapped += 2 * m.Pi
	}
	return wrapped - m.Pi
}

// WrapDegrees360 maps an angle in degrees into [0, 360). Values that land on
// 360 after rounding are folded back to 0.
func WrapDegrees360(degrees float64) float64 {
	wrapped := m.Mod(degrees, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	if wrapped >= 360 {
		wrapped = 0
	}
	return wrapped
}
