// Package collision keeps a multicopter from closing distance to obstacles.
//
// Every control cycle ranging data is binned into a 360 degree distance
// profile in the local horizontal frame (index 0 is north, indices grow
// clockwise), the profile is turned into normalized per-axis speed
// reductions and those reductions clamp the requested horizontal velocity
// setpoint. The vehicle is only prevented from approaching an obstacle, it is
// never pushed away from one.
package collision

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// NO_DATA marks a profile bin without a measurement. It is larger than any
	// valid max distance.
	NO_DATA     = math.MaxUint16
	M_TO_CM     = 100.0
	CM_TO_M     = 1 / M_TO_CM
	FULL_CIRCLE = 360.0
	// BIN_EDGE_TOLERANCE is the fraction of a bin a heading may fall short of
	// an edge and still count as being on it. Radian to degree conversion
	// leaves exact edges a few ulps low.
	BIN_EDGE_TOLERANCE = 1e-9
)

const (
	NO_RANGE_DATA_WARNING = "No range data received"
	COLLISION_WARNING     = "Collision Warning"
)

type Config struct {
	// SafetyDistance is the minimum standoff in meters. Values <= 0 disable
	// collision prevention.
	SafetyDistance float64
	// StalenessWindow is the maximum age of accepted ranging data.
	StalenessWindow time.Duration
	// BinResolution is the angular width of a profile bin in degrees.
	BinResolution float64
	// InterferenceThresholdFraction is the fraction of max speed the adapted
	// setpoint may differ from the request before counting as interference.
	InterferenceThresholdFraction float64
	// WarningThrottleInterval is the minimum time between "no range data"
	// warnings.
	WarningThrottleInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		SafetyDistance:                -1,
		StalenessWindow:               500 * time.Millisecond,
		BinResolution:                 5,
		InterferenceThresholdFraction: 0.05,
		WarningThrottleInterval:       5 * time.Second,
	}
}

func (c Config) Enabled() bool {
	return c.SafetyDistance > 0
}

// Orientation is the mounting direction of a ranging sensor relative to the
// vehicle body.
type Orientation int

const (
	OrientationForward Orientation = iota
	OrientationRight
	OrientationBackward
	OrientationLeft
	OrientationUpward
	OrientationDownward
	OrientationCustom
)

// heading offsets in radians from the body x axis, clockwise positive
var headingOffsets = map[Orientation]float64{
	OrientationForward:  0,
	OrientationRight:    math.Pi / 2,
	OrientationBackward: math.Pi,
	OrientationLeft:     -math.Pi / 2,
}

// HeadingOffset reports the body frame heading of a sensor and whether the
// orientation is horizontal and therefore useful for collision prevention.
func (o Orientation) HeadingOffset() (float64, bool) {
	offset, ok := headingOffsets[o]
	return offset, ok
}

func (o Orientation) String() string {
	switch o {
	case OrientationForward:
		return "forward"
	case OrientationRight:
		return "right"
	case OrientationBackward:
		return "backward"
	case OrientationLeft:
		return "left"
	case OrientationUpward:
		return "upward"
	case OrientationDownward:
		return "downward"
	default:
		return "custom"
	}
}

// RangingSample is the latest reading of one distance sensor, in meters.
type RangingSample struct {
	Timestamp    uint64
	MinRange     float64
	MaxRange     float64
	CurrentRange float64
	Orientation  Orientation
}

// DistanceProfile holds distances in centimeters. Bin i covers the heading
// range [i*Increment, (i+1)*Increment) degrees from local north.
type DistanceProfile struct {
	Timestamp   uint64
	MinDistance uint16
	MaxDistance uint16
	Increment   float64
	Distances   []uint16
}

// AxisLimits bounds the speed along one axis in its negative and positive
// direction. Normalized limits are fractions of speed to remove, absolute
// limits are speeds in m/s.
type AxisLimits struct {
	Negative float64
	Positive float64
}

type Limits struct {
	X AxisLimits
	Y AxisLimits
}

// ConstraintState is owned by a single controller. The limits are rebuilt
// every cycle, Interfering and the warning bookkeeping carry over.
type ConstraintState struct {
	Normalized  Limits
	Absolute    Limits
	Interfering bool
	HasWarned   bool
	LastWarning uint64
}

type ConstraintsReport struct {
	Timestamp        uint64
	NormalizedX      AxisLimits
	NormalizedY      AxisLimits
	OriginalSetpoint r2.Vec
	AdaptedSetpoint  r2.Vec
}

// elapsed is the age of a timestamp. Timestamps from the future count as
// brand new.
func elapsed(timestamp uint64, now uint64) time.Duration {
	if timestamp >= now {
		return 0
	}
	return time.Duration(now - timestamp)
}

// Fresh reports whether a timestamp is set and younger than window.
func Fresh(timestamp uint64, now uint64, window time.Duration) bool {
	return timestamp != 0 && elapsed(timestamp, now) < window
}
