package collision

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	m "pfeifer.dev/colprev/math"
)

// BinCount is the number of bins needed to cover a full circle.
func BinCount(increment float64) int {
	if increment <= 0 || math.IsNaN(increment) {
		return 0
	}
	return int(math.Ceil(FULL_CIRCLE / increment))
}

// NewDistanceProfile returns a profile with every bin set to NO_DATA.
func NewDistanceProfile(increment float64) DistanceProfile {
	distances := make([]uint16, BinCount(increment))
	for i := range distances {
		distances[i] = NO_DATA
	}
	return DistanceProfile{
		Increment: increment,
		Distances: distances,
	}
}

// BinAngle is the heading of bin i in degrees from local north.
func (p DistanceProfile) BinAngle(i int) float64 {
	return float64(i) * p.Increment
}

// ValidBin reports whether bin i holds a measurement strictly inside the
// profile's range and lies within the first turn.
func (p DistanceProfile) ValidBin(i int) bool {
	if i < 0 || i >= len(p.Distances) || p.Increment <= 0 {
		return false
	}
	d := p.Distances[i]
	return d != NO_DATA && d > p.MinDistance && d < p.MaxDistance && p.BinAngle(i) < FULL_CIRCLE
}

// SensorHeading converts a body frame mounting offset into a local frame
// heading in degrees within [0, 360).
func SensorHeading(yaw float64, offset float64) float64 {
	return m.WrapDegrees360(m.Degrees(m.WrapPi(yaw + offset)))
}

// BinIndex maps a heading in degrees onto a bin. Headings are normalized into
// [0, 360) first so the result always lies in [0, BinCount(increment)).
// Headings within BIN_EDGE_TOLERANCE below an edge snap up onto it, a heading
// that snaps onto 360 wraps to bin 0.
func BinIndex(headingDeg float64, increment float64) int {
	bins := BinCount(increment)
	if bins == 0 {
		return 0
	}
	index := int(math.Floor(m.WrapDegrees360(headingDeg)/increment+BIN_EDGE_TOLERANCE)) % bins
	return m.Constrain(index, 0, bins-1)
}

// ToCentimeters converts meters into the profile unit, saturating below NO_DATA.
func ToCentimeters(meters float64) uint16 {
	if math.IsNaN(meters) {
		return 0
	}
	return uint16(m.Constrain(math.Round(meters*M_TO_CM), 0, NO_DATA-1))
}

// BuildProfile bins the fresh horizontal ranging samples into a local frame
// distance profile. Readings outside their own sensor range are dropped.
// When several samples land in the same bin the nearest one is kept. The
// profile range spans all contributing sensors and its timestamp is the
// newest sample used, or zero if none qualified.
func BuildProfile(samples []RangingSample, attitude quat.Number, now uint64, cfg Config) DistanceProfile {
	profile := NewDistanceProfile(cfg.BinResolution)
	if len(profile.Distances) == 0 {
		return profile
	}
	euler := m.EulerFromQuaternion(attitude)
	tilt := math.Cos(euler.Pitch)

	contributing := 0
	for _, sample := range samples {
		offset, horizontal := sample.Orientation.HeadingOffset()
		if !horizontal || !Fresh(sample.Timestamp, now, cfg.StalenessWindow) {
			continue
		}

		minDistance := ToCentimeters(sample.MinRange)
		maxDistance := ToCentimeters(sample.MaxRange)
		if contributing == 0 {
			profile.MinDistance = minDistance
			profile.MaxDistance = maxDistance
		} else {
			profile.MinDistance = min(profile.MinDistance, minDistance)
			profile.MaxDistance = max(profile.MaxDistance, maxDistance)
		}
		contributing++
		profile.Timestamp = max(profile.Timestamp, sample.Timestamp)

		if !(sample.CurrentRange > sample.MinRange && sample.CurrentRange < sample.MaxRange) {
			continue
		}

		index := BinIndex(SensorHeading(euler.Yaw, offset), profile.Increment)
		distance := ToCentimeters(sample.CurrentRange * tilt)
		if distance < profile.Distances[index] {
			profile.Distances[index] = distance
		}
	}

	return profile
}
