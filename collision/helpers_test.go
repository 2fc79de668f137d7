package collision

import (
	"math"
	"time"

	"gonum.org/v1/gonum/num/quat"

	m "pfeifer.dev/colprev/math"
)

const testNow = uint64(100 * time.Second)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SafetyDistance = 1
	return cfg
}

func level(yawDeg float64) quat.Number {
	return quaternionFromEuler(m.Euler{Yaw: m.Radians(yawDeg)})
}

// singleBinProfile puts one obstacle into an otherwise empty 5 degree profile
// spanning 0.2 m to 10 m.
func singleBinProfile(angleDeg float64, distanceM float64) DistanceProfile {
	profile := NewDistanceProfile(5)
	profile.Timestamp = testNow
	profile.MinDistance = 20
	profile.MaxDistance = 1000
	profile.Distances[BinIndex(angleDeg, 5)] = ToCentimeters(distanceM)
	return profile
}

func sample(orientation Orientation, distanceM float64) RangingSample {
	return RangingSample{
		Timestamp:    testNow,
		MinRange:     0.2,
		MaxRange:     10,
		CurrentRange: distanceM,
		Orientation:  orientation,
	}
}

func quaternionFromEuler(e m.Euler) quat.Number {
	cr, sr := math.Cos(e.Roll/2), math.Sin(e.Roll/2)
	cp, sp := math.Cos(e.Pitch/2), math.Sin(e.Pitch/2)
	cy, sy := math.Cos(e.Yaw/2), math.Sin(e.Yaw/2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}
