package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"

	"pfeifer.dev/colprev/cereal/log"
	"pfeifer.dev/colprev/collision"
	m "pfeifer.dev/colprev/math"
)

func ProfileFromMessage(msg log.ObstacleDistance) (collision.DistanceProfile, error) {
	profile := collision.DistanceProfile{
		Timestamp:   msg.Timestamp(),
		MinDistance: msg.MinDistance(),
		MaxDistance: msg.MaxDistance(),
		Increment:   float64(msg.Increment()),
	}
	if !msg.HasDistances() {
		return profile, nil
	}
	distances, err := msg.Distances()
	if err != nil {
		return profile, errors.Wrap(err, "could not read obstacle distances")
	}
	profile.Distances = make([]uint16, distances.Len())
	for i := range profile.Distances {
		profile.Distances[i] = distances.At(i)
	}
	return profile, nil
}

func SampleFromMessage(msg log.DistanceSensor) collision.RangingSample {
	return collision.RangingSample{
		Timestamp:    msg.Timestamp(),
		MinRange:     float64(msg.MinDistance()),
		MaxRange:     float64(msg.MaxDistance()),
		CurrentRange: float64(msg.CurrentDistance()),
		Orientation:  orientation(msg.Orientation()),
	}
}

func orientation(o log.SensorOrientation) collision.Orientation {
	switch o {
	case log.SensorOrientation_forward:
		return collision.OrientationForward
	case log.SensorOrientation_right:
		return collision.OrientationRight
	case log.SensorOrientation_backward:
		return collision.OrientationBackward
	case log.SensorOrientation_left:
		return collision.OrientationLeft
	case log.SensorOrientation_upward:
		return collision.OrientationUpward
	case log.SensorOrientation_downward:
		return collision.OrientationDownward
	default:
		return collision.OrientationCustom
	}
}

func AttitudeFromMessage(msg log.VehicleAttitude) (quat.Number, error) {
	list, err := msg.Q()
	if err != nil {
		return quat.Number{Real: 1}, errors.Wrap(err, "could not read attitude quaternion")
	}
	q := make([]float32, list.Len())
	for i := range q {
		q[i] = list.At(i)
	}
	return m.QuaternionFromSlice(q), nil
}

func SetpointFromMessage(msg log.VelocitySetpoint) Setpoint {
	return Setpoint{
		Timestamp: msg.Timestamp(),
		Velocity:  r2.Vec{X: float64(msg.Vx()), Y: float64(msg.Vy())},
		MaxSpeed:  float64(msg.MaxSpeed()),
	}
}
