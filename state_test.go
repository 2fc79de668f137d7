package main

import (
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"pfeifer.dev/colprev/cereal/log"
	"pfeifer.dev/colprev/collision"
)

func TestStateInputs(t *testing.T) {
	state := NewState(3)
	in := state.Inputs()
	assert.Equal(t, quat.Number{Real: 1}, in.Attitude, "level until an attitude arrives")
	assert.Empty(t, in.Samples)
	assert.False(t, in.ObstacleUpdated)

	state.Sensors[2].Update(collision.RangingSample{Timestamp: 1, CurrentRange: 3})
	state.Obstacle.Update(collision.NewDistanceProfile(5))
	state.Attitude.Update(quat.Number{Real: 0, Kmag: 1})

	in = state.Inputs()
	assert.Len(t, in.Samples, 1)
	assert.True(t, in.ObstacleUpdated)
	assert.Equal(t, quat.Number{Kmag: 1}, in.Attitude)

	state.EndCycle()
	in = state.Inputs()
	assert.False(t, in.ObstacleUpdated)
	assert.Len(t, in.Samples, 1, "values outlive the cycle")
	assert.Len(t, in.Obstacle.Distances, 72)
}

func newEvent(t *testing.T) log.Event {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	event, err := log.NewRootEvent(seg)
	require.NoError(t, err)
	return event
}

func TestProfileFromMessage(t *testing.T) {
	msg, err := newEvent(t).NewObstacleDistance()
	require.NoError(t, err)
	msg.SetTimestamp(7)
	msg.SetMinDistance(20)
	msg.SetMaxDistance(500)
	msg.SetIncrement(10)

	profile, err := ProfileFromMessage(msg)
	require.NoError(t, err)
	assert.Empty(t, profile.Distances, "no list set")

	distances, err := msg.NewDistances(3)
	require.NoError(t, err)
	distances.Set(0, 100)
	distances.Set(1, collision.NO_DATA)
	distances.Set(2, 250)

	profile, err = ProfileFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, collision.DistanceProfile{
		Timestamp:   7,
		MinDistance: 20,
		MaxDistance: 500,
		Increment:   10,
		Distances:   []uint16{100, collision.NO_DATA, 250},
	}, profile)
}

func TestSampleFromMessageOrientation(t *testing.T) {
	tests := []struct {
		in   log.SensorOrientation
		want collision.Orientation
	}{
		{log.SensorOrientation_forward, collision.OrientationForward},
		{log.SensorOrientation_right, collision.OrientationRight},
		{log.SensorOrientation_backward, collision.OrientationBackward},
		{log.SensorOrientation_left, collision.OrientationLeft},
		{log.SensorOrientation_upward, collision.OrientationUpward},
		{log.SensorOrientation_downward, collision.OrientationDownward},
		{log.SensorOrientation_custom, collision.OrientationCustom},
		{log.SensorOrientation(42), collision.OrientationCustom},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			msg, err := newEvent(t).NewDistanceSensor()
			require.NoError(t, err)
			msg.SetOrientation(tt.in)
			msg.SetCurrentDistance(2.5)
			sample := SampleFromMessage(msg)
			assert.Equal(t, tt.want, sample.Orientation)
			assert.Equal(t, 2.5, sample.CurrentRange)
		})
	}
}

func TestAttitudeFromMessage(t *testing.T) {
	msg, err := newEvent(t).NewVehicleAttitude()
	require.NoError(t, err)

	q, err := AttitudeFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, quat.Number{Real: 1}, q, "missing quaternion is level")

	list, err := msg.NewQ(4)
	require.NoError(t, err)
	list.Set(0, 0.5)
	list.Set(1, 0.5)
	list.Set(2, -0.5)
	list.Set(3, 0.5)

	q, err = AttitudeFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, quat.Number{Real: 0.5, Imag: 0.5, Jmag: -0.5, Kmag: 0.5}, q)
}
