package main

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"

	"pfeifer.dev/colprev/collision"
	"pfeifer.dev/colprev/utils"
)

// Setpoint is a requested horizontal velocity in the local north/east frame.
type Setpoint struct {
	Timestamp uint64
	Velocity  r2.Vec
	MaxSpeed  float64
}

// State holds the latest value of every feed the controller consumes.
type State struct {
	Obstacle utils.TrackedState[collision.DistanceProfile]
	Sensors  []utils.TrackedState[collision.RangingSample]
	Attitude utils.TrackedState[quat.Number]
	Setpoint utils.TrackedState[Setpoint]
}

func NewState(sensorInstances int) State {
	return State{
		Sensors: make([]utils.TrackedState[collision.RangingSample], sensorInstances),
	}
}

// Inputs snapshots the feeds for one controller cycle. Without an attitude
// estimate the vehicle is assumed level and facing north.
func (s *State) Inputs() collision.Inputs {
	samples := make([]collision.RangingSample, 0, len(s.Sensors))
	for _, sensor := range s.Sensors {
		if sensor.Valid {
			samples = append(samples, sensor.Value)
		}
	}

	attitude := quat.Number{Real: 1}
	if s.Attitude.Valid {
		attitude = s.Attitude.Value
	}

	return collision.Inputs{
		Obstacle:        s.Obstacle.Value,
		ObstacleUpdated: s.Obstacle.Updated,
		Samples:         samples,
		Attitude:        attitude,
	}
}

func (s *State) EndCycle() {
	s.Obstacle.EndCycle()
	for i := range s.Sensors {
		s.Sensors[i].EndCycle()
	}
	s.Attitude.EndCycle()
	s.Setpoint.EndCycle()
}
