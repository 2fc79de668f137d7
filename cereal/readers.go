package cereal

import (
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/cereal/log"
)

// member guards the generated union getters, which panic on a mismatched tag.
func member[T any](evt log.Event, which log.Event_Which, get func() (T, error)) (obj T, err error) {
	if evt.Which() != which {
		return obj, errors.Errorf("event holds %s, not %s", evt.Which(), which)
	}
	return get()
}

func ObstacleDistanceReader(evt log.Event) (log.ObstacleDistance, error) {
	return member(evt, log.Event_Which_obstacleDistance, evt.ObstacleDistance)
}

func DistanceSensorReader(evt log.Event) (log.DistanceSensor, error) {
	return member(evt, log.Event_Which_distanceSensor, evt.DistanceSensor)
}

func VehicleAttitudeReader(evt log.Event) (log.VehicleAttitude, error) {
	return member(evt, log.Event_Which_vehicleAttitude, evt.VehicleAttitude)
}

func VelocitySetpointReader(evt log.Event) (log.VelocitySetpoint, error) {
	return member(evt, log.Event_Which_velocitySetpoint, evt.VelocitySetpoint)
}

func LogMessageReader(evt log.Event) (log.LogMessage, error) {
	return member(evt, log.Event_Which_logMessage, evt.LogMessage)
}

func CollisionConstraintsReader(evt log.Event) (custom.CollisionConstraints, error) {
	return member(evt, log.Event_Which_collisionConstraints, evt.CollisionConstraints)
}

func CollisionPreventionInReader(evt log.Event) (custom.CollisionPreventionIn, error) {
	return member(evt, log.Event_Which_collisionPreventionIn, evt.CollisionPreventionIn)
}
