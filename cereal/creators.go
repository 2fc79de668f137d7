package cereal

import (
	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/cereal/log"
)

func ObstacleDistanceCreator(evt log.Event) (log.ObstacleDistance, error) {
	return evt.NewObstacleDistance()
}

func DistanceSensorCreator(evt log.Event) (log.DistanceSensor, error) {
	return evt.NewDistanceSensor()
}

func VehicleAttitudeCreator(evt log.Event) (log.VehicleAttitude, error) {
	return evt.NewVehicleAttitude()
}

func VelocitySetpointCreator(evt log.Event) (log.VelocitySetpoint, error) {
	return evt.NewVelocitySetpoint()
}

func LogMessageCreator(evt log.Event) (log.LogMessage, error) {
	return evt.NewLogMessage()
}

func CollisionConstraintsCreator(evt log.Event) (custom.CollisionConstraints, error) {
	return evt.NewCollisionConstraints()
}

func CollisionPreventionInCreator(evt log.Event) (custom.CollisionPreventionIn, error) {
	return evt.NewCollisionPreventionIn()
}
