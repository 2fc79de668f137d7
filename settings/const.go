package settings

import (
	"strconv"
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 2 * 1024 * 1024
	LOOP_DELAY           = 20 * time.Millisecond
	SETTINGS_LOAD_TRIES  = 5
	MAX_SENSOR_INSTANCES = 4
)

// Topics
const (
	OBSTACLE_DISTANCE_TOPIC       = "obstacleDistance"
	DISTANCE_SENSOR_TOPIC         = "distanceSensor"
	VEHICLE_ATTITUDE_TOPIC        = "vehicleAttitude"
	VELOCITY_SETPOINT_TOPIC       = "velocitySetpoint"
	LOG_MESSAGE_TOPIC             = "logMessage"
	COLLISION_CONSTRAINTS_TOPIC   = "collisionConstraints"
	COLLISION_PREVENTION_IN_TOPIC = "collisionPreventionIn"
)

// DistanceSensorTopic names the topic of one sensor instance.
func DistanceSensorTopic(instance int) string {
	if instance == 0 {
		return DISTANCE_SENSOR_TOPIC
	}
	return DISTANCE_SENSOR_TOPIC + strconv.Itoa(instance)
}
