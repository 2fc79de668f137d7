package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSensorTopic(t *testing.T) {
	assert.Equal(t, "distanceSensor", DistanceSensorTopic(0))
	assert.Equal(t, "distanceSensor1", DistanceSensorTopic(1))
	assert.Equal(t, "distanceSensor3", DistanceSensorTopic(3))
}
