package custom

import (
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSegment(t *testing.T) *capnp.Segment {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	return seg
}

func TestCollisionPreventionIn(t *testing.T) {
	input, err := NewRootCollisionPreventionIn(newSegment(t))
	require.NoError(t, err)

	input.SetType(CollisionPreventionInputType_setLogLevel)
	input.SetFloat(0.5)
	require.NoError(t, input.SetStr("debug"))

	assert.Equal(t, CollisionPreventionInputType_setLogLevel, input.Type())
	assert.Equal(t, float32(0.5), input.Float())
	str, err := input.Str()
	require.NoError(t, err)
	assert.Equal(t, "debug", str)
}

func TestCollisionPreventionInputTypeNames(t *testing.T) {
	for v := CollisionPreventionInputType_reloadSettings; v <= CollisionPreventionInputType_setLogLevel; v++ {
		assert.Equal(t, v, CollisionPreventionInputTypeFromString(v.String()))
	}
	assert.Equal(t, "", CollisionPreventionInputType(42).String())
}

func TestCollisionConstraintsLists(t *testing.T) {
	constraints, err := NewRootCollisionConstraints(newSegment(t))
	require.NoError(t, err)
	assert.False(t, constraints.HasAdaptedSetpoint())

	adapted, err := constraints.NewAdaptedSetpoint(2)
	require.NoError(t, err)
	adapted.Set(0, 1.5)
	adapted.Set(1, -0.5)

	got, err := constraints.AdaptedSetpoint()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.Equal(t, float32(1.5), got.At(0))
	assert.Equal(t, float32(-0.5), got.At(1))
	assert.False(t, constraints.HasOriginalSetpoint())
}
