package collision

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func externalInputs(profile DistanceProfile) Inputs {
	return Inputs{Obstacle: profile, ObstacleUpdated: true, Attitude: level(0)}
}

func TestStepStopsTowardsObstacle(t *testing.T) {
	state, result := Step(ConstraintState{}, testConfig(), externalInputs(singleBinProfile(0, 1)), r2.Vec{X: 3}, 5, testNow)

	assert.Equal(t, r2.Vec{}, result.Setpoint)
	assert.True(t, result.Fresh)
	assert.Equal(t, SourceExternal, result.Source)
	assert.True(t, state.Interfering)
	assert.Equal(t, []string{COLLISION_WARNING}, result.Warnings)

	assert.Equal(t, testNow, result.Report.Timestamp)
	assert.Equal(t, AxisLimits{Positive: 1}, result.Report.NormalizedX)
	assert.Equal(t, r2.Vec{X: 3}, result.Report.OriginalSetpoint)
	assert.Equal(t, r2.Vec{}, result.Report.AdaptedSetpoint)
}

func TestStepObstacleAtMaxRange(t *testing.T) {
	state, result := Step(ConstraintState{}, testConfig(), externalInputs(singleBinProfile(0, 10)), r2.Vec{X: 3}, 5, testNow)

	assert.Equal(t, r2.Vec{X: 3}, result.Setpoint)
	assert.False(t, state.Interfering)
	assert.Empty(t, result.Warnings)
}

func TestStepPartialLimit(t *testing.T) {
	state, result := Step(ConstraintState{}, testConfig(), externalInputs(singleBinProfile(90, 5.5)), r2.Vec{Y: 4}, 5, testNow)

	assert.InDelta(t, 0.5, state.Normalized.Y.Positive, 1e-9)
	assert.InDelta(t, 2.5, state.Absolute.Y.Positive, 1e-9)
	assert.InDelta(t, 2.5, result.Setpoint.Y, 1e-9)
}

func TestStepMovingAwayIsUnconstrained(t *testing.T) {
	_, result := Step(ConstraintState{}, testConfig(), externalInputs(singleBinProfile(0, 1)), r2.Vec{X: -3, Y: 2}, 5, testNow)
	assert.Equal(t, r2.Vec{X: -3, Y: 2}, result.Setpoint)
	assert.Empty(t, result.Warnings)
}

func TestStepDisabledPassesThrough(t *testing.T) {
	cfg := DefaultConfig()
	require.False(t, cfg.Enabled())

	state, result := Step(ConstraintState{}, cfg, externalInputs(singleBinProfile(0, 1)), r2.Vec{X: 8, Y: -9}, 5, testNow)

	assert.Equal(t, r2.Vec{X: 8, Y: -9}, result.Setpoint)
	assert.Equal(t, Limits{}, state.Normalized)
	assert.Empty(t, result.Warnings, "no stale data warning while disabled")
	assert.False(t, state.Interfering)
	assert.Equal(t, SourceNone, result.Source)
	assert.Equal(t, r2.Vec{X: 8, Y: -9}, result.Report.AdaptedSetpoint)
}

func TestStepPrefersExternalProfile(t *testing.T) {
	in := externalInputs(singleBinProfile(0, 1))
	in.Samples = []RangingSample{sample(OrientationRight, 1)}

	state, result := Step(ConstraintState{}, testConfig(), in, r2.Vec{}, 5, testNow)
	assert.Equal(t, SourceExternal, result.Source)
	assert.InDelta(t, 1, state.Normalized.X.Positive, 1e-9)
	assert.Zero(t, state.Normalized.Y.Positive)

	in.ObstacleUpdated = false
	state, result = Step(state, testConfig(), in, r2.Vec{}, 5, testNow)
	assert.Equal(t, SourceOnboard, result.Source)
	assert.InDelta(t, 1, state.Normalized.Y.Positive, 1e-9)
	assert.InDelta(t, 0, state.Normalized.X.Positive, 1e-9, "profiles are never merged")
}

func TestStepStaleExternalProfileDoesNotFallBack(t *testing.T) {
	profile := singleBinProfile(0, 1)
	profile.Timestamp = testNow - uint64(time.Second)
	in := externalInputs(profile)
	in.Samples = []RangingSample{sample(OrientationForward, 1)}

	state, result := Step(ConstraintState{}, testConfig(), in, r2.Vec{X: 3}, 5, testNow)
	assert.False(t, result.Fresh)
	assert.Equal(t, SourceExternal, result.Source)
	assert.Equal(t, Limits{}, state.Normalized)
	assert.Equal(t, r2.Vec{X: 3}, result.Setpoint)
	assert.Equal(t, []string{NO_RANGE_DATA_WARNING}, result.Warnings)
}

func TestStepLimitsResetEachCycle(t *testing.T) {
	state, _ := Step(ConstraintState{}, testConfig(), externalInputs(singleBinProfile(0, 1)), r2.Vec{}, 5, testNow)
	require.InDelta(t, 1, state.Normalized.X.Positive, 1e-9)

	state, result := Step(state, testConfig(), externalInputs(singleBinProfile(180, 1)), r2.Vec{X: 3}, 5, testNow)
	assert.Zero(t, state.Normalized.X.Positive)
	assert.InDelta(t, 1, state.Normalized.X.Negative, 1e-9)
	assert.Equal(t, r2.Vec{X: 3}, result.Setpoint)
}

func TestStepNoDataWarningIsThrottled(t *testing.T) {
	cfg := testConfig()
	state := ConstraintState{}
	cycles := []struct {
		at   time.Duration
		warn bool
	}{
		{0, true},
		{20 * time.Millisecond, false},
		{time.Second, false},
		{5 * time.Second, false},
		{5*time.Second + time.Millisecond, true},
		{6 * time.Second, false},
		{10*time.Second + 2*time.Millisecond, true},
	}
	for _, cycle := range cycles {
		var result CycleResult
		now := testNow + uint64(cycle.at)
		state, result = Step(state, cfg, Inputs{Attitude: level(0)}, r2.Vec{}, 5, now)
		if cycle.warn {
			assert.Equal(t, []string{NO_RANGE_DATA_WARNING}, result.Warnings, "at %s", cycle.at)
			assert.Equal(t, now, state.LastWarning)
		} else {
			assert.Empty(t, result.Warnings, "at %s", cycle.at)
		}
		assert.True(t, state.HasWarned)
	}
}

func TestStepCollisionWarningIsEdgeTriggered(t *testing.T) {
	blocked := externalInputs(singleBinProfile(0, 1))
	setpoints := []struct {
		setpoint r2.Vec
		warn     bool
	}{
		{r2.Vec{X: 3}, true},
		{r2.Vec{X: 3}, false},
		{r2.Vec{X: 2}, false},
		{r2.Vec{X: -1}, false},
		{r2.Vec{X: 3}, true},
	}

	state := ConstraintState{}
	for i, cycle := range setpoints {
		var result CycleResult
		state, result = Step(state, testConfig(), blocked, cycle.setpoint, 5, testNow)
		if cycle.warn {
			assert.Equal(t, []string{COLLISION_WARNING}, result.Warnings, "cycle %d", i)
		} else {
			assert.Empty(t, result.Warnings, "cycle %d", i)
		}
	}
}

func TestStepOnboardProfile(t *testing.T) {
	in := Inputs{
		Samples:  []RangingSample{sample(OrientationForward, 1)},
		Attitude: level(90),
	}
	_, result := Step(ConstraintState{}, testConfig(), in, r2.Vec{X: 2, Y: 2}, 5, testNow)

	assert.Equal(t, SourceOnboard, result.Source)
	assert.True(t, result.Fresh)
	assert.InDelta(t, 2, result.Setpoint.X, 1e-9)
	assert.InDelta(t, 0, result.Setpoint.Y, 1e-9, "facing east the forward sensor blocks east")
}

func TestStepOnboardProfileBlocksHeading(t *testing.T) {
	in := Inputs{
		Samples:  []RangingSample{sample(OrientationForward, 1)},
		Attitude: level(90),
	}
	_, result := Step(ConstraintState{}, testConfig(), in, r2.Vec{X: 0, Y: 3}, 5, testNow)

	assert.InDelta(t, 1, result.Report.NormalizedY.Positive, 1e-9)
	assert.InDelta(t, 0, result.Setpoint.Y, 1e-9, "obstacle at the safety distance straight ahead")
	assert.Contains(t, result.Warnings, COLLISION_WARNING)
}

type recorder struct {
	alerts  []string
	reports []ConstraintsReport
	closed  int
	err     error
}

func (r *recorder) Alert(text string) {
	r.alerts = append(r.alerts, text)
}

func (r *recorder) PublishConstraints(report ConstraintsReport) error {
	r.reports = append(r.reports, report)
	return r.err
}

func (r *recorder) Close() error {
	r.closed++
	return nil
}

func TestControllerModifySetpoint(t *testing.T) {
	now := testNow
	out := &recorder{}
	controller := NewController(testConfig(), func() uint64 { return now }, out, out)

	adapted := controller.ModifySetpoint(externalInputs(singleBinProfile(0, 1)), r2.Vec{X: 3}, 5)
	assert.Equal(t, r2.Vec{}, adapted)
	assert.Equal(t, []string{COLLISION_WARNING}, out.alerts)
	require.Len(t, out.reports, 1)
	assert.Equal(t, now, out.reports[0].Timestamp)
	assert.True(t, controller.State().Interfering)

	now += uint64(20 * time.Millisecond)
	adapted = controller.ModifySetpoint(externalInputs(singleBinProfile(0, 1)), r2.Vec{X: 3}, 5)
	assert.Equal(t, r2.Vec{}, adapted)
	assert.Len(t, out.alerts, 1)
	assert.Len(t, out.reports, 2)
}

func TestControllerPublishErrorDoesNotBlockSetpoint(t *testing.T) {
	out := &recorder{err: errors.New("bus down")}
	controller := NewController(testConfig(), func() uint64 { return testNow }, out, out)

	adapted := controller.ModifySetpoint(externalInputs(singleBinProfile(90, 5.5)), r2.Vec{Y: 4}, 5)
	assert.InDelta(t, 2.5, adapted.Y, 1e-9)
}

func TestControllerConfigChangeAppliesNextCycle(t *testing.T) {
	controller := NewController(DefaultConfig(), func() uint64 { return testNow }, nil, nil)
	in := externalInputs(singleBinProfile(0, 1))

	assert.Equal(t, r2.Vec{X: 3}, controller.ModifySetpoint(in, r2.Vec{X: 3}, 5))

	controller.Config.SafetyDistance = 1
	assert.Equal(t, r2.Vec{}, controller.ModifySetpoint(in, r2.Vec{X: 3}, 5))
}

func TestControllerClose(t *testing.T) {
	out := &recorder{}
	controller := NewController(testConfig(), func() uint64 { return testNow }, out, out)
	require.NoError(t, controller.Close())
	assert.Equal(t, 2, out.closed)

	assert.NoError(t, NewController(testConfig(), nil, nil, nil).Close())
}
