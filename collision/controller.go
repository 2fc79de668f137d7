package collision

import (
	"io"
	"log/slog"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Inputs are the snapshots available to one control cycle.
type Inputs struct {
	Obstacle        DistanceProfile
	ObstacleUpdated bool
	Samples         []RangingSample
	Attitude        quat.Number
}

// CycleResult is the outcome of one cycle. Fresh is false when the selected
// profile was too old to use.
type CycleResult struct {
	Setpoint r2.Vec
	Report   ConstraintsReport
	Source   ObstacleSource
	Fresh    bool
	Warnings []string
}

// Step runs one full cycle against state and returns the successor state.
// It has no side effects, warnings are returned for the caller to emit.
func Step(state ConstraintState, cfg Config, in Inputs, setpoint r2.Vec, maxSpeed float64, now uint64) (ConstraintState, CycleResult) {
	state.Normalized = Limits{}
	state.Absolute = Limits{}
	result := CycleResult{}

	if cfg.Enabled() {
		profile, source := SelectProfile(in.Obstacle, in.ObstacleUpdated, func() DistanceProfile {
			return BuildProfile(in.Samples, in.Attitude, now, cfg)
		})
		result.Source = source

		if Fresh(profile.Timestamp, now, cfg.StalenessWindow) {
			result.Fresh = true
			state.Normalized = NormalizedLimits(profile, cfg.SafetyDistance)
		} else if !state.HasWarned || elapsed(state.LastWarning, now) > cfg.WarningThrottleInterval {
			result.Warnings = append(result.Warnings, NO_RANGE_DATA_WARNING)
			state.HasWarned = true
			state.LastWarning = now
		}
	}

	state.Absolute = AbsoluteLimits(state.Normalized, maxSpeed)
	adapted := setpoint
	if cfg.Enabled() {
		adapted = ClampSetpoint(setpoint, state.Absolute)
	}

	interfering := Interfering(setpoint, adapted, maxSpeed, cfg.InterferenceThresholdFraction)
	if interfering && !state.Interfering {
		result.Warnings = append(result.Warnings, COLLISION_WARNING)
	}
	state.Interfering = interfering

	result.Setpoint = adapted
	result.Report = ConstraintsReport{
		Timestamp:        now,
		NormalizedX:      state.Normalized.X,
		NormalizedY:      state.Normalized.Y,
		OriginalSetpoint: setpoint,
		AdaptedSetpoint:  adapted,
	}
	return state, result
}

// Alerter delivers user facing warnings.
type Alerter interface {
	Alert(text string)
}

type ReportPublisher interface {
	PublishConstraints(report ConstraintsReport) error
}

// Controller owns the constraint state of one vehicle and emits the
// warnings and reports produced by each cycle.
type Controller struct {
	Config  Config
	Clock   func() uint64
	alerter Alerter
	reports ReportPublisher
	state   ConstraintState
}

func NewController(cfg Config, clock func() uint64, alerter Alerter, reports ReportPublisher) *Controller {
	return &Controller{
		Config:  cfg,
		Clock:   clock,
		alerter: alerter,
		reports: reports,
	}
}

func (c *Controller) State() ConstraintState {
	return c.state
}

// ModifySetpoint returns the requested setpoint clamped to the current
// collision constraints. The caller must use the result in place of the
// request.
func (c *Controller) ModifySetpoint(in Inputs, setpoint r2.Vec, maxSpeed float64) r2.Vec {
	var result CycleResult
	c.state, result = Step(c.state, c.Config, in, setpoint, maxSpeed, c.Clock())

	for _, warning := range result.Warnings {
		slog.Warn(warning, "source", result.Source.String())
		if c.alerter != nil {
			c.alerter.Alert(warning)
		}
	}

	if c.reports != nil {
		if err := c.reports.PublishConstraints(result.Report); err != nil {
			slog.Error("could not publish collision constraints", "error", err)
		}
	}

	slog.Debug("collision constraints",
		"source", result.Source.String(),
		"fresh", result.Fresh,
		"interfering", c.state.Interfering,
		"x", c.state.Normalized.X,
		"y", c.state.Normalized.Y,
		"original", setpoint,
		"adapted", result.Setpoint,
	)

	return result.Setpoint
}

// Close releases the output channels that implement io.Closer. Closers must
// tolerate being closed twice when one value serves as both outputs.
func (c *Controller) Close() error {
	var firstErr error
	if closer, ok := c.reports.(io.Closer); ok {
		firstErr = closer.Close()
	}
	if closer, ok := c.alerter.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
