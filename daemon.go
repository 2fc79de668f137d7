package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"pfeifer.dev/colprev/cereal"
	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/cereal/log"
	"pfeifer.dev/colprev/collision"
	ms "pfeifer.dev/colprev/settings"
	"pfeifer.dev/colprev/utils"
)

// Daemon wires the bus feeds into a collision controller. The adapted
// setpoint of every cycle reaches the flight controller through the
// adaptedSetpoint field of the collisionConstraints report.
type Daemon struct {
	State      State
	controller *collision.Controller
	outputs    *Outputs
	tracker    utils.UpdateTracker

	obstacleSub *cereal.Subscriber[log.ObstacleDistance]
	sensorSubs  []*cereal.Subscriber[log.DistanceSensor]
	attitudeSub *cereal.Subscriber[log.VehicleAttitude]
	setpointSub *cereal.Subscriber[log.VelocitySetpoint]
	inputSub    *cereal.Subscriber[custom.CollisionPreventionIn]
}

// NewDaemon subscribes to every feed and prepares the outputs. The current
// ms.Settings decide the controller configuration and how many sensor
// instances are read.
func NewDaemon(bus cereal.Bus, clock func() uint64) (*Daemon, error) {
	d := &Daemon{
		State:   NewState(ms.Settings.MaxSensorInstances),
		outputs: NewOutputs(bus),
	}
	d.controller = collision.NewController(ms.Settings.ControllerConfig(), clock, d.outputs, d.outputs)
	d.tracker.Init(50)

	var err error
	if d.obstacleSub, err = cereal.NewSubscriber(bus, ms.OBSTACLE_DISTANCE_TOPIC, cereal.ObstacleDistanceReader, true); err != nil {
		return nil, d.abort(err)
	}
	for i := range ms.Settings.MaxSensorInstances {
		sub, err := cereal.NewSubscriber(bus, ms.DistanceSensorTopic(i), cereal.DistanceSensorReader, true)
		if err != nil {
			return nil, d.abort(err)
		}
		d.sensorSubs = append(d.sensorSubs, sub)
	}
	if d.attitudeSub, err = cereal.NewSubscriber(bus, ms.VEHICLE_ATTITUDE_TOPIC, cereal.VehicleAttitudeReader, true); err != nil {
		return nil, d.abort(err)
	}
	if d.setpointSub, err = cereal.NewSubscriber(bus, ms.VELOCITY_SETPOINT_TOPIC, cereal.VelocitySetpointReader, true); err != nil {
		return nil, d.abort(err)
	}
	if d.inputSub, err = cereal.NewSubscriber(bus, ms.COLLISION_PREVENTION_IN_TOPIC, cereal.CollisionPreventionInReader, false); err != nil {
		return nil, d.abort(err)
	}
	return d, nil
}

func (d *Daemon) abort(err error) error {
	utils.Logwe(d.Close())
	return errors.Wrap(err, "could not start collision prevention")
}

func (d *Daemon) Controller() *collision.Controller {
	return d.controller
}

// HandleInputs drains the runtime inputs and applies them to the settings.
func (d *Daemon) HandleInputs() {
	for {
		input, success := d.inputSub.Read()
		if !success {
			return
		}
		if ms.Settings.Handle(input) {
			d.controller.Config = ms.Settings.ControllerConfig()
			slog.Info("collision prevention configuration updated", "safetyDistance", d.controller.Config.SafetyDistance)
		}
	}
}

func (d *Daemon) ReadFeeds() {
	if obstacle, success := d.obstacleSub.Read(); success {
		profile, err := ProfileFromMessage(obstacle)
		if err == nil {
			d.State.Obstacle.Update(profile)
		}
		utils.Logde(err)
	}

	for i, sub := range d.sensorSubs {
		if sensor, success := sub.Read(); success {
			d.State.Sensors[i].Update(SampleFromMessage(sensor))
		}
	}

	if attitude, success := d.attitudeSub.Read(); success {
		q, err := AttitudeFromMessage(attitude)
		if err == nil {
			d.State.Attitude.Update(q)
		}
		utils.Logde(err)
	}

	if setpoint, success := d.setpointSub.Read(); success {
		d.State.Setpoint.Update(SetpointFromMessage(setpoint))
	}
}

// Cycle runs one iteration. A new setpoint is adapted and returned together
// with true, otherwise the controller is not run.
func (d *Daemon) Cycle() (adapted r2.Vec, ran bool) {
	d.HandleInputs()
	d.ReadFeeds()
	defer d.State.EndCycle()

	d.tracker.Update()
	slog.Debug("cycle", "period", d.tracker.Period())

	if !d.State.Setpoint.Updated {
		return adapted, false
	}
	setpoint := d.State.Setpoint.Value
	adapted = d.controller.ModifySetpoint(d.State.Inputs(), setpoint.Velocity, setpoint.MaxSpeed)
	return adapted, true
}

// Run cycles every LOOP_DELAY until ctx is done. Results are only published,
// callers that need the adapted setpoint directly use Cycle.
func (d *Daemon) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(ms.LOOP_DELAY):
		}
		d.Cycle()
	}
}

// Close releases every subscriber and the lazily opened outputs.
func (d *Daemon) Close() error {
	var err error
	keep := func(e error) {
		if e != nil && err == nil {
			err = e
		}
	}
	if d.obstacleSub != nil {
		keep(d.obstacleSub.Close())
	}
	for _, sub := range d.sensorSubs {
		keep(sub.Close())
	}
	if d.attitudeSub != nil {
		keep(d.attitudeSub.Close())
	}
	if d.setpointSub != nil {
		keep(d.setpointSub.Close())
	}
	if d.inputSub != nil {
		keep(d.inputSub.Close())
	}
	keep(d.controller.Close())
	return err
}
