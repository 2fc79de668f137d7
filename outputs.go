package main

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal"
	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/cereal/log"
	"pfeifer.dev/colprev/collision"
	ms "pfeifer.dev/colprev/settings"
	"pfeifer.dev/colprev/utils"
)

// Outputs publishes what the controller produces: constraint reports and
// user facing warnings. Both publishers open on first use.
type Outputs struct {
	constraints *cereal.Publisher[custom.CollisionConstraints]
	logs        *cereal.Publisher[log.LogMessage]
}

func NewOutputs(bus cereal.Bus) *Outputs {
	return &Outputs{
		constraints: cereal.NewPublisher(bus, ms.COLLISION_CONSTRAINTS_TOPIC, cereal.CollisionConstraintsCreator),
		logs:        cereal.NewPublisher(bus, ms.LOG_MESSAGE_TOPIC, cereal.LogMessageCreator),
	}
}

func (o *Outputs) Alert(text string) {
	msg, out := o.logs.NewMessage(true)
	out.SetTimestamp(cereal.GetTime())
	out.SetSeverity(log.SEVERITY_CRITICAL)
	err := out.SetText(text)
	if err != nil {
		utils.Loge(errors.Wrap(err, "could not set log message text"))
		return
	}
	utils.Loge(errors.Wrap(o.logs.Send(msg), "could not send log message"))
}

func (o *Outputs) PublishConstraints(report collision.ConstraintsReport) error {
	msg, out := o.constraints.NewMessage(true)
	out.SetTimestamp(report.Timestamp)

	lists := []struct {
		create func(int32) (capnp.Float32List, error)
		values [2]float64
	}{
		{out.NewConstraintsNormalizedX, [2]float64{report.NormalizedX.Negative, report.NormalizedX.Positive}},
		{out.NewConstraintsNormalizedY, [2]float64{report.NormalizedY.Negative, report.NormalizedY.Positive}},
		{out.NewOriginalSetpoint, [2]float64{report.OriginalSetpoint.X, report.OriginalSetpoint.Y}},
		{out.NewAdaptedSetpoint, [2]float64{report.AdaptedSetpoint.X, report.AdaptedSetpoint.Y}},
	}
	for _, l := range lists {
		list, err := l.create(int32(len(l.values)))
		if err != nil {
			return errors.Wrap(err, "could not allocate constraints list")
		}
		for i, v := range l.values {
			list.Set(i, float32(v))
		}
	}

	return errors.Wrap(o.constraints.Send(msg), "could not send collision constraints")
}

// Close releases both publishers. It is safe to call more than once.
func (o *Outputs) Close() error {
	err := o.constraints.Close()
	if logErr := o.logs.Close(); err == nil {
		err = logErr
	}
	return err
}
