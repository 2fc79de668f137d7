package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal/log"
)

type MessageCreator[T any] func(log.Event) (T, error)

// Publisher sends events of one type on one topic. The underlying transport
// is opened on the first Send and released by Close.
type Publisher[T any] struct {
	name      string
	bus       Bus
	transport Transport
	creator   MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	if p.transport == nil {
		p.transport, err = p.bus.OpenPublisher(p.name)
		if err != nil {
			return errors.Wrapf(err, "could not open publisher %s", p.name)
		}
	}
	return p.transport.Send(b)
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	arena := capnp.SingleSegment(nil)

	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		panic(err)
	}

	event, err := log.NewRootEvent(seg)
	if err != nil {
		panic(err)
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = p.creator(event)
	if err != nil {
		panic(err)
	}

	return msg, obj
}

func (p *Publisher[T]) Opened() bool {
	return p.transport != nil
}

func (p *Publisher[T]) Close() error {
	if p.transport == nil {
		return nil
	}
	err := p.transport.Close()
	p.transport = nil
	return err
}

func NewPublisher[T any](bus Bus, name string, creator MessageCreator[T]) *Publisher[T] {
	return &Publisher[T]{
		name:    name,
		bus:     bus,
		creator: creator,
	}
}
