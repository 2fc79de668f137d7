package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal/log"
)

type Reader[T any] func(log.Event) (T, error)

type Subscriber[T any] struct {
	Sub    Transport
	reader Reader[T]
}

// Read decodes the next pending event. success is false when nothing new
// arrived or the event could not be decoded.
func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, false
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := log.ReadRootEvent(msg)
	if err != nil {
		return obj, false
	}

	obj, err = s.reader(event)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func (s *Subscriber[T]) Close() error {
	return s.Sub.Close()
}

func NewSubscriber[T any](bus Bus, name string, reader Reader[T], conflate bool) (*Subscriber[T], error) {
	sub, err := bus.OpenSubscriber(name, conflate)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open subscriber %s", name)
	}
	return &Subscriber[T]{Sub: sub, reader: reader}, nil
}
