package cereal

import (
	"sync"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"

	"pfeifer.dev/colprev/settings"
)

// Transport moves already encoded events for a single topic.
type Transport interface {
	Send(data []byte) error
	// Read returns the next pending event or nil when nothing new arrived.
	Read() []byte
	Ready() bool
	Close() error
}

type Bus interface {
	OpenPublisher(name string) (Transport, error)
	OpenSubscriber(name string, conflate bool) (Transport, error)
}

// MsgqBus opens shared memory queues compatible with the rest of the stack.
type MsgqBus struct{}

type msgqTransport struct {
	msgq      gomsgq.Msgq
	pub       gomsgq.MsgqPublisher
	sub       gomsgq.MsgqSubscriber
	publisher bool
}

func openMsgq(name string) (gomsgq.Msgq, error) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		return msgq, errors.Wrapf(err, "could not open msgq %s", name)
	}
	return msgq, nil
}

func (MsgqBus) OpenPublisher(name string) (Transport, error) {
	msgq, err := openMsgq(name)
	if err != nil {
		return nil, err
	}
	t := &msgqTransport{msgq: msgq, publisher: true}
	t.pub.Init(msgq)
	return t, nil
}

func (MsgqBus) OpenSubscriber(name string, conflate bool) (Transport, error) {
	msgq, err := openMsgq(name)
	if err != nil {
		return nil, err
	}
	t := &msgqTransport{msgq: msgq}
	t.sub.Conflate = conflate
	t.sub.Init(msgq)
	return t, nil
}

func (t *msgqTransport) Send(data []byte) error {
	if !t.publisher {
		return errors.New("cannot send on a subscriber")
	}
	t.pub.Send(data)
	return nil
}

func (t *msgqTransport) Read() []byte {
	if t.publisher {
		return nil
	}
	return t.sub.Read()
}

func (t *msgqTransport) Ready() bool {
	if t.publisher {
		return true
	}
	return t.sub.Ready()
}

func (t *msgqTransport) Close() error {
	var err, err2 error
	if t.publisher {
		err, err2 = t.msgq.Close()
	} else {
		err, err2 = t.sub.Msgq.Close()
	}
	if err != nil {
		return errors.Wrap(err, "could not close msgq")
	}
	if err2 != nil {
		return errors.Wrap(err2, "could not close msgq")
	}
	return nil
}

// MemoryBus connects publishers and subscribers inside one process. Every
// topic is a single queue shared by all of its endpoints.
type MemoryBus struct {
	mu     sync.Mutex
	topics map[string]*MemoryTransport
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{topics: map[string]*MemoryTransport{}}
}

func (b *MemoryBus) Topic(name string) *MemoryTransport {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[name]
	if !ok {
		t = &MemoryTransport{}
		b.topics[name] = t
	}
	return t
}

func (b *MemoryBus) OpenPublisher(name string) (Transport, error) {
	t := b.Topic(name)
	t.mu.Lock()
	t.closed = false
	t.mu.Unlock()
	return t, nil
}

func (b *MemoryBus) OpenSubscriber(name string, conflate bool) (Transport, error) {
	t := b.Topic(name)
	t.mu.Lock()
	t.conflate = conflate
	t.closed = false
	t.mu.Unlock()
	return t, nil
}

type MemoryTransport struct {
	mu       sync.Mutex
	queue    [][]byte
	conflate bool
	closed   bool
	sent     int
}

func (t *MemoryTransport) Send(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return errors.New("transport closed")
	}
	msg := make([]byte, len(data))
	copy(msg, data)
	if t.conflate {
		t.queue = [][]byte{msg}
	} else {
		t.queue = append(t.queue, msg)
	}
	t.sent++
	return nil
}

func (t *MemoryTransport) Read() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.queue) == 0 {
		return nil
	}
	msg := t.queue[0]
	t.queue = t.queue[1:]
	return msg
}

func (t *MemoryTransport) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue) > 0
}

func (t *MemoryTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

func (t *MemoryTransport) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Sent counts every event ever sent on the topic.
func (t *MemoryTransport) Sent() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sent
}
