package broker

import "context"

// Message is a consumed record, detached from the client library.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
	Headers   map[string]string
}

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

// Handler processes one message. A non-nil error stops consumption and the
// message is left uncommitted.
type Handler interface {
	Handle(ctx context.Context, msg Message) error
}

type HandlerFunc func(ctx context.Context, msg Message) error

func (f HandlerFunc) Handle(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
