package kafkabroker

import (
	"context"
	"errors"
	"strings"

	"github.com/Egor213/LogHandler/internal/broker"
	errorsUtils "github.com/Egor213/LogHandler/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a topic as part of a consumer group and commits each message
// after its handler succeeds.
type Consumer struct {
	reader messageReader
	topic  string
	notify chan error
	cancel context.CancelFunc
	done   chan struct{}
}

func NewConsumer(cfg ConsumerConfig) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return newConsumer(r, cfg.Topic)
}

func newConsumer(r messageReader, topic string) *Consumer {
	return &Consumer{
		reader: r,
		topic:  topic,
		notify: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start runs the consume loop in the background until Shutdown or a handler
// error. The error, if any, is delivered on Notify.
func (c *Consumer) Start(h broker.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		defer close(c.done)
		if err := c.Run(ctx, h); err != nil {
			c.notify <- err
		}
		close(c.notify)
	}()
}

// Run blocks until ctx is done or the handler fails.
func (c *Consumer) Run(ctx context.Context, h broker.Handler) error {
	log.WithField("topic", c.topic).Info("Kafka consumer started")
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return errorsUtils.WrapPathErr(err)
		}

		if err := h.Handle(ctx, toMessage(m)); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errorsUtils.WrapPathErr(err)
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errorsUtils.WrapPathErr(err)
		}
	}
}

func (c *Consumer) Notify() <-chan error {
	return c.notify
}

func (c *Consumer) Shutdown() error {
	log.Info("Closing Kafka consumer...")
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	return c.reader.Close()
}

func toMessage(m kafka.Message) broker.Message {
	headers := make(map[string]string, len(m.Headers))
	for _, h := range m.Headers {
		headers[strings.ToLower(h.Key)] = string(h.Value)
	}
	return broker.Message{
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Key:       m.Key,
		Value:     m.Value,
		Headers:   headers,
	}
}
