// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"colis/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Header keys set on every message.
const (
	HeaderEventName = "event-name"
	HeaderEventID   = "event-id"
)

// Writer is the part of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer implements ports.EventPublisher. Messages are keyed by aggregate
// id and hashed to a partition, so the events of one shipment stay ordered.
type Producer struct {
	writer Writer
}

var _ ports.EventPublisher = (*Producer)(nil)

func NewProducer(brokerURL, topic string) *Producer {
	return NewProducerWithWriter(&skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	})
}

func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish writes the batch. It returns an error if any message was not acknowledged.
func (p *Producer) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	msgs := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, skafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []skafka.Header{
				{Key: HeaderEventName, Value: []byte(m.Name)},
				{Key: HeaderEventID, Value: []byte(m.ID.String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
