package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"colis/internal/core/ports"

	"github.com/google/uuid"
	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestProducer_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)
	aggregateID := uuid.New()
	msg := ports.OutboxMessage{
		ID:          uuid.New(),
		Name:        "shipment.paid",
		AggregateID: aggregateID,
		Payload:     []byte(`{"paid":true}`),
		OccurredAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	err := p.Publish(t.Context(), []ports.OutboxMessage{msg})

	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, aggregateID.String(), string(fw.msgs[0].Key))
	assert.JSONEq(t, `{"paid":true}`, string(fw.msgs[0].Value))
	assert.Equal(t, msg.OccurredAt, fw.msgs[0].Time)
	assert.Contains(t, fw.msgs[0].Headers, skafka.Header{Key: HeaderEventName, Value: []byte("shipment.paid")})
}

func TestProducer_PublishEmptyBatch(t *testing.T) {
	fw := &fakeWriter{err: errors.New("must not be called")}

	assert.NoError(t, NewProducerWithWriter(fw).Publish(t.Context(), nil))
}

func TestProducer_WriteError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("leader not available")}

	err := NewProducerWithWriter(fw).Publish(t.Context(), []ports.OutboxMessage{{ID: uuid.New(), Name: "x"}})

	assert.ErrorContains(t, err, "leader not available")
}

func TestProducer_Close(t *testing.T) {
	fw := &fakeWriter{}

	require.NoError(t, NewProducerWithWriter(fw).Close())
	assert.True(t, fw.closed)
}
