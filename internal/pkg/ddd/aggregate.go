// Package ddd holds the small building blocks shared by aggregates that
// record domain events for the transactional outbox.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate. Events are serialized as
// JSON into the outbox, so implementations keep their payload in exported fields.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
	// AggregateID is used as the message key so events of one aggregate
	// stay ordered on a partitioned bus.
	AggregateID() uuid.UUID
}

// AggregateRoot is implemented by aggregates whose events must be relayed.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregate is embedded in aggregates to collect events.
type BaseAggregate struct {
	events []DomainEvent
}

// RaiseDomainEvent appends an event to the aggregate's pending list.
func (a *BaseAggregate) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DomainEvents returns a copy of the pending events.
func (a *BaseAggregate) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// ClearDomainEvents drops pending events once they are persisted.
func (a *BaseAggregate) ClearDomainEvents() {
	a.events = nil
}

// BaseEvent carries the metadata common to every event.
type BaseEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Aggregate  uuid.UUID `json:"aggregateId"`
	OccurredOn time.Time `json:"occurredAt"`
}

// NewBaseEvent stamps a new event for the given aggregate.
func NewBaseEvent(name string, aggregateID uuid.UUID) BaseEvent {
	return BaseEvent{
		ID:         uuid.New(),
		Name:       name,
		Aggregate:  aggregateID,
		OccurredOn: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.ID }
func (e BaseEvent) EventName() string      { return e.Name }
func (e BaseEvent) OccurredAt() time.Time  { return e.OccurredOn }
func (e BaseEvent) AggregateID() uuid.UUID { return e.Aggregate }
