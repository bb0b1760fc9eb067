package commands

import (
	"errors"

	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"
)

// PublishOutboxCommand relays one batch of stored domain events to the
// message bus.
//
// Example:
//
//	cmd, _ := NewPublishOutboxCommand(100)
//	handler := NewPublishOutboxCommandHandler(uowFactory, publisher)
//
//	// Run periodically from the relay job
//	published, err := handler.Handle(ctx, cmd)
type PublishOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

var ErrPublishOutboxCommandIsNotConstructed = errors.New(
	"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
)

func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, nil)
	}
	return PublishOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

func (c *PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}
