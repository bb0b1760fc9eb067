package commands_test

import (
	"errors"
	"testing"
	"time"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/ports"
	"colis/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxBatch() []ports.OutboxMessage {
	return []ports.OutboxMessage{
		{ID: uuid.New(), Name: "shipment.confirmed", AggregateID: uuid.New(), Payload: []byte(`{}`), OccurredAt: time.Now()},
		{ID: uuid.New(), Name: "shipment.paid", AggregateID: uuid.New(), Payload: []byte(`{}`), OccurredAt: time.Now()},
	}
}

func TestPublishOutboxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	batch := outboxBatch()
	cmd, err := commands.NewPublishOutboxCommand(50)
	require.NoError(t, err)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnprocessed", ctx, 50).Return(batch, nil).Once(),
		publisher.On("Publish", ctx, batch).Return(nil).Once(),
		repo.On("MarkProcessed", ctx, []uuid.UUID{batch[0].ID, batch[1].ID}, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewPublishOutboxCommandHandler(newFactory[commands.OutboxUoW](uow), publisher)
	published, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPublishOutboxCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPublishOutboxCommand(10)
	require.NoError(t, err)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewPublishOutboxCommandHandler(newFactory[commands.OutboxUoW](uow), publisher)
	published, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPublishOutboxCommandHandler_Handle_PublishFails(t *testing.T) {
	ctx := t.Context()
	batch := outboxBatch()
	cmd, err := commands.NewPublishOutboxCommand(10)
	require.NoError(t, err)
	brokerErr := errors.New("broker unavailable")

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 10).Return(batch, nil).Once()
	publisher.On("Publish", ctx, batch).Return(brokerErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewPublishOutboxCommandHandler(newFactory[commands.OutboxUoW](uow), publisher)
	published, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, brokerErr)
	assert.Zero(t, published)
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewPublishOutboxCommand_InvalidBatch(t *testing.T) {
	_, err := commands.NewPublishOutboxCommand(0)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
