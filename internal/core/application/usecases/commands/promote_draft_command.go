package commands

import (
	"errors"
	"fmt"
	"strings"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"
)

var ErrPromoteDraftCommandIsNotConstructed = errors.New(
	"PromoteDraftCommand must be created via NewPromoteDraftCommand constructor",
)

// PromoteDraftCommand turns the draft carried by token into a shipment owned
// by userID.
type PromoteDraftCommand struct { //nolint:recvcheck //using for validation
	token          string
	userID         kernel.UUID
	destinataireID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPromoteDraftCommand rejects an empty token with ErrInvalidDraft, the
// same outcome as a token that does not verify.
func NewPromoteDraftCommand(token string, userID, destinataireID kernel.UUID) (PromoteDraftCommand, error) {
	cmd := PromoteDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setUserID(userID),
		cmd.setDestinataireID(destinataireID),
	); err != nil {
		return PromoteDraftCommand{}, err
	}

	return cmd, nil
}

func (c PromoteDraftCommand) Validate() error {
	return c.guard.Validate(ErrPromoteDraftCommandIsNotConstructed)
}

func (c PromoteDraftCommand) Token() string               { return c.token }
func (c PromoteDraftCommand) UserID() kernel.UUID         { return c.userID }
func (c PromoteDraftCommand) DestinataireID() kernel.UUID { return c.destinataireID }

func (c *PromoteDraftCommand) setToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, errs.NewValueIsRequiredError("token"))
	}
	c.token = token
	return nil
}

func (c *PromoteDraftCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("userId: %w", err)
	}
	c.userID = id
	return nil
}

func (c *PromoteDraftCommand) setDestinataireID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("destinataireId: %w", err)
	}
	c.destinataireID = id
	return nil
}
