package shipment

import (
	"fmt"
	"strings"

	"colis/internal/pkg/errs"
)

var (
	// ErrAlreadyTerminal is returned when a transition is attempted out of
	// Cancelled or Completed.
	ErrAlreadyTerminal = errs.NewStateConflictError("shipment status is already terminal")

	// ErrNotConfirmed is returned by transitions that require Confirmed.
	ErrNotConfirmed = errs.NewStateConflictError("shipment is not confirmed")

	// ErrNotDraft is returned when confirming a shipment that left Draft.
	ErrNotDraft = errs.NewStateConflictError("shipment is not a draft")

	// ErrNotDeletable is returned when soft-deleting a shipment that is
	// neither Cancelled nor Completed.
	ErrNotDeletable = errs.NewStateConflictError("shipment is neither cancelled nor completed")
)

// Status is the lifecycle state of a shipment.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Completed
//	  │           │
//	  └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Soft deletion is a separate flag.
type Status int

const (
	Unknown Status = iota
	Draft
	Confirmed
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Confirmed: "CONFIRMED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts the persisted or wire name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == strings.ToUpper(s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Draft || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no lifecycle transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Confirm transitions Draft -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s", ErrAlreadyTerminal, s)
	}
	if s != Draft {
		return Unknown, fmt.Errorf("%w: %s", ErrNotDraft, s)
	}
	return Confirmed, nil
}

// Complete transitions Confirmed -> Completed.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s", ErrAlreadyTerminal, s)
	}
	if s != Confirmed {
		return Unknown, fmt.Errorf("%w: %s", ErrNotConfirmed, s)
	}
	return Completed, nil
}

// Cancel transitions Draft or Confirmed -> Cancelled. Cancelling a terminal
// status is reported, never silently accepted.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s", ErrAlreadyTerminal, s)
	}
	return Cancelled, nil
}

// ValidateDelete checks that soft deletion is allowed from s.
func (s Status) ValidateDelete() error {
	if !s.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrNotDeletable, s)
	}
	return nil
}
