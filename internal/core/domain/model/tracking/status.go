package tracking

import (
	"fmt"
	"strings"

	"colis/internal/pkg/errs"
)

// Status is the physical delivery progress reported by an operator. It is
// independent of the shipment lifecycle: a Cancelled tracking event does not
// cancel the shipment, and Returned has no lifecycle counterpart.
type Status string

const (
	Pending   Status = "PENDING"
	Sent      Status = "SENT"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
	Returned  Status = "RETURNED"
)

// ParseStatus accepts a status name in any case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Sent, Delivered, Cancelled, Returned:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a tracking status", string(s)))
}

func (s Status) String() string { return string(s) }
