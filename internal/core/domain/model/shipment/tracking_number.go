package shipment

import (
	"fmt"
	"regexp"

	"colis/internal/pkg/errs"
)

var trackingNumberPattern = regexp.MustCompile(`^([A-Z]{3})-([A-Z]{3})-([A-HJ-NP-Z2-9]{8})$`)

// TrackingNumber identifies a shipment publicly. Its format is
// DEP-ARR-SUFFIX: the departure and arrival agency codes followed by eight
// random characters, e.g. BRU-LGG-7KQ2M9XD.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber parses and validates a tracking number.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("%q does not match DEP-ARR-XXXXXXXX", value))
	}
	return TrackingNumber{value: value}, nil
}

func (t TrackingNumber) String() string { return t.value }

// DepartureCode returns the departure agency code.
func (t TrackingNumber) DepartureCode() string {
	return trackingNumberPattern.FindStringSubmatch(t.value)[1]
}

// ArrivalCode returns the arrival agency code.
func (t TrackingNumber) ArrivalCode() string {
	return trackingNumberPattern.FindStringSubmatch(t.value)[2]
}

func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	return nil
}
