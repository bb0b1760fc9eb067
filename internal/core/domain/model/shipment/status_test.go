package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		apply   func(Status) (Status, error)
		want    Status
		wantErr error
	}{
		{"confirm draft", Draft, Status.Confirm, Confirmed, nil},
		{"confirm confirmed", Confirmed, Status.Confirm, Unknown, ErrNotDraft},
		{"complete confirmed", Confirmed, Status.Complete, Completed, nil},
		{"complete draft", Draft, Status.Complete, Unknown, ErrNotConfirmed},
		{"complete cancelled", Cancelled, Status.Complete, Unknown, ErrAlreadyTerminal},
		{"cancel draft", Draft, Status.Cancel, Cancelled, nil},
		{"cancel confirmed", Confirmed, Status.Cancel, Cancelled, nil},
		{"cancel cancelled", Cancelled, Status.Cancel, Unknown, ErrAlreadyTerminal},
		{"cancel completed", Completed, Status.Cancel, Unknown, ErrAlreadyTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Unknown(t *testing.T) {
	_, err := Unknown.Cancel()
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN", Status(42).String())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, Confirmed, s)

	_, err = ParseStatus("UNKNOWN")
	assert.Error(t, err)
}

func TestTrackingNumber(t *testing.T) {
	tn, err := NewTrackingNumber("BRU-LGG-7KQ2M9XD")
	require.NoError(t, err)
	assert.Equal(t, "BRU", tn.DepartureCode())
	assert.Equal(t, "LGG", tn.ArrivalCode())

	for _, bad := range []string{"", "BRU-LGG-7KQ2M9X", "bru-LGG-7KQ2M9XD", "BRU-LGG-7KQ2M9X0", "BRULGG7KQ2M9XD"} {
		_, err = NewTrackingNumber(bad)
		assert.Error(t, err, bad)
	}
}
