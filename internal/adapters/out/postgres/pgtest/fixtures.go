package pgtest

import (
	"context"
	"time"

	"colis/internal/adapters/out/postgres/agencyrepo"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Now is the fixed clock of the fixtures.
var Now = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

// InsertAgency stores an agency row and returns its id.
func InsertAgency(ctx context.Context, db *gorm.DB, code string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := db.WithContext(ctx).Create(&agencyrepo.AgencyDTO{ID: id.Bytes(), Code: code, Name: code + " agency"}).Error
	return id, err
}

// NewQuote builds a two parcel quote between random agencies.
func NewQuote() (quote.Quote, error) {
	p1, err := quote.NewParcel(decimal.NewFromInt(10), decimal.NewFromInt(20), decimal.NewFromInt(30), decimal.NewFromInt(2))
	if err != nil {
		return quote.Quote{}, err
	}
	p2, err := quote.NewParcel(decimal.NewFromInt(50), decimal.NewFromInt(40), decimal.NewFromInt(30), decimal.RequireFromString("4.5"))
	if err != nil {
		return quote.Quote{}, err
	}
	route, err := quote.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	if err != nil {
		return quote.Quote{}, err
	}
	return quote.NewQuote(
		kernel.NewUUID(), []quote.Parcel{p1, p2},
		decimal.RequireFromString("6.5"), p1.Volume().Add(p2.Volume()), decimal.RequireFromString("31.40"),
		route, Now, Now.Add(quote.DefaultDraftTTL),
	)
}

var trackingSuffix = []byte("ABCDEFGHJKLMNPQR")

// NewConfirmedShipment promotes q for userID. Each call gets a distinct
// tracking number as long as fewer than 16 are created per test.
func NewConfirmedShipment(q quote.Quote, userID kernel.UUID, n int) (*shipment.Shipment, error) {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = trackingSuffix[(n+i)%len(trackingSuffix)]
	}
	tn, err := shipment.NewTrackingNumber("BRU-LGG-" + string(suffix))
	if err != nil {
		return nil, err
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), q, userID, kernel.NewUUID(), tn, Now)
	if err != nil {
		return nil, err
	}
	if err = s.Confirm(Now); err != nil {
		return nil, err
	}
	return s, nil
}
