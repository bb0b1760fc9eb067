package services

import (
	"crypto/rand"
	"fmt"
	"io"

	"colis/internal/core/domain/model/agency"
	"colis/internal/core/domain/model/shipment"
)

// trackingAlphabet is base32 without I, O, 0 and 1, which are easy to misread.
// Its length divides 256, so masking a random byte keeps the draw uniform.
const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const trackingSuffixLength = 8

// TrackingNumberGenerator issues DEP-ARR-XXXXXXXX tracking numbers. The
// suffix gives 32^8 combinations per route; collisions are still caught by
// the unique index on the shipments table.
type TrackingNumberGenerator struct {
	random io.Reader
}

func NewTrackingNumberGenerator() TrackingNumberGenerator {
	return TrackingNumberGenerator{random: rand.Reader}
}

// NewTrackingNumberGeneratorWithSource is used by tests to get reproducible suffixes.
func NewTrackingNumberGeneratorWithSource(random io.Reader) TrackingNumberGenerator {
	return TrackingNumberGenerator{random: random}
}

// Generate returns a fresh tracking number for a shipment travelling from
// departure to arrival.
func (g TrackingNumberGenerator) Generate(departure, arrival *agency.Agency) (shipment.TrackingNumber, error) {
	if err := departure.Validate(); err != nil {
		return shipment.TrackingNumber{}, err
	}
	if err := arrival.Validate(); err != nil {
		return shipment.TrackingNumber{}, err
	}

	buf := make([]byte, trackingSuffixLength)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return shipment.TrackingNumber{}, fmt.Errorf("read random suffix: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	return shipment.NewTrackingNumber(fmt.Sprintf("%s-%s-%s", departure.Code(), arrival.Code(), buf))
}
