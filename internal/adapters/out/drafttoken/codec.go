// Package drafttoken signs quotes into client-held draft tokens.
//
// A token is two base64url segments joined by a dot: the JSON payload and
// the HMAC-SHA256 of that segment under the server secret. The payload is
// only parsed after the signature verifies.
package drafttoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const minSecretLength = 32

var ErrSecretTooShort = fmt.Errorf("draft token secret must be at least %d bytes", minSecretLength)

var encoding = base64.RawURLEncoding

type payload struct {
	ID          uuid.UUID       `json:"id"`
	Parcels     []parcelPayload `json:"parcels"`
	TotalWeight decimal.Decimal `json:"totalWeight"`
	TotalVolume decimal.Decimal `json:"totalVolume"`
	Price       decimal.Decimal `json:"price"`
	Departure   uuid.UUID       `json:"dep"`
	Arrival     uuid.UUID       `json:"arr"`
	IssuedAt    int64           `json:"iat"`
	ExpiresAt   int64           `json:"exp"`
}

type parcelPayload struct {
	Height decimal.Decimal `json:"h"`
	Width  decimal.Decimal `json:"w"`
	Length decimal.Decimal `json:"l"`
	Weight decimal.Decimal `json:"kg"`
}

// Codec implements ports.DraftTokenCodec with HMAC-SHA256.
type Codec struct {
	secret []byte
	now    func() time.Time
}

type Option func(*Codec)

// WithClock replaces the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}
	c := &Codec{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.DraftTokenCodec = (*Codec)(nil)

// Encode signs q. The expiry embedded in the token is q.ExpiresAt().
func (c *Codec) Encode(q quote.Quote) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	p := payload{
		ID:          q.ID().Bytes(),
		TotalWeight: q.TotalWeight(),
		TotalVolume: q.TotalVolume(),
		Price:       q.Price(),
		Departure:   q.Route().DepartureAgencyID.Bytes(),
		Arrival:     q.Route().ArrivalAgencyID.Bytes(),
		IssuedAt:    q.CreatedAt().Unix(),
		ExpiresAt:   q.ExpiresAt().Unix(),
	}
	for _, parcel := range q.Parcels() {
		p.Parcels = append(p.Parcels, parcelPayload{
			Height: parcel.Height(),
			Width:  parcel.Width(),
			Length: parcel.Length(),
			Weight: parcel.Weight(),
		})
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal draft: %w", err)
	}

	body := encoding.EncodeToString(raw)
	return body + "." + encoding.EncodeToString(c.sign(body)), nil
}

// Decode verifies the signature, then the expiry, then rebuilds the quote.
func (c *Codec) Decode(token string) (quote.Quote, error) {
	body, sig, ok := strings.Cut(token, ".")
	if !ok || body == "" || sig == "" || strings.Contains(sig, ".") {
		return quote.Quote{}, ports.ErrMalformedToken
	}

	mac, err := encoding.DecodeString(sig)
	if err != nil {
		return quote.Quote{}, ports.ErrMalformedToken
	}
	if !hmac.Equal(mac, c.sign(body)) {
		return quote.Quote{}, ports.ErrInvalidSignature
	}

	raw, err := encoding.DecodeString(body)
	if err != nil {
		return quote.Quote{}, ports.ErrMalformedToken
	}
	var p payload
	if err = json.Unmarshal(raw, &p); err != nil {
		return quote.Quote{}, fmt.Errorf("%w: %w", ports.ErrMalformedToken, err)
	}

	if c.now().After(time.Unix(p.ExpiresAt, 0)) {
		return quote.Quote{}, ports.ErrExpiredToken
	}

	q, err := p.toQuote()
	if err != nil {
		return quote.Quote{}, fmt.Errorf("%w: %w", ports.ErrMalformedToken, err)
	}
	return q, nil
}

func (c *Codec) sign(body string) []byte {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(body))
	return h.Sum(nil)
}

func (p payload) toQuote() (quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(p.ID[:])
	if err != nil {
		return quote.Quote{}, err
	}
	dep, err := kernel.UUIDFromBytes(p.Departure[:])
	if err != nil {
		return quote.Quote{}, err
	}
	arr, err := kernel.UUIDFromBytes(p.Arrival[:])
	if err != nil {
		return quote.Quote{}, err
	}
	route, err := quote.NewRoute(dep, arr)
	if err != nil {
		return quote.Quote{}, err
	}

	parcels := make([]quote.Parcel, 0, len(p.Parcels))
	var parcelErrs []error
	for _, pp := range p.Parcels {
		parcel, parcelErr := quote.NewParcel(pp.Height, pp.Width, pp.Length, pp.Weight)
		if parcelErr != nil {
			parcelErrs = append(parcelErrs, parcelErr)
			continue
		}
		parcels = append(parcels, parcel)
	}
	if err = errors.Join(parcelErrs...); err != nil {
		return quote.Quote{}, err
	}

	return quote.NewQuote(
		id, parcels, p.TotalWeight, p.TotalVolume, p.Price, route,
		time.Unix(p.IssuedAt, 0), time.Unix(p.ExpiresAt, 0),
	)
}
