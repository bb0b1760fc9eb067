package ports

import (
	"colis/internal/core/domain/model/quote"
	"colis/internal/pkg/errs"
)

var (
	ErrMalformedToken   = errs.NewValueIsInvalidError("draft token is malformed")
	ErrInvalidSignature = errs.NewValueIsInvalidError("draft token signature does not verify")
	ErrExpiredToken     = errs.NewValueIsInvalidError("draft token has expired")
)

// DraftTokenCodec turns a quote into an opaque, signed, expiring string and
// back. It performs no I/O. Decode fails closed: it returns one of the
// errors above and never a partially trusted quote.
type DraftTokenCodec interface {
	Encode(q quote.Quote) (string, error)
	Decode(token string) (quote.Quote, error)
}
