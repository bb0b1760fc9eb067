// Package agency models the drop-off/pick-up agencies referenced by quotes,
// shipments and appointments. Agencies are managed elsewhere; the engine only
// reads them.
package agency

import (
	"errors"
	"fmt"
	"regexp"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
)

var ErrAgencyIsNotConstructed = errors.New("Agency must be created via NewAgency constructor")

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Agency is identified by ID and carries a three-letter code used as the
// human-readable part of tracking numbers.
type Agency struct {
	id   kernel.UUID
	code string
	name string

	isConstructed bool
}

func NewAgency(id kernel.UUID, code, name string) (*Agency, error) {
	a := &Agency{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setCode(code),
	); err != nil {
		return nil, err
	}
	a.name = name

	return a, nil
}

func (a *Agency) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgencyIsNotConstructed
	}
	return nil
}

func (a *Agency) ID() kernel.UUID { return a.id }
func (a *Agency) Code() string    { return a.code }
func (a *Agency) Name() string    { return a.name }

func (a *Agency) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agency) setCode(code string) error {
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("agency code", fmt.Errorf("%q is not three uppercase letters", code))
	}
	a.code = code
	return nil
}
