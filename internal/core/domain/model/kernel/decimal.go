package kernel

import (
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RequirePositive checks that value is strictly greater than zero.
func RequirePositive(paramName string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsOutOfRangeError(paramName, value.String(), "0 (exclusive)", "unbounded")
	}
	return nil
}
