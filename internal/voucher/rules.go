package voucher

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
)

// Rules holds the voucher configuration tables. A Rules value is immutable
// once built and may be shared across concurrent pricing runs; runtime
// reconfiguration requires swapping the whole value, never mutating a table
// in place.
type Rules struct {
	// Percentages maps voucher codes to their discount percentage (0-100).
	Percentages map[string]decimal.Decimal
	// BrandExclusions maps codes to brands the voucher must not touch.
	BrandExclusions map[string][]string
	// CategoryRestrictions maps codes to the only categories they cover.
	CategoryRestrictions map[string][]string
	// TierRequirements maps codes to a required customer tier, compared
	// case-insensitively.
	TierRequirements map[string]string
}

// Percent returns the configured discount percentage for a code.
func (r Rules) Percent(code string) (decimal.Decimal, bool) {
	pct, ok := r.Percentages[code]
	return pct, ok
}

// BrandExcluded reports whether any cart item carries a brand the code
// excludes. Codes without an exclusion list never exclude anything.
func (r Rules) BrandExcluded(code string, items cart.Cart) bool {
	excluded, ok := r.BrandExclusions[code]
	if !ok {
		return false
	}
	for _, it := range items {
		for _, brand := range excluded {
			if it.Product.Brand == brand {
				return true
			}
		}
	}
	return false
}
