package voucher

import (
	"errors"
	"strings"

	"github.com/noah-isme/discount-engine/internal/cart"
)

var (
	// ErrUnknownCode is returned when the code has no configured percentage.
	ErrUnknownCode = errors.New("voucher code not recognised")
	// ErrTierRequirementUnmet indicates the customer tier does not match the
	// tier the code requires.
	ErrTierRequirementUnmet = errors.New("voucher requires a different customer tier")
	// ErrBrandExcluded indicates the cart contains a brand the code excludes.
	ErrBrandExcluded = errors.New("voucher excluded for a brand in the cart")
	// ErrCategoryRestricted indicates a cart item falls outside the code's
	// allowed categories.
	ErrCategoryRestricted = errors.New("voucher restricted to other categories")
)

// Validator answers voucher eligibility questions independently of the
// pricing pipeline, so callers can pre-validate a code or explain a
// rejection to the customer. It never mutates anything.
//
// Note: the in-pipeline voucher rule gates only on code existence and brand
// exclusions; this validator additionally enforces tier and category checks.
type Validator struct {
	Rules Rules
}

// Check returns the first failed eligibility check, or nil when the code can
// be applied. Checks run in order: code existence, tier requirement, brand
// exclusions, category restrictions.
func (v Validator) Check(code string, items cart.Cart, customer cart.CustomerProfile) error {
	if _, ok := v.Rules.Percent(code); !ok {
		return ErrUnknownCode
	}
	if tier, ok := v.Rules.TierRequirements[code]; ok {
		if !strings.EqualFold(customer.Tier, tier) {
			return ErrTierRequirementUnmet
		}
	}
	if v.Rules.BrandExcluded(code, items) {
		return ErrBrandExcluded
	}
	if allowed, ok := v.Rules.CategoryRestrictions[code]; ok {
		for _, it := range items {
			if !containsCategory(allowed, it.Product.Category) {
				return ErrCategoryRestricted
			}
		}
	}
	return nil
}

// Validate reports whether the code passes every eligibility check.
func (v Validator) Validate(code string, items cart.Cart, customer cart.CustomerProfile) bool {
	return v.Check(code, items, customer) == nil
}

func containsCategory(allowed []string, category string) bool {
	for _, c := range allowed {
		if c == category {
			return true
		}
	}
	return false
}
