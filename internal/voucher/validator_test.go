package voucher

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/catalog"
)

func demoCart() cart.Cart {
	return cart.Cart{
		{
			Product: catalog.Product{
				ID:        "prod_001",
				Brand:     "PUMA",
				Category:  "T-shirts",
				BasePrice: decimal.RequireFromString("1000.00"),
			},
			Quantity: 1,
		},
		{
			Product: catalog.Product{
				ID:        "prod_002",
				Brand:     "NIKE",
				Category:  "Shoes",
				BasePrice: decimal.RequireFromString("2000.00"),
			},
			Quantity: 1,
		},
	}
}

func demoRules() Rules {
	return Rules{
		Percentages: map[string]decimal.Decimal{
			"SUPER69": decimal.RequireFromString("69"),
			"GOLD10":  decimal.RequireFromString("10"),
		},
		BrandExclusions:      map[string][]string{"SUPER69": {"NIKE"}},
		CategoryRestrictions: map[string][]string{"GOLD10": {"T-shirts", "Shoes"}},
		TierRequirements:     map[string]string{"GOLD10": "gold"},
	}
}

func TestCheckUnknownCode(t *testing.T) {
	v := Validator{Rules: demoRules()}
	err := v.Check("NOPE", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "regular"})
	if !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
}

func TestCheckTierRequirement(t *testing.T) {
	v := Validator{Rules: demoRules()}
	err := v.Check("GOLD10", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "silver"})
	if !errors.Is(err, ErrTierRequirementUnmet) {
		t.Fatalf("expected ErrTierRequirementUnmet, got %v", err)
	}
}

func TestCheckTierComparisonIsCaseInsensitive(t *testing.T) {
	v := Validator{Rules: demoRules()}
	if err := v.Check("GOLD10", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "GOLD"}); err != nil {
		t.Fatalf("expected GOLD to satisfy gold requirement, got %v", err)
	}
}

func TestCheckBrandExclusion(t *testing.T) {
	v := Validator{Rules: demoRules()}
	err := v.Check("SUPER69", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "regular"})
	if !errors.Is(err, ErrBrandExcluded) {
		t.Fatalf("expected ErrBrandExcluded, got %v", err)
	}
}

func TestCheckCategoryRestriction(t *testing.T) {
	rules := demoRules()
	rules.CategoryRestrictions["GOLD10"] = []string{"T-shirts"}
	v := Validator{Rules: rules}
	err := v.Check("GOLD10", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "gold"})
	if !errors.Is(err, ErrCategoryRestricted) {
		t.Fatalf("expected ErrCategoryRestricted, got %v", err)
	}
}

func TestCheckPassesEligibleCode(t *testing.T) {
	v := Validator{Rules: demoRules()}
	if err := v.Check("GOLD10", demoCart(), cart.CustomerProfile{ID: "c1", Tier: "gold"}); err != nil {
		t.Fatalf("expected eligible code, got %v", err)
	}
}

func TestValidateBoolean(t *testing.T) {
	v := Validator{Rules: demoRules()}
	customer := cart.CustomerProfile{ID: "c1", Tier: "gold"}
	if !v.Validate("GOLD10", demoCart(), customer) {
		t.Fatal("expected GOLD10 to validate")
	}
	if v.Validate("SUPER69", demoCart(), customer) {
		t.Fatal("expected SUPER69 to fail on brand exclusion")
	}
}

func TestCheckHasNoSideEffects(t *testing.T) {
	v := Validator{Rules: demoRules()}
	items := demoCart()
	_ = v.Check("SUPER69", items, cart.CustomerProfile{ID: "c1", Tier: "regular"})
	if got := items.Subtotal().StringFixed(2); got != "3000.00" {
		t.Fatalf("expected cart untouched, subtotal %s", got)
	}
}
