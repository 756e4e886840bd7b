package catalog

import "github.com/shopspring/decimal"

// BrandTier classifies a brand's market positioning. Pricing rules do not
// read it today, but it is part of the catalog contract.
type BrandTier string

const (
	BrandTierPremium BrandTier = "premium"
	BrandTierRegular BrandTier = "regular"
	BrandTierBudget  BrandTier = "budget"
)

// Product is an immutable catalog entry referenced by cart items.
type Product struct {
	ID        string
	Brand     string
	BrandTier BrandTier
	Category  string
	BasePrice decimal.Decimal
}
