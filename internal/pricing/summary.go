package pricing

import "github.com/shopspring/decimal"

// AppliedDiscount is one audit entry in the discount log. Name doubles as
// the aggregation key; Amount is already scaled by the line quantity.
type AppliedDiscount struct {
	Name        string
	Amount      decimal.Decimal
	Description string
}

// Summary is the result of one pricing run.
type Summary struct {
	OriginalTotal decimal.Decimal
	FinalTotal    decimal.Decimal
	// Discounts aggregates the discount log by name, summing amounts
	// recorded per item under the same name.
	Discounts map[string]decimal.Decimal
	Message   string
}
