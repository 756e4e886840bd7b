package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BrandRule discounts items of configured brands by a percentage of the
// running price. Items whose brand has no entry are left untouched and
// produce no record.
type BrandRule struct {
	// Discounts maps brand names to their discount percentage (0-100).
	Discounts map[string]decimal.Decimal
}

// Apply implements Rule.
func (r BrandRule) Apply(ctx *Context) {
	for _, it := range ctx.Items {
		pct, ok := r.Discounts[it.Product.Brand]
		if !ok {
			continue
		}
		price := ctx.UnitPrice(it.Product.ID)
		amount := price.Mul(pct).Div(hundred)
		ctx.SetUnitPrice(it.Product.ID, price.Sub(amount))
		ctx.Record(AppliedDiscount{
			Name:   fmt.Sprintf("%s Brand Discount", it.Product.Brand),
			Amount: amount.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
}
