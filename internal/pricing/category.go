package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryRule discounts items of configured product categories by a
// percentage of the running price.
type CategoryRule struct {
	// Discounts maps category names to their discount percentage (0-100).
	Discounts map[string]decimal.Decimal
}

// Apply implements Rule.
func (r CategoryRule) Apply(ctx *Context) {
	for _, it := range ctx.Items {
		pct, ok := r.Discounts[it.Product.Category]
		if !ok {
			continue
		}
		price := ctx.UnitPrice(it.Product.ID)
		amount := price.Mul(pct).Div(hundred)
		ctx.SetUnitPrice(it.Product.ID, price.Sub(amount))
		ctx.Record(AppliedDiscount{
			Name:   fmt.Sprintf("%s Category Discount", it.Product.Category),
			Amount: amount.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
}
