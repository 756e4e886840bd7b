package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BankOfferRule discounts every cart item when the payment method's issuing
// bank has a configured offer. Absent payment info or an unknown bank is a
// non-match, not an error.
type BankOfferRule struct {
	// Offers maps bank names to their discount percentage (0-100).
	Offers map[string]decimal.Decimal
}

// Apply implements Rule.
func (r BankOfferRule) Apply(ctx *Context) {
	if ctx.Payment == nil {
		return
	}
	pct, ok := r.Offers[ctx.Payment.BankName]
	if !ok {
		return
	}
	for _, it := range ctx.Items {
		price := ctx.UnitPrice(it.Product.ID)
		amount := price.Mul(pct).Div(hundred)
		ctx.SetUnitPrice(it.Product.ID, price.Sub(amount))
		ctx.Record(AppliedDiscount{
			Name:   fmt.Sprintf("%s Bank Offer", ctx.Payment.BankName),
			Amount: amount.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
}
