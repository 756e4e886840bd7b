package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/voucher"
)

// VoucherRule applies the customer's voucher code to every cart item. The
// in-pipeline gate checks only that the code is configured and that no cart
// brand is excluded for it; tier and category restrictions are enforced by
// voucher.Validator on its separate call path and deliberately not
// duplicated here.
type VoucherRule struct {
	Rules voucher.Rules
}

// Apply implements Rule.
func (r VoucherRule) Apply(ctx *Context) {
	code := ctx.Customer.VoucherCode
	if code == "" {
		return
	}
	pct, ok := r.Rules.Percent(code)
	if !ok {
		return
	}
	if r.Rules.BrandExcluded(code, ctx.Items) {
		return
	}
	for _, it := range ctx.Items {
		price := ctx.UnitPrice(it.Product.ID)
		amount := price.Mul(pct).Div(hundred)
		ctx.SetUnitPrice(it.Product.ID, price.Sub(amount))
		ctx.Record(AppliedDiscount{
			Name:   fmt.Sprintf("Voucher %s", code),
			Amount: amount.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
}
