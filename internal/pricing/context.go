package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
)

// Context carries the mutable state of one pricing run: the running unit
// price per product and the append-only log of applied discounts. A Context
// is created fresh per calculation, owned exclusively by the engine for the
// duration of one Price call, and discarded afterwards.
type Context struct {
	Items    cart.Cart
	Customer cart.CustomerProfile
	Payment  *cart.PaymentInfo

	prices  map[string]decimal.Decimal
	applied []AppliedDiscount
}

// NewContext initialises every running price to the product's base price.
func NewContext(items cart.Cart, customer cart.CustomerProfile, payment *cart.PaymentInfo) *Context {
	prices := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		prices[it.Product.ID] = it.Product.BasePrice
	}
	return &Context{
		Items:    items,
		Customer: customer,
		Payment:  payment,
		prices:   prices,
	}
}

// UnitPrice returns the current running price for a product. The value may
// be negative while rules stack; clamping happens only in FinalTotal.
func (c *Context) UnitPrice(productID string) decimal.Decimal {
	return c.prices[productID]
}

// SetUnitPrice replaces the running price for a product.
func (c *Context) SetUnitPrice(productID string, price decimal.Decimal) {
	c.prices[productID] = price
}

// Record appends a discount to the log. Entries are never overwritten or
// deduplicated; aggregation by name happens at the engine level.
func (c *Context) Record(d AppliedDiscount) {
	c.applied = append(c.applied, d)
}

// Applied returns the discount log in application order.
func (c *Context) Applied() []AppliedDiscount {
	return c.applied
}

// OriginalTotal sums base price × quantity over the immutable cart,
// independent of any rule mutation.
func (c *Context) OriginalTotal() decimal.Decimal {
	return c.Items.Subtotal()
}

// FinalTotal sums the running prices clamped at zero, scaled by quantity.
// The stored per-item price itself is never clamped, so a later rule always
// sees the mathematically discounted basis.
func (c *Context) FinalTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		price := c.prices[it.Product.ID]
		if price.IsNegative() {
			price = decimal.Zero
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
