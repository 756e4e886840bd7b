package cart

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/catalog"
)

// Item is a single cart line referencing a shared, read-only catalog product.
type Item struct {
	Product  catalog.Product
	Quantity int
	// Size is a display attribute and never participates in pricing.
	Size string
}

// Cart is an ordered list of line items for one checkout. Product ids are
// assumed unique within a cart; duplicates would conflate running prices
// under a single key during pricing.
type Cart []Item

// Subtotal returns the undiscounted cart total: base price × quantity per line.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c {
		line := it.Product.BasePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total
}

// CustomerProfile identifies the buyer for tier and voucher checks.
type CustomerProfile struct {
	ID   string
	Tier string
	// VoucherCode is optional; empty means no voucher was supplied.
	VoucherCode string
}

// PaymentInfo describes the tender used at checkout. Only BankName
// participates in pricing.
type PaymentInfo struct {
	Method   string
	BankName string
	CardType string
}
