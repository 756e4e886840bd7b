package pricing

import "github.com/shopspring/decimal"

// Rule is a self-contained unit of discount logic, applied once per pricing
// run. Apply may read the full cart, customer and payment info from the
// context and mutate running prices and the discount log any number of
// times, but must have no side effects beyond the context: no I/O, no
// randomness, no wall-clock reads.
type Rule interface {
	Apply(ctx *Context)
}

var hundred = decimal.NewFromInt(100)
