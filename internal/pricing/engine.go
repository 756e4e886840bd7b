package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/events"
	"github.com/noah-isme/discount-engine/internal/obs"
)

// Engine runs an ordered list of rules against a fresh Context per call.
// The rule order is caller-supplied and is the entire pricing policy; the
// engine enforces no order of its own. An Engine is stateless between
// calls and safe for concurrent use as long as its configuration is not
// mutated while calculations are in flight.
type Engine struct {
	Rules []Rule
	// Logger is optional; the zero value logs nothing.
	Logger zerolog.Logger
	// Bus is optional; when set, every run emits a pricing.completed event.
	Bus *events.Bus
}

// Price computes the checkout summary for one cart. Each rule sees the
// cumulative effect of all rules before it. An empty cart is not an error:
// both totals are zero and the discount map is empty.
func (e *Engine) Price(ctx context.Context, items cart.Cart, customer cart.CustomerProfile, payment *cart.PaymentInfo) Summary {
	runID := uuid.New()

	pc := NewContext(items, customer, payment)
	for _, rule := range e.Rules {
		rule.Apply(pc)
	}

	discounts := make(map[string]decimal.Decimal, len(pc.Applied()))
	names := make([]string, 0, len(pc.Applied()))
	for _, d := range pc.Applied() {
		if existing, ok := discounts[d.Name]; ok {
			discounts[d.Name] = existing.Add(d.Amount)
			continue
		}
		discounts[d.Name] = d.Amount
		names = append(names, d.Name)
	}

	summary := Summary{
		OriginalTotal: pc.OriginalTotal(),
		FinalTotal:    pc.FinalTotal(),
		Discounts:     discounts,
		Message:       renderMessage(names, discounts),
	}

	e.Logger.Debug().
		Str("run_id", runID.String()).
		Str("customer_id", customer.ID).
		Str("original_total", summary.OriginalTotal.StringFixed(2)).
		Str("final_total", summary.FinalTotal.StringFixed(2)).
		Int("discounts", len(discounts)).
		Msg("pricing_run")

	recordMetrics(names, discounts)

	if e.Bus != nil {
		payload := map[string]any{
			"runId":         runID.String(),
			"customerId":    customer.ID,
			"originalTotal": summary.OriginalTotal.StringFixed(2),
			"finalTotal":    summary.FinalTotal.StringFixed(2),
			"discounts":     len(discounts),
		}
		if _, err := e.Bus.Emit(ctx, events.TopicPricingCompleted, payload); err != nil {
			e.Logger.Warn().Err(err).Str("run_id", runID.String()).Msg("emit pricing event")
		}
	}

	return summary
}

func recordMetrics(names []string, discounts map[string]decimal.Decimal) {
	if obs.PricingRunsTotal != nil {
		outcome := "undiscounted"
		if len(discounts) > 0 {
			outcome = "discounted"
		}
		obs.PricingRunsTotal.WithLabelValues(outcome).Inc()
	}
	if obs.DiscountAppliedTotal == nil && obs.DiscountAmountTotal == nil {
		return
	}
	for _, name := range names {
		if obs.DiscountAppliedTotal != nil {
			obs.DiscountAppliedTotal.WithLabelValues(name).Inc()
		}
		if obs.DiscountAmountTotal != nil {
			obs.DiscountAmountTotal.WithLabelValues(name).Add(discounts[name].InexactFloat64())
		}
	}
}

// renderMessage lists aggregated discounts in first-application order so the
// output is identical across runs on structurally equal inputs.
func renderMessage(names []string, discounts map[string]decimal.Decimal) string {
	if len(names) == 0 {
		return "No discounts applied"
	}
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "Applied discounts:")
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  - %s: ₹%s", name, discounts[name].StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}
