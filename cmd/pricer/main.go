package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/catalog"
	"github.com/noah-isme/discount-engine/internal/config"
	"github.com/noah-isme/discount-engine/internal/events"
	"github.com/noah-isme/discount-engine/internal/obs"
	"github.com/noah-isme/discount-engine/internal/pricing"
	"github.com/noah-isme/discount-engine/internal/voucher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)
	obs.MustRegisterPricingMetrics(cfg.MetricsNamespace, nil)

	voucherRules := voucher.Rules{
		Percentages:          cfg.VoucherDiscounts,
		BrandExclusions:      cfg.VoucherBrandExclusions,
		CategoryRestrictions: cfg.VoucherCategoryRestrictions,
		TierRequirements:     cfg.VoucherTierRequirements,
	}
	bus := &events.Bus{Notifiers: []events.Notifier{logNotifier{logger: logger}}}
	engine := &pricing.Engine{
		Rules: []pricing.Rule{
			pricing.BrandRule{Discounts: cfg.BrandDiscounts},
			pricing.CategoryRule{Discounts: cfg.CategoryDiscounts},
			pricing.VoucherRule{Rules: voucherRules},
			pricing.BankOfferRule{Offers: cfg.BankOffers},
		},
		Logger: logger,
		Bus:    bus,
	}
	checker := voucher.Validator{Rules: voucherRules}

	ctx := context.Background()
	for _, sc := range scenarios() {
		if code := sc.customer.VoucherCode; code != "" {
			if err := checker.Check(code, sc.items, sc.customer); err != nil {
				logger.Warn().Err(err).Str("code", code).Str("scenario", sc.name).Msg("voucher rejected")
				_, _ = bus.Emit(ctx, events.TopicVoucherRejected, map[string]any{
					"code":       code,
					"customerId": sc.customer.ID,
					"reason":     err.Error(),
				})
			}
		}

		summary := engine.Price(ctx, sc.items, sc.customer, sc.payment)
		logger.Info().
			Str("scenario", sc.name).
			Str("original_total", summary.OriginalTotal.StringFixed(2)).
			Str("final_total", summary.FinalTotal.StringFixed(2)).
			Msg("scenario priced")
		fmt.Println(summary.Message)
	}
}

type scenario struct {
	name     string
	items    cart.Cart
	customer cart.CustomerProfile
	payment  *cart.PaymentInfo
}

// scenarios returns the two canonical demo carts: a stacked
// brand/category/bank discount purchase and a voucher purchase whose bank
// has no configured offer.
func scenarios() []scenario {
	pumaTshirt := catalog.Product{
		ID:        "prod_001",
		Brand:     "PUMA",
		BrandTier: catalog.BrandTierPremium,
		Category:  "T-shirts",
		BasePrice: decimal.RequireFromString("1000.00"),
	}
	return []scenario{
		{
			name:     "multiple discounts",
			items:    cart.Cart{{Product: pumaTshirt, Quantity: 1, Size: "M"}},
			customer: cart.CustomerProfile{ID: "cust_001", Tier: "regular"},
			payment:  &cart.PaymentInfo{Method: "CARD", BankName: "ICICI", CardType: "CREDIT"},
		},
		{
			name:     "voucher",
			items:    cart.Cart{{Product: pumaTshirt, Quantity: 1, Size: "M"}},
			customer: cart.CustomerProfile{ID: "cust_002", Tier: "regular", VoucherCode: "SUPER69"},
			payment:  &cart.PaymentInfo{Method: "CARD", BankName: "HDFC", CardType: "CREDIT"},
		},
	}
}

type logNotifier struct {
	logger zerolog.Logger
}

func (n logNotifier) Notify(_ context.Context, ev events.Event) error {
	n.logger.Info().
		Str("event_id", ev.ID.String()).
		Str("topic", ev.Topic).
		RawJSON("payload", ev.Payload).
		Msg("event")
	return nil
}
