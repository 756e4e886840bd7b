package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/discount-engine/internal/config"
)

func TestLoadDefaultsToSampleTables(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"BRAND_DISCOUNTS":    "",
		"CATEGORY_DISCOUNTS": "",
		"VOUCHER_DISCOUNTS":  "",
		"BANK_OFFERS":        "",
	})
	require.NoError(t, err)
	require.Equal(t, "40", cfg.BrandDiscounts["PUMA"].String())
	require.Equal(t, "10", cfg.CategoryDiscounts["T-shirts"].String())
	require.Equal(t, "69", cfg.VoucherDiscounts["SUPER69"].String())
	require.Equal(t, "10", cfg.BankOffers["ICICI"].String())
}

func TestLoadParsesPercentTables(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"BRAND_DISCOUNTS": "NIKE:25, ADIDAS:12.5",
		"BANK_OFFERS":     "HDFC:5",
	})
	require.NoError(t, err)
	require.Len(t, cfg.BrandDiscounts, 2)
	require.Equal(t, "25", cfg.BrandDiscounts["NIKE"].String())
	require.Equal(t, "12.5", cfg.BrandDiscounts["ADIDAS"].String())
	require.Equal(t, "5", cfg.BankOffers["HDFC"].String())
}

func TestLoadParsesVoucherAuxTables(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"VOUCHER_BRAND_EXCLUSIONS":      "SUPER69:NIKE|ADIDAS",
		"VOUCHER_CATEGORY_RESTRICTIONS": "SUPER69:T-shirts",
		"VOUCHER_TIER_REQUIREMENTS":     "SUPER69:gold",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"NIKE", "ADIDAS"}, cfg.VoucherBrandExclusions["SUPER69"])
	require.Equal(t, []string{"T-shirts"}, cfg.VoucherCategoryRestrictions["SUPER69"])
	require.Equal(t, "gold", cfg.VoucherTierRequirements["SUPER69"])
}

func TestLoadRejectsOutOfRangePercent(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"BRAND_DISCOUNTS": "NIKE:250",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestLoadRejectsMalformedEntry(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"BRAND_DISCOUNTS": "NIKE",
	})
	require.Error(t, err)
}
