package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// Config holds the discount configuration loaded from the environment.
// Tables are encoded as comma-separated pairs, e.g.
// BRAND_DISCOUNTS="PUMA:40,NIKE:25"; list-valued tables separate set
// members with '|', e.g. VOUCHER_BRAND_EXCLUSIONS="SUPER69:NIKE|ADIDAS".
type Config struct {
	AppEnv           string
	LogFormat        string
	LogLevel         string
	MetricsNamespace string

	BrandDiscounts    map[string]decimal.Decimal
	CategoryDiscounts map[string]decimal.Decimal
	VoucherDiscounts  map[string]decimal.Decimal
	BankOffers        map[string]decimal.Decimal

	VoucherBrandExclusions      map[string][]string
	VoucherCategoryRestrictions map[string][]string
	VoucherTierRequirements     map[string]string
}

// Load reads configuration from environment variables and optional .env files.
// Unset discount tables fall back to the built-in sample configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		LogFormat:        valueOrDefault(k.String("LOG_FORMAT"), "console"),
		LogLevel:         valueOrDefault(k.String("LOG_LEVEL"), "info"),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "pricer"),
	}

	var err error
	if cfg.BrandDiscounts, err = parsePercentTable("BRAND_DISCOUNTS", k.String("BRAND_DISCOUNTS"), defaultBrandDiscounts); err != nil {
		return nil, err
	}
	if cfg.CategoryDiscounts, err = parsePercentTable("CATEGORY_DISCOUNTS", k.String("CATEGORY_DISCOUNTS"), defaultCategoryDiscounts); err != nil {
		return nil, err
	}
	if cfg.VoucherDiscounts, err = parsePercentTable("VOUCHER_DISCOUNTS", k.String("VOUCHER_DISCOUNTS"), defaultVoucherDiscounts); err != nil {
		return nil, err
	}
	if cfg.BankOffers, err = parsePercentTable("BANK_OFFERS", k.String("BANK_OFFERS"), defaultBankOffers); err != nil {
		return nil, err
	}
	if cfg.VoucherBrandExclusions, err = parseListTable("VOUCHER_BRAND_EXCLUSIONS", k.String("VOUCHER_BRAND_EXCLUSIONS")); err != nil {
		return nil, err
	}
	if cfg.VoucherCategoryRestrictions, err = parseListTable("VOUCHER_CATEGORY_RESTRICTIONS", k.String("VOUCHER_CATEGORY_RESTRICTIONS")); err != nil {
		return nil, err
	}
	if cfg.VoucherTierRequirements, err = parseStringTable("VOUCHER_TIER_REQUIREMENTS", k.String("VOUCHER_TIER_REQUIREMENTS")); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Built-in sample tables matching the canonical demo scenarios.
var (
	defaultBrandDiscounts    = map[string]string{"PUMA": "40"}
	defaultCategoryDiscounts = map[string]string{"T-shirts": "10"}
	defaultVoucherDiscounts  = map[string]string{"SUPER69": "69"}
	defaultBankOffers        = map[string]string{"ICICI": "10"}
)

func (c *Config) validate() error {
	v := validator.New()
	tables := map[string]map[string]decimal.Decimal{
		"BRAND_DISCOUNTS":    c.BrandDiscounts,
		"CATEGORY_DISCOUNTS": c.CategoryDiscounts,
		"VOUCHER_DISCOUNTS":  c.VoucherDiscounts,
		"BANK_OFFERS":        c.BankOffers,
	}
	for table, entries := range tables {
		for name, pct := range entries {
			if err := v.Var(pct.InexactFloat64(), "gte=0,lte=100"); err != nil {
				return fmt.Errorf("%s[%s]: percentage %s out of range 0-100", table, name, pct.String())
			}
		}
	}
	return nil
}

func parsePercentTable(key, value string, fallback map[string]string) (map[string]decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		result := make(map[string]decimal.Decimal, len(fallback))
		for name, pct := range fallback {
			result[name] = decimal.RequireFromString(pct)
		}
		return result, nil
	}
	result := make(map[string]decimal.Decimal)
	for _, entry := range splitEntries(value) {
		name, raw, err := splitPair(key, entry)
		if err != nil {
			return nil, err
		}
		pct, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%s[%s]: invalid percentage %q: %w", key, name, raw, err)
		}
		result[name] = pct
	}
	return result, nil
}

func parseListTable(key, value string) (map[string][]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	result := make(map[string][]string)
	for _, entry := range splitEntries(value) {
		name, raw, err := splitPair(key, entry)
		if err != nil {
			return nil, err
		}
		var members []string
		for _, member := range strings.Split(raw, "|") {
			trimmed := strings.TrimSpace(member)
			if trimmed != "" {
				members = append(members, trimmed)
			}
		}
		result[name] = members
	}
	return result, nil
}

func parseStringTable(key, value string) (map[string]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	result := make(map[string]string)
	for _, entry := range splitEntries(value) {
		name, raw, err := splitPair(key, entry)
		if err != nil {
			return nil, err
		}
		result[name] = raw
	}
	return result, nil
}

func splitEntries(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func splitPair(key, entry string) (string, string, error) {
	name, value, found := strings.Cut(entry, ":")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !found || name == "" || value == "" {
		return "", "", fmt.Errorf("%s: malformed entry %q, want name:value", key, entry)
	}
	return name, value, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests and
// command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without
// touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
