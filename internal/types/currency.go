package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyConfig holds the display symbol and minor unit precision of a currency
type CurrencyConfig struct {
	Symbol    string
	Precision int32
}

// CURRENCY_CONFIG is keyed by lower-case ISO 4217 code
var CURRENCY_CONFIG = map[string]CurrencyConfig{
	"usd": {Symbol: "$", Precision: 2},
	"eur": {Symbol: "€", Precision: 2},
	"gbp": {Symbol: "£", Precision: 2},
	"cad": {Symbol: "CA$", Precision: 2},
	"aud": {Symbol: "AU$", Precision: 2},
	"mxn": {Symbol: "MX$", Precision: 2},
	"cop": {Symbol: "$", Precision: 0},
	"jpy": {Symbol: "¥", Precision: 0},
}

// DefaultCurrencyPrecision applies to codes missing from CURRENCY_CONFIG
const DefaultCurrencyPrecision int32 = 2

// GetCurrencyConfig returns the config for a code, falling back to the code itself as symbol
func GetCurrencyConfig(code string) CurrencyConfig {
	if cfg, ok := CURRENCY_CONFIG[strings.ToLower(code)]; ok {
		return cfg
	}
	return CurrencyConfig{Symbol: strings.ToUpper(code), Precision: DefaultCurrencyPrecision}
}

func GetCurrencySymbol(code string) string {
	return GetCurrencyConfig(code).Symbol
}

func GetCurrencyPrecision(code string) int32 {
	return GetCurrencyConfig(code).Precision
}

// RoundToCurrencyPrecision rounds half away from zero to the currency's minor unit
func RoundToCurrencyPrecision(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(GetCurrencyPrecision(code))
}

// FormatAmount renders an amount like "$10,440" or "$287.50". Whole amounts drop
// the minor unit; fractional ones are padded to the currency precision.
func FormatAmount(amount decimal.Decimal, code string) string {
	cfg := GetCurrencyConfig(code)
	amount = amount.Round(cfg.Precision)

	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	var digits string
	if amount.Equal(amount.Truncate(0)) {
		digits = amount.StringFixed(0)
	} else {
		digits = amount.StringFixed(cfg.Precision)
	}

	whole, frac, hasFrac := strings.Cut(digits, ".")

	var b strings.Builder
	b.Grow(len(digits) + len(whole)/3 + len(cfg.Symbol) + 1)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(cfg.Symbol)

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
