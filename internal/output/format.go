package output

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/equitygap/internal/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the ISO code used when none is configured
const DefaultCurrency = "GBP"

var printer = message.NewPrinter(language.BritishEnglish)

var currencySymbols = map[currency.Unit]string{
	currency.GBP: "£",
	currency.USD: "$",
	currency.EUR: "€",
}

// FormatCurrency renders value with thousand separators and the currency symbol, e.g. "£75,000".
// Non-finite values render as zero.
func FormatCurrency(value float64, code string, decimals int) string {
	symbol := CurrencySymbol(code)
	if !isFinite(value) {
		return symbol + "0"
	}
	s := FormatNumber(math.Abs(value), decimals)
	if roundTo(value, decimals) < 0 {
		return "-" + symbol + s
	}
	return symbol + s
}

// FormatNumber renders value with en-GB thousand separators and a fixed number of decimals
func FormatNumber(value float64, decimals int) string {
	if !isFinite(value) {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	return printer.Sprint(number.Decimal(roundTo(value, decimals), number.Scale(decimals)))
}

// FormatYears renders value with one decimal, e.g. "6.0 years"
func FormatYears(value float64) string {
	if !isFinite(value) {
		return "0.0 years"
	}
	return fmt.Sprintf("%.1f years", value)
}

// FormatPercentage renders a 0-100 value as a percentage
func FormatPercentage(value float64, decimals int) string {
	if !isFinite(value) {
		return "0%"
	}
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// FormatMonthly renders a monthly amount, e.g. "£500/month"
func FormatMonthly(value float64, code string) string {
	return FormatCurrency(value, code, 0) + "/month"
}

// FormatSliderValue renders a slider value according to its display kind
func FormatSliderValue(kind string, value float64, code string) string {
	switch kind {
	case domain.FormatYears:
		if !isFinite(value) {
			return "0 years"
		}
		return fmt.Sprintf("%d years", int(math.Round(value)))
	case domain.FormatCurrency:
		return FormatCurrency(value, code, 0)
	case domain.FormatMonthly:
		return FormatMonthly(value, code)
	case domain.FormatPercent:
		return FormatPercentage(value, 0)
	default:
		return FormatNumber(value, 0)
	}
}

// CurrencySymbol returns the display symbol for an ISO currency code
func CurrencySymbol(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	if s, ok := currencySymbols[unit]; ok {
		return s
	}
	return unit.String() + " "
}

func roundTo(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(value*p) / p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
