package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormatter renders amounts for receipts and reports in the store currency.
// Digits come from the decimal itself; the locale only supplies grouping and separators.
type MoneyFormatter struct {
	code       string
	symbol     string
	precision  int32
	printer    *message.Printer
	decimalSep string
}

// NewMoneyFormatter builds a formatter for an ISO 4217 currency code. An empty symbol
// falls back to the CLDR symbol of the currency in the given locale.
func NewMoneyFormatter(currencyCode, symbol, locale string, precision int32) (*MoneyFormatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if precision < 0 {
		return nil, fmt.Errorf("precision must not be negative, got %d", precision)
	}

	p := message.NewPrinter(tag)
	if symbol == "" {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	// The printer localizes a fixed sample; its second rune is the decimal separator.
	sample := []rune(p.Sprintf("%.1f", 1.5))
	sep := "."
	if len(sample) == 3 {
		sep = string(sample[1])
	}

	return &MoneyFormatter{
		code:       unit.String(),
		symbol:     symbol,
		precision:  precision,
		printer:    p,
		decimalSep: sep,
	}, nil
}

// Code returns the ISO currency code.
func (f *MoneyFormatter) Code() string {
	return f.code
}

// Format renders amount rounded to the currency precision, e.g. "-$1,234.50".
func (f *MoneyFormatter) Format(amount decimal.Decimal) string {
	return f.render(amount, true)
}

// FormatPlain renders amount without the currency symbol, e.g. "1,234.50".
func (f *MoneyFormatter) FormatPlain(amount decimal.Decimal) string {
	return f.render(amount, false)
}

func (f *MoneyFormatter) render(amount decimal.Decimal, withSymbol bool) string {
	rounded := amount.Round(f.precision)
	sign := ""
	if rounded.Sign() < 0 {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(f.precision)
	_, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	if withSymbol {
		b.WriteString(f.symbol)
	}
	b.WriteString(f.printer.Sprintf("%d", rounded.IntPart()))
	if fracPart != "" {
		b.WriteString(f.decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
