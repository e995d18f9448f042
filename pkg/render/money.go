package render

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// MoneyFormatter renders amounts with locale grouping and two fraction
// digits. Formatting happens at render time; callers keep the raw value.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter builds a formatter for an ISO 4217 code and a locale.
func NewMoneyFormatter(tag language.Tag, code string) (*MoneyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("render: currency %q: %w", code, err)
	}
	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	return &MoneyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// USD returns the en-US dollar formatter.
func USD() *MoneyFormatter {
	f, err := NewMoneyFormatter(language.AmericanEnglish, "USD")
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders amount, e.g. 1234.5 -> "$1,234.50".
func (f *MoneyFormatter) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + f.symbol + f.printer.Sprintf("%.2f", amount)
}
