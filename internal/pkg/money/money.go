package money

import (
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fractional digits shown for currency amounts.
const DisplayPlaces = 2

func FromInt(units int64) decimal.Decimal {
	return decimal.NewFromInt(units)
}

// Parse reads a currency amount such as "50" or "12.75".
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Format renders an amount with the currency symbol and two decimals, e.g. "₱210.00".
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(DisplayPlaces)
}
