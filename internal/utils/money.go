package utils

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds a money amount to two decimals, the precision used at every
// presentation and charge boundary.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatWithSymbol renders "{symbol}{amount}" with two decimals, e.g. "€90.00".
func FormatWithSymbol(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
