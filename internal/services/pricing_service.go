package services

import (
	"context"

	"tripgenie/internal/clients"
	"tripgenie/internal/utils"

	"github.com/shopspring/decimal"
)

// Currency is a display currency selected by the user.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// PricingService converts prices for display. Converted values never feed the
// charge: the checkout always bills the discounted total in the item's native
// currency.
type PricingService struct {
	Rates     clients.RatesClient
	RequestID string
}

// GetRates returns the current rate table, best effort. A fetch failure
// degrades to an empty map and native-price display rather than an error.
func (s PricingService) GetRates(ctx context.Context) map[string]float64 {
	if s.Rates == nil {
		return map[string]float64{}
	}
	rates, err := s.Rates.Fetch(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "pricing", "rates", "fetch failed: "+err.Error())
		return map[string]float64{}
	}
	return rates
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"EGP": "E£",
	"SAR": "SR",
	"AED": "AED ",
	"JPY": "¥",
}

// CurrencyFromCode builds a display currency. Unknown codes fall back to the
// code itself as the symbol.
func CurrencyFromCode(code string) Currency {
	if sym, ok := currencySymbols[code]; ok {
		return Currency{Code: code, Symbol: sym}
	}
	return Currency{Code: code, Symbol: code + " "}
}

// FormatDisplayPrice renders amount (in sourceCurrency) as the target
// currency: amount / rate(source) * rate(target), missing rates default to 1.
func FormatDisplayPrice(amount decimal.Decimal, sourceCurrency string, target Currency, rates map[string]float64) string {
	converted := ConvertForDisplay(amount, sourceCurrency, target.Code, rates)
	return utils.FormatWithSymbol(target.Symbol, converted)
}

// ConvertForDisplay applies the display-only conversion, rounded to 2dp.
func ConvertForDisplay(amount decimal.Decimal, sourceCurrency, targetCurrency string, rates map[string]float64) decimal.Decimal {
	src := rateOf(rates, sourceCurrency)
	dst := rateOf(rates, targetCurrency)
	return utils.Round2(amount.Div(src).Mul(dst))
}

func rateOf(rates map[string]float64, code string) decimal.Decimal {
	if r, ok := rates[code]; ok && r > 0 {
		return decimal.NewFromFloat(r)
	}
	return decimal.NewFromInt(1)
}
