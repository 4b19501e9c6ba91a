package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayPriceConverts(t *testing.T) {
	rates := map[string]float64{"USD": 1, "EUR": 0.9}
	got := FormatDisplayPrice(decimal.NewFromInt(100), "USD", Currency{Code: "EUR", Symbol: "€"}, rates)
	assert.Equal(t, "€90.00", got)
}

func TestFormatDisplayPriceNonUnitSourceRate(t *testing.T) {
	// 300 EGP with EGP at 50 per base and USD at 1: 300 / 50 * 1 = 6.
	rates := map[string]float64{"USD": 1, "EGP": 50}
	got := FormatDisplayPrice(decimal.NewFromInt(300), "EGP", Currency{Code: "USD", Symbol: "$"}, rates)
	assert.Equal(t, "$6.00", got)
}

func TestConvertForDisplayMissingRatesDefaultToOne(t *testing.T) {
	amount := decimal.RequireFromString("129.99")

	// Missing source rate.
	got := ConvertForDisplay(amount, "XXX", "EUR", map[string]float64{"EUR": 0.5})
	assert.True(t, got.Equal(decimal.RequireFromString("65.00")), "got %s", got)

	// Missing target rate: value passes through.
	got = ConvertForDisplay(amount, "XXX", "YYY", map[string]float64{})
	assert.True(t, got.Equal(amount), "got %s", got)
}

func TestConvertForDisplayIgnoresNonPositiveRates(t *testing.T) {
	amount := decimal.NewFromInt(100)
	got := ConvertForDisplay(amount, "USD", "EUR", map[string]float64{"USD": 0, "EUR": -2})
	assert.True(t, got.Equal(amount), "got %s", got)
}

func TestConvertForDisplayRoundsToTwoDecimals(t *testing.T) {
	rates := map[string]float64{"USD": 1, "GBP": 0.7777}
	got := ConvertForDisplay(decimal.NewFromInt(10), "USD", "GBP", rates)
	assert.True(t, got.Equal(decimal.RequireFromString("7.78")), "got %s", got)
}

func TestCurrencyFromCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, Currency{Code: "EUR", Symbol: "€"}, CurrencyFromCode("EUR"))
	assert.Equal(t, Currency{Code: "CHF", Symbol: "CHF "}, CurrencyFromCode("CHF"))
}
