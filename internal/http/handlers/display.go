package handlers

import (
	"strings"

	"tripgenie/internal/clients"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// displayCurrency reads the optional ?currency= query and fetches the rate
// table once per request. ok is false when no conversion was requested.
func displayCurrency(c *gin.Context) (services.Currency, map[string]float64, bool) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if code == "" {
		return services.Currency{}, nil, false
	}
	svc := services.PricingService{
		Rates:     clients.HTTPRatesClient{URL: getEnv().RatesURL},
		RequestID: middleware.GetRequestID(c),
	}
	return services.CurrencyFromCode(code), svc.GetRates(c.Request.Context()), true
}

func displayPrice(amount decimal.Decimal, sourceCurrency string, target services.Currency, rates map[string]float64, ok bool) string {
	if !ok {
		return ""
	}
	return services.FormatDisplayPrice(amount, sourceCurrency, target, rates)
}
