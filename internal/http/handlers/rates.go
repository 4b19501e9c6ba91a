package handlers

import (
	"net/http"

	"tripgenie/internal/clients"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/rates returns the current display-conversion rate table. Degrades
// to an empty table when the upstream feed is down.
func GetRates(c *gin.Context) {
	svc := services.PricingService{
		Rates:     clients.HTTPRatesClient{URL: getEnv().RatesURL},
		RequestID: middleware.GetRequestID(c),
	}
	c.JSON(http.StatusOK, gin.H{"rates": svc.GetRates(c.Request.Context())})
}
