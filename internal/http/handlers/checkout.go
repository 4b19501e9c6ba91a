package handlers

import (
	"net/http"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/checkout/quote recomputes the total server-side and previews the
// discount without charging anything.
func GetCheckoutQuote(c *gin.Context) {
	var req services.CheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	auth := middleware.GetAuth(c)
	quote, err := checkoutService(c).Quote(auth.UserID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /api/checkout runs one payment attempt. Card payments reply with a
// provider session to redirect to; wallet payments reply with the booking.
func Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	auth := middleware.GetAuth(c)
	result, err := checkoutService(c).Checkout(c.Request.Context(), auth, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/checkout/sessions/:id lets the success page poll whether the
// webhook landed yet.
func GetCheckoutSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		RespondError(c, http.StatusBadRequest, "invalid session id", nil)
		return
	}

	sess, err := repositories.SessionRepository{}.GetByID(sessionID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if sess.TouristID != auth.UserID {
		RespondError(c, http.StatusNotFound, "payment session not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       sess.ID,
		"status":   sess.Status,
		"amount":   sess.Amount,
		"currency": sess.Currency,
		"kind":     sess.Kind,
	})
}
