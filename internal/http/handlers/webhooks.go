package handlers

import (
	"crypto/subtle"
	"net/http"

	"tripgenie/internal/utils"

	"github.com/gin-gonic/gin"
)

type webhookRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Event     string `json:"event"`
}

// POST /api/payments/webhook is called by the payment provider after a card
// payment settles. Delivery may repeat; ConfirmSession is idempotent.
func PaymentWebhook(c *gin.Context) {
	if key := getEnv().PaymentAPIKey; key != "" {
		got := c.GetHeader("X-Api-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			RespondError(c, http.StatusUnauthorized, "invalid webhook credentials", nil)
			return
		}
	}

	var req webhookRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	utils.LogEvent(c.GetString("request_id"), "webhook", "received", "session="+req.SessionID+" event="+req.Event)

	if err := checkoutService(c).ConfirmSession(req.SessionID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
