package handlers

import (
	"net/http"
	"strings"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/me
func GetMe(c *gin.Context) {
	auth := middleware.GetAuth(c)
	user, err := repositories.UserRepository{}.GetByID(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type preferredCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

// PUT /api/me/currency selects the currency used for display conversion.
func UpdatePreferredCurrency(c *gin.Context) {
	var req preferredCurrencyRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(code) != 3 {
		RespondError(c, http.StatusBadRequest, "currency must be a 3-letter code", nil)
		return
	}

	auth := middleware.GetAuth(c)
	if err := (repositories.UserRepository{}).UpdatePreferredCurrency(auth.UserID, code); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preferred currency updated", "currency": code})
}
