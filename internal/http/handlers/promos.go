package handlers

import (
	"net/http"

	"tripgenie/internal/domain/models"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GET /api/promos (admin)
func GetPromos(c *gin.Context) {
	list, err := repositories.PromoRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promos": list})
}

type promoRequest struct {
	Code       string          `json:"code" binding:"required"`
	PercentOff decimal.Decimal `json:"percentOff" binding:"required"`
	Status     string          `json:"status"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	UsageLimit int             `json:"usageLimit"`
}

// POST /api/promos (admin)
func CreatePromo(c *gin.Context) {
	var req promoRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.PercentOff.Sign() <= 0 || req.PercentOff.GreaterThan(decimal.NewFromInt(100)) {
		RespondError(c, http.StatusBadRequest, "percentOff must be between 0 and 100", nil)
		return
	}
	status := req.Status
	if status == "" {
		status = models.PromoStatusActive
	}
	id, err := repositories.PromoRepository{}.Create(models.PromoCode{
		Code:       req.Code,
		PercentOff: req.PercentOff,
		Status:     status,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		UsageLimit: req.UsageLimit,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "promo code created"})
}

// PUT /api/promos/:id (admin)
func UpdatePromo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req promoRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := (repositories.PromoRepository{}).Update(models.PromoCode{
		ID:         id,
		Code:       req.Code,
		PercentOff: req.PercentOff,
		Status:     req.Status,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		UsageLimit: req.UsageLimit,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "promo code updated"})
}

// DELETE /api/promos/:id (admin)
// Replies 201 on success; API consumers depend on that status.
func DeletePromo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.PromoRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "promo code deleted"})
}

type validatePromoRequest struct {
	Code  string          `json:"code"`
	Total decimal.Decimal `json:"total" binding:"required"`
}

// POST /api/promos/validate previews the discount a code would give against a
// total. Nothing is redeemed here.
func ValidatePromo(c *gin.Context) {
	var req validatePromoRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.PromoService{
		PromoRepo: repositories.PromoRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	discount, err := svc.Validate(req.Code, req.Total)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, discount)
}
