package handlers

import (
	"net/http"

	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type activityView struct {
	models.Activity
	DisplayPrice string `json:"displayPrice,omitempty"`
}

// GET /api/activities
func GetActivities(c *gin.Context) {
	list, err := repositories.ActivityRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	out := make([]activityView, 0, len(list))
	for _, a := range list {
		out = append(out, activityView{
			Activity:     a,
			DisplayPrice: displayPrice(a.Price, a.Currency, target, rates, convert),
		})
	}
	c.JSON(http.StatusOK, gin.H{"activities": out})
}

// GET /api/activities/:id
func GetActivityByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	a, err := repositories.ActivityRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	c.JSON(http.StatusOK, activityView{
		Activity:     a,
		DisplayPrice: displayPrice(a.Price, a.Currency, target, rates, convert),
	})
}

type activityRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Location       string          `json:"location" binding:"required"`
	Date           string          `json:"date" binding:"required"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	AvailableSpots int             `json:"availableSpots"`
	Status         string          `json:"status"`
}

// POST /api/activities (advertiser, admin)
func CreateActivity(c *gin.Context) {
	var req activityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Price.Sign() <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "price must be positive"})
		return
	}

	auth := middleware.GetAuth(c)
	id, err := repositories.ActivityRepository{}.Create(models.Activity{
		AdvertiserID:   auth.UserID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Date:           req.Date,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableSpots: req.AvailableSpots,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "activity created"})
}

// PUT /api/activities/:id (owner advertiser, admin)
func UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req activityRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ActivityRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.AdvertiserID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your activity", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	if err := repo.Update(models.Activity{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Date:           req.Date,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableSpots: req.AvailableSpots,
		Status:         status,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity updated"})
}

// DELETE /api/activities/:id (owner advertiser, admin)
// Replies 201 on success; API consumers depend on that status.
func DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo := repositories.ActivityRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.AdvertiserID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your activity", nil)
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "activity deleted"})
}
