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

type itineraryView struct {
	models.Itinerary
	DisplayPrice string `json:"displayPrice,omitempty"`
}

// GET /api/itineraries
func GetItineraries(c *gin.Context) {
	list, err := repositories.ItineraryRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	out := make([]itineraryView, 0, len(list))
	for _, it := range list {
		out = append(out, itineraryView{
			Itinerary:    it,
			DisplayPrice: displayPrice(it.Price, it.Currency, target, rates, convert),
		})
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": out})
}

// GET /api/itineraries/:id
func GetItineraryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	it, err := repositories.ItineraryRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	c.JSON(http.StatusOK, itineraryView{
		Itinerary:    it,
		DisplayPrice: displayPrice(it.Price, it.Currency, target, rates, convert),
	})
}

type itineraryRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Language       string          `json:"language"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	AvailableSeats int             `json:"availableSeats"`
	StartDate      string          `json:"startDate" binding:"required"`
	EndDate        string          `json:"endDate"`
	Status         string          `json:"status"`
}

// POST /api/itineraries (tour guide, admin)
func CreateItinerary(c *gin.Context) {
	var req itineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Price.Sign() <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "price must be positive"})
		return
	}

	auth := middleware.GetAuth(c)
	id, err := repositories.ItineraryRepository{}.Create(models.Itinerary{
		GuideID:        auth.UserID,
		Title:          req.Title,
		Description:    req.Description,
		Language:       req.Language,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableSeats: req.AvailableSeats,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "itinerary created"})
}

// PUT /api/itineraries/:id (owner guide, admin)
func UpdateItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req itineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ItineraryRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.GuideID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your itinerary", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	if err := repo.Update(models.Itinerary{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Language:       req.Language,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableSeats: req.AvailableSeats,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         status,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "itinerary updated"})
}

// DELETE /api/itineraries/:id (owner guide, admin)
// Replies 201 on success; API consumers depend on that status.
func DeleteItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo := repositories.ItineraryRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.GuideID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your itinerary", nil)
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "itinerary deleted"})
}
