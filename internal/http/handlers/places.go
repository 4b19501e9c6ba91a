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

type placeView struct {
	models.HistoricalPlace
	DisplayTicketPrice string `json:"displayTicketPrice,omitempty"`
}

// GET /api/historical-places
func GetHistoricalPlaces(c *gin.Context) {
	list, err := repositories.PlaceRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	out := make([]placeView, 0, len(list))
	for _, p := range list {
		out = append(out, placeView{
			HistoricalPlace:    p,
			DisplayTicketPrice: displayPrice(p.TicketPrice, p.Currency, target, rates, convert),
		})
	}
	c.JSON(http.StatusOK, gin.H{"historicalPlaces": out})
}

// GET /api/historical-places/:id
func GetHistoricalPlaceByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := repositories.PlaceRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	c.JSON(http.StatusOK, placeView{
		HistoricalPlace:    p,
		DisplayTicketPrice: displayPrice(p.TicketPrice, p.Currency, target, rates, convert),
	})
}

type placeRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Location     string          `json:"location" binding:"required"`
	TicketPrice  decimal.Decimal `json:"ticketPrice"`
	Currency     string          `json:"currency" binding:"required"`
	OpeningHours string          `json:"openingHours"`
}

// POST /api/historical-places (governor, admin)
func CreateHistoricalPlace(c *gin.Context) {
	var req placeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	auth := middleware.GetAuth(c)
	id, err := repositories.PlaceRepository{}.Create(models.HistoricalPlace{
		GovernorID:   auth.UserID,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		TicketPrice:  req.TicketPrice,
		Currency:     req.Currency,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "historical place created"})
}

// PUT /api/historical-places/:id (owner governor, admin)
func UpdateHistoricalPlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req placeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.PlaceRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.GovernorID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your historical place", nil)
		return
	}

	if err := repo.Update(models.HistoricalPlace{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		TicketPrice:  req.TicketPrice,
		Currency:     req.Currency,
		OpeningHours: req.OpeningHours,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "historical place updated"})
}

// DELETE /api/historical-places/:id (owner governor, admin)
// Replies 201 on success; API consumers depend on that status.
func DeleteHistoricalPlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo := repositories.PlaceRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.GovernorID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your historical place", nil)
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "historical place deleted"})
}
