package handlers

import (
	"net/http"

	"tripgenie/internal/domain/models"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Tourist itineraries are personal trip plans; every operation is scoped to
// the calling tourist.

// GET /api/my-itineraries
func GetMyItineraries(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.TouristItineraryRepository{}.ListByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": list})
}

type touristItineraryRequest struct {
	Title     string `json:"title" binding:"required"`
	Locations string `json:"locations"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Tags      string `json:"tags"`
}

// POST /api/my-itineraries
func CreateMyItinerary(c *gin.Context) {
	var req touristItineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	auth := middleware.GetAuth(c)
	id, err := repositories.TouristItineraryRepository{}.Create(models.TouristItinerary{
		TouristID: auth.UserID,
		Title:     req.Title,
		Locations: req.Locations,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Tags:      req.Tags,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "itinerary created"})
}

// PUT /api/my-itineraries/:id
func UpdateMyItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req touristItineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	auth := middleware.GetAuth(c)
	if err := (repositories.TouristItineraryRepository{}).Update(models.TouristItinerary{
		ID:        id,
		TouristID: auth.UserID,
		Title:     req.Title,
		Locations: req.Locations,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Tags:      req.Tags,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "itinerary updated"})
}

// DELETE /api/my-itineraries/:id
// Replies 201 on success; API consumers depend on that status.
func DeleteMyItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	auth := middleware.GetAuth(c)
	if err := (repositories.TouristItineraryRepository{}).Delete(id, auth.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "itinerary deleted"})
}
