package handlers

import (
	"net/http"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo:      repositories.BookingRepository{},
		UserRepo:         repositories.UserRepository{},
		NotificationRepo: repositories.NotificationRepository{},
		RequestID:        middleware.GetRequestID(c),
	}
}

// GET /api/bookings/hotels
func GetMyHotelBookings(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.BookingRepository{}.ListHotelsByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GET /api/bookings/flights
func GetMyFlightBookings(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.BookingRepository{}.ListFlightsByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GET /api/bookings/transportation
func GetMyTransportationBookings(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.BookingRepository{}.ListTransportationByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GET /api/bookings/items covers activity and itinerary bookings.
func GetMyItemBookings(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.BookingRepository{}.ListItemsByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// DELETE /api/bookings/:type/:id cancels a booking and refunds the wallet.
// Replies 201 on success; API consumers depend on that status.
func CancelBooking(c *gin.Context) {
	kind := c.Param("type")
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	auth := middleware.GetAuth(c)
	if err := bookingService(c).Cancel(auth.UserID, kind, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking canceled"})
}
