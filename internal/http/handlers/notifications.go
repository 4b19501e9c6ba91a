package handlers

import (
	"net/http"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func GetNotifications(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.NotificationRepository{}.ListByUser(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// PUT /api/notifications/:id/seen
func MarkNotificationSeen(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	auth := middleware.GetAuth(c)
	if err := (repositories.NotificationRepository{}).MarkSeen(auth.UserID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification seen"})
}

// PUT /api/notifications/seen
func MarkAllNotificationsSeen(c *gin.Context) {
	auth := middleware.GetAuth(c)
	if err := (repositories.NotificationRepository{}).MarkAllSeen(auth.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications seen"})
}
