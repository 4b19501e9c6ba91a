package handlers

import (
	"net/http"

	"tripgenie/internal/domain/models"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"

	"github.com/gin-gonic/gin"
)

type complaintRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// POST /api/complaints (tourist)
func CreateComplaint(c *gin.Context) {
	var req complaintRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Title = utils.TrimOrEmpty(req.Title)
	req.Body = utils.TrimOrEmpty(req.Body)
	if req.Title == "" || req.Body == "" {
		RespondError(c, http.StatusBadRequest, "title and body are required", nil)
		return
	}
	auth := middleware.GetAuth(c)
	id, err := repositories.ComplaintRepository{}.Create(models.Complaint{
		TouristID: auth.UserID,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "complaint filed"})
}

// GET /api/complaints/mine (tourist)
func GetMyComplaints(c *gin.Context) {
	auth := middleware.GetAuth(c)
	list, err := repositories.ComplaintRepository{}.ListByTourist(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list})
}

// GET /api/complaints (admin)
func GetComplaints(c *gin.Context) {
	list, err := repositories.ComplaintRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list})
}

type resolveComplaintRequest struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

// PUT /api/complaints/:id/resolve (admin)
func ResolveComplaint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req resolveComplaintRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	status := req.Status
	if status == "" {
		status = models.ComplaintStatusResolved
	}
	if status != models.ComplaintStatusPending && status != models.ComplaintStatusResolved {
		RespondError(c, http.StatusBadRequest, "unknown complaint status", nil)
		return
	}

	if err := (repositories.ComplaintRepository{}).Resolve(id, status, req.Reply); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "complaint updated"})
}
