package handlers

import (
	"net/http"

	"tripgenie/internal/domain/models"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"

	"github.com/gin-gonic/gin"
)

// Categories, tags and historical tags are admin/governor curated lookup
// tables; deletes reply 201 like the rest of the API.

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r *nameRequest) normalize(c *gin.Context) bool {
	r.Name = utils.NormalizeSpace(r.Name)
	if r.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return false
	}
	return true
}

// GET /api/categories
func GetCategories(c *gin.Context) {
	list, err := repositories.CategoryRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list})
}

// POST /api/categories (admin)
func CreateCategory(c *gin.Context) {
	var req nameRequest
	if !BindJSONOrError(c, &req) || !req.normalize(c) {
		return
	}
	id, err := repositories.CategoryRepository{}.Create(req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "category created"})
}

// PUT /api/categories/:id (admin)
func UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !BindJSONOrError(c, &req) || !req.normalize(c) {
		return
	}
	if err := (repositories.CategoryRepository{}).Update(id, req.Name); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category updated"})
}

// DELETE /api/categories/:id (admin)
func DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.CategoryRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category deleted"})
}

// GET /api/tags
func GetTags(c *gin.Context) {
	list, err := repositories.TagRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": list})
}

// POST /api/tags (admin)
func CreateTag(c *gin.Context) {
	var req nameRequest
	if !BindJSONOrError(c, &req) || !req.normalize(c) {
		return
	}
	id, err := repositories.TagRepository{}.Create(req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "tag created"})
}

// PUT /api/tags/:id (admin)
func UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !BindJSONOrError(c, &req) || !req.normalize(c) {
		return
	}
	if err := (repositories.TagRepository{}).Update(id, req.Name); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag updated"})
}

// DELETE /api/tags/:id (admin)
func DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.TagRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "tag deleted"})
}

type historicalTagRequest struct {
	Name   string `json:"name" binding:"required"`
	Period string `json:"period"`
}

// GET /api/historical-tags
func GetHistoricalTags(c *gin.Context) {
	list, err := repositories.HistoricalTagRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"historicalTags": list})
}

// POST /api/historical-tags (governor, admin)
func CreateHistoricalTag(c *gin.Context) {
	var req historicalTagRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := repositories.HistoricalTagRepository{}.Create(models.HistoricalTag{
		Name:   req.Name,
		Period: req.Period,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "historical tag created"})
}

// PUT /api/historical-tags/:id (governor, admin)
func UpdateHistoricalTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req historicalTagRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := (repositories.HistoricalTagRepository{}).Update(models.HistoricalTag{
		ID:     id,
		Name:   req.Name,
		Period: req.Period,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "historical tag updated"})
}

// DELETE /api/historical-tags/:id (governor, admin)
func DeleteHistoricalTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := (repositories.HistoricalTagRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "historical tag deleted"})
}
