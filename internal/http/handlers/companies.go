package handlers

import (
	"net/http"

	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/companies
func GetCompanies(c *gin.Context) {
	list, err := repositories.CompanyRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": list})
}

// GET /api/companies/:id
func GetCompanyByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	company, err := repositories.CompanyRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type companyRequest struct {
	Name     string `json:"name" binding:"required"`
	Website  string `json:"website"`
	Hotline  string `json:"hotline"`
	Industry string `json:"industry"`
}

// POST /api/companies (advertiser, admin)
func CreateCompany(c *gin.Context) {
	var req companyRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	auth := middleware.GetAuth(c)
	id, err := repositories.CompanyRepository{}.Create(models.Company{
		AdvertiserID: auth.UserID,
		Name:         req.Name,
		Website:      req.Website,
		Hotline:      req.Hotline,
		Industry:     req.Industry,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "company created"})
}

// PUT /api/companies/:id (owner advertiser, admin)
func UpdateCompany(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req companyRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.CompanyRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.AdvertiserID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your company", nil)
		return
	}

	if err := repo.Update(models.Company{
		ID:       id,
		Name:     req.Name,
		Website:  req.Website,
		Hotline:  req.Hotline,
		Industry: req.Industry,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "company updated"})
}

// DELETE /api/companies/:id (owner advertiser, admin)
// Replies 201 on success; API consumers depend on that status.
func DeleteCompany(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo := repositories.CompanyRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.AdvertiserID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your company", nil)
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "company deleted"})
}
