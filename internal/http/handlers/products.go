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

type productView struct {
	models.Product
	DisplayPrice string `json:"displayPrice,omitempty"`
}

// GET /api/products
func GetProducts(c *gin.Context) {
	repo := repositories.ProductRepository{}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	target, rates, convert := displayCurrency(c)
	out := make([]productView, 0, len(list))
	for _, p := range list {
		out = append(out, productView{
			Product:      p,
			DisplayPrice: displayPrice(p.Price, p.Currency, target, rates, convert),
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// GET /api/products/:id
func GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := repositories.ProductRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	target, rates, convert := displayCurrency(c)
	c.JSON(http.StatusOK, productView{
		Product:      p,
		DisplayPrice: displayPrice(p.Price, p.Currency, target, rates, convert),
	})
}

type productRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	AvailableStock int             `json:"availableStock"`
	Status         string          `json:"status"`
}

// POST /api/products (seller, admin)
func CreateProduct(c *gin.Context) {
	var req productRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Price.Sign() <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "price", Msg: "price must be positive"})
		return
	}

	auth := middleware.GetAuth(c)
	id, err := repositories.ProductRepository{}.Create(models.Product{
		SellerID:       auth.UserID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableStock: req.AvailableStock,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "product created"})
}

// PUT /api/products/:id (owner seller, admin)
func UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req productRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.ProductRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.SellerID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your product", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}
	if err := repo.Update(models.Product{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		AvailableStock: req.AvailableStock,
		Status:         status,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DELETE /api/products/:id (owner seller, admin)
// Replies 201 on success; API consumers depend on that status.
func DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo := repositories.ProductRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	auth := middleware.GetAuth(c)
	if auth.Role != domain.RoleAdmin && existing.SellerID != auth.UserID {
		RespondError(c, http.StatusForbidden, "not your product", nil)
		return
	}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "product deleted"})
}
