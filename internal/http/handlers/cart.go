package handlers

import (
	"net/http"

	"tripgenie/internal/http/middleware"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func cartService(c *gin.Context) services.CartService {
	return services.CartService{
		CartRepo:    repositories.CartRepository{},
		ProductRepo: repositories.ProductRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/cart
func GetCart(c *gin.Context) {
	auth := middleware.GetAuth(c)
	lines, err := cartService(c).List(auth.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

type addCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// POST /api/cart
func AddToCart(c *gin.Context) {
	var req addCartRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	auth := middleware.GetAuth(c)
	item, err := cartService(c).Add(auth.UserID, req.ProductID, qty)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "message": "cart updated"})
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /api/cart/:id
func SetCartQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req setQuantityRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	auth := middleware.GetAuth(c)
	if err := cartService(c).SetQuantity(auth.UserID, id, req.Quantity); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
}

// DELETE /api/cart/:id
// Replies 201 on success; API consumers depend on that status.
func RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	auth := middleware.GetAuth(c)
	if err := cartService(c).Remove(auth.UserID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item removed"})
}
