package models

import "github.com/shopspring/decimal"

// CartItem pairs a product with a quantity for one tourist.
type CartItem struct {
	ID        int64 `json:"id"`
	TouristID int64 `json:"touristId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a cart item joined with current product data for display and
// server-side total recomputation.
type CartLine struct {
	CartItemID     int64           `json:"cartItemId"`
	ProductID      int64           `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Currency       string          `json:"currency"`
	AvailableStock int             `json:"availableStock"`
}
