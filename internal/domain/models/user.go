package models

import "github.com/shopspring/decimal"

// User covers every platform role; tourist-only fields stay zero for the rest.
type User struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Role              string          `json:"role"`
	Status            string          `json:"status"`
	WalletBalance     decimal.Decimal `json:"walletBalance"`
	PreferredCurrency string          `json:"preferredCurrency"`
}
