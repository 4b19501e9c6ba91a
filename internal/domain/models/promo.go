package models

import "github.com/shopspring/decimal"

const (
	PromoStatusActive   = "active"
	PromoStatusInactive = "inactive"
)

// PromoCode is a discount token with an activation window and usage cap.
// The booking flow only reads it; times_used moves on confirmed payment.
type PromoCode struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	PercentOff decimal.Decimal `json:"percentOff"`
	Status     string          `json:"status"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	UsageLimit int             `json:"usageLimit"`
	TimesUsed  int             `json:"timesUsed"`
}
