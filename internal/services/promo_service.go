package services

import (
	"strings"
	"time"

	"tripgenie/internal/domain"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"

	"github.com/shopspring/decimal"
)

// Discount is the outcome of one promo validation attempt. A fresh zero value
// is computed on every attempt so a stale discount never survives a failed
// re-validation.
type Discount struct {
	Code            string          `json:"code,omitempty"`
	PercentOff      decimal.Decimal `json:"percentOff"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	DiscountedTotal decimal.Decimal `json:"discountedTotal"`
}

// PromoService validates and redeems promo codes. Validation never mutates
// the code; times_used moves only on confirmed payment via Redeem.
type PromoService struct {
	PromoRepo repositories.PromoRepository
	RequestID string

	// Now is swappable for tests; defaults to utils.NowUTC.
	Now func() time.Time
}

func (s PromoService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Validate checks status, then the activation window, then the usage cap, in
// that order, short-circuiting on the first failure. An empty or
// whitespace-only code is a no-op: zero discount, no lookup, no error.
func (s PromoService) Validate(code string, total decimal.Decimal) (Discount, error) {
	none := Discount{DiscountedTotal: total}

	code = strings.TrimSpace(code)
	if code == "" {
		return none, nil
	}

	promo, err := s.PromoRepo.GetByCode(code)
	if err != nil {
		return none, err
	}

	if promo.Status != "active" {
		return none, domain.StateError{Reason: "inactive", Msg: "promo code is not active"}
	}

	now := s.now()
	if start, perr := utils.ParseDate(promo.StartDate); perr == nil && now.Before(start) {
		return none, domain.StateError{Reason: "out_of_date_range", Msg: "promo code is not valid yet"}
	}
	if end, perr := utils.ParseDate(promo.EndDate); perr == nil && now.After(end.Add(24*time.Hour-time.Second)) {
		return none, domain.StateError{Reason: "out_of_date_range", Msg: "promo code has expired"}
	}

	if promo.TimesUsed >= promo.UsageLimit {
		return none, domain.StateError{Reason: "usage_limit", Msg: "promo code usage limit reached"}
	}

	amount := utils.Round2(total.Mul(promo.PercentOff).Div(decimal.NewFromInt(100)))
	return Discount{
		Code:            promo.Code,
		PercentOff:      promo.PercentOff,
		DiscountAmount:  amount,
		DiscountedTotal: total.Sub(amount),
	}, nil
}

// Redeem burns one use of the code. Called only from a confirming checkout
// transaction.
func (s PromoService) Redeem(q repositories.DBTX, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if err := s.PromoRepo.IncrementUsage(q, code); err != nil {
		utils.LogEvent(s.RequestID, "promo", "redeem", "increment failed: "+err.Error())
		return err
	}
	return nil
}
