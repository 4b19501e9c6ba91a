package services

import (
	"testing"
	"time"

	"tripgenie/internal/domain"
	"tripgenie/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func newPromoService(t *testing.T) (PromoService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := PromoService{
		PromoRepo: repositories.PromoRepository{DB: db},
		Now: func() time.Time {
			return time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
		},
	}
	return svc, mock, func() { db.Close() }
}

func promoRow(code, percent, status, start, end string, limit, used int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "percent_off", "status", "start_date", "end_date", "usage_limit", "times_used"}).
		AddRow(1, code, percent, status, start, end, limit, used)
}

func TestValidateEmptyCodeIsNoOp(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	total := decimal.NewFromInt(250)
	d, err := svc.Validate("   ", total)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Code != "" || !d.PercentOff.IsZero() || !d.DiscountAmount.IsZero() {
		t.Fatalf("expected zero discount, got %+v", d)
	}
	if !d.DiscountedTotal.Equal(total) {
		t.Fatalf("total must pass through unchanged, got %s", d.DiscountedTotal)
	}
	// No lookup must have happened.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database access: %v", err)
	}
}

func TestValidateUnknownCode(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Validate("NOPE", decimal.NewFromInt(100))
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestValidateInactiveWinsOverOtherFailures(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	// Inactive AND expired AND over the cap: inactive must be reported.
	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("SUMMER").
		WillReturnRows(promoRow("SUMMER", "10.00", "inactive", "2024-01-01", "2024-12-31", 5, 5))

	_, err := svc.Validate("SUMMER", decimal.NewFromInt(100))
	if !domain.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
	if err.Error() != "promo code is not active" {
		t.Fatalf("wrong failure reported: %q", err.Error())
	}
}

func TestValidateExpiredWinsOverUsageLimit(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("SPRING").
		WillReturnRows(promoRow("SPRING", "10.00", "active", "2025-01-01", "2025-03-31", 5, 5))

	_, err := svc.Validate("SPRING", decimal.NewFromInt(100))
	if !domain.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
	if err.Error() != "promo code has expired" {
		t.Fatalf("wrong failure reported: %q", err.Error())
	}
}

func TestValidateNotStartedYet(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("WINTER").
		WillReturnRows(promoRow("WINTER", "10.00", "active", "2025-12-01", "2025-12-31", 5, 0))

	_, err := svc.Validate("WINTER", decimal.NewFromInt(100))
	if err == nil || err.Error() != "promo code is not valid yet" {
		t.Fatalf("expected not-valid-yet, got %v", err)
	}
}

func TestValidateEndDateIsInclusive(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	// Now is 2025-06-15; a code ending that same day must still pass.
	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("LASTDAY").
		WillReturnRows(promoRow("LASTDAY", "10.00", "active", "2025-06-01", "2025-06-15", 5, 0))

	d, err := svc.Validate("LASTDAY", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("expected valid on the end date, got %v", err)
	}
	if !d.DiscountAmount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("wrong discount: %s", d.DiscountAmount)
	}
}

func TestValidateUsageLimitReached(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("POPULAR").
		WillReturnRows(promoRow("POPULAR", "10.00", "active", "2025-01-01", "2025-12-31", 3, 3))

	_, err := svc.Validate("POPULAR", decimal.NewFromInt(100))
	if err == nil || err.Error() != "promo code usage limit reached" {
		t.Fatalf("expected usage-limit failure, got %v", err)
	}
}

func TestValidateDiscountMath(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("SAVE12_5").
		WillReturnRows(promoRow("SAVE12_5", "12.50", "active", "2025-01-01", "2025-12-31", 100, 4))

	d, err := svc.Validate("SAVE12_5", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("expected valid code, got %v", err)
	}
	if !d.DiscountAmount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("wrong discount amount: %s", d.DiscountAmount)
	}
	if !d.DiscountedTotal.Equal(decimal.RequireFromString("87.5")) {
		t.Fatalf("wrong discounted total: %s", d.DiscountedTotal)
	}
	if d.Code != "SAVE12_5" {
		t.Fatalf("wrong code echoed: %q", d.Code)
	}
}

func TestValidateFailureReturnsZeroDiscount(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	// A failed re-validation must not leave a stale discount behind.
	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("EXPIRED").
		WillReturnRows(promoRow("EXPIRED", "20.00", "active", "2025-01-01", "2025-02-01", 5, 0))

	total := decimal.NewFromInt(100)
	d, err := svc.Validate("EXPIRED", total)
	if err == nil {
		t.Fatalf("expected error for expired code")
	}
	if !d.DiscountAmount.IsZero() || !d.PercentOff.IsZero() || d.Code != "" {
		t.Fatalf("discount must reset to zero on failure, got %+v", d)
	}
	if !d.DiscountedTotal.Equal(total) {
		t.Fatalf("discounted total must fall back to the full total, got %s", d.DiscountedTotal)
	}
}

func TestRedeemEmptyCodeIsNoOp(t *testing.T) {
	svc, mock, done := newPromoService(t)
	defer done()

	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if err := svc.Redeem(db, ""); err != nil {
		t.Fatalf("expected nil for empty code, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database access: %v", err)
	}
}
