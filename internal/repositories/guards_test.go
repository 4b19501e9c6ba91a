package repositories

import (
	"testing"

	"tripgenie/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

// The conditional UPDATE guards are the only thing standing between a race
// and oversold stock or an overdrawn wallet, so each one gets a zero-rows test.

func TestDebitWalletGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := UserRepository{DB: db}

	mock.ExpectExec("UPDATE users").
		WithArgs("150.00", int64(1), "150.00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.DebitWallet(db, 1, decimal.NewFromInt(150)); err != nil {
		t.Fatalf("debit with sufficient balance failed: %v", err)
	}

	mock.ExpectExec("UPDATE users").
		WithArgs("150.00", int64(1), "150.00").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.DebitWallet(db, 1, decimal.NewFromInt(150))
	if !domain.IsState(err) {
		t.Fatalf("expected state error on zero rows, got %v", err)
	}
	if err.Error() != "insufficient wallet balance" {
		t.Fatalf("wrong message: %q", err.Error())
	}
}

func TestCreditWalletUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := UserRepository{DB: db}

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.CreditWallet(db, 99, decimal.NewFromInt(10))
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDecrementStockGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := ProductRepository{DB: db}

	mock.ExpectExec("UPDATE products").
		WithArgs(2, int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.DecrementStock(db, 7, 2); err != nil {
		t.Fatalf("decrement with stock available failed: %v", err)
	}

	mock.ExpectExec("UPDATE products").
		WithArgs(2, int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.DecrementStock(db, 7, 2)
	if !domain.IsState(err) {
		t.Fatalf("expected state error on exhausted stock, got %v", err)
	}
	if err.Error() != "product is out of stock" {
		t.Fatalf("wrong message: %q", err.Error())
	}
}

func TestIncrementUsageGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := PromoRepository{DB: db}

	mock.ExpectExec("UPDATE promo_codes").
		WithArgs("SAVE10").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.IncrementUsage(db, "SAVE10"); err != nil {
		t.Fatalf("increment under the cap failed: %v", err)
	}

	mock.ExpectExec("UPDATE promo_codes").
		WithArgs("SAVE10").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.IncrementUsage(db, "SAVE10")
	if !domain.IsState(err) {
		t.Fatalf("expected state error at the cap, got %v", err)
	}
}

func TestMarkConfirmedReportsRaceLoss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := SessionRepository{DB: db}

	mock.ExpectExec("UPDATE payment_sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	won, err := repo.MarkConfirmed(db, "sess-1")
	if err != nil || !won {
		t.Fatalf("expected to win the flip, got won=%v err=%v", won, err)
	}

	mock.ExpectExec("UPDATE payment_sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	won, err = repo.MarkConfirmed(db, "sess-1")
	if err != nil {
		t.Fatalf("zero rows is not an error: %v", err)
	}
	if won {
		t.Fatalf("expected to lose the flip on zero rows")
	}
}
