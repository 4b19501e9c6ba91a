package services

import (
	"testing"

	"tripgenie/internal/domain"
	"tripgenie/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCartService(t *testing.T) (CartService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := CartService{
		CartRepo:    repositories.CartRepository{DB: db},
		ProductRepo: repositories.ProductRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func productRow(id int64, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "seller_id", "name", "description", "price", "currency", "available_stock", "status"}).
		AddRow(id, 9, "Papyrus notebook", "", "25.00", "USD", stock, "active")
}

func cartItemRow(id, touristID, productID int64, qty int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tourist_id", "product_id", "quantity"}).
		AddRow(id, touristID, productID, qty)
}

func TestAddMergesQuantity(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	mock.ExpectQuery("FROM products WHERE id").WithArgs(int64(7)).
		WillReturnRows(productRow(7, 5))
	mock.ExpectQuery("FROM cart_items").WithArgs(int64(1), int64(7)).
		WillReturnRows(cartItemRow(3, 1, 7, 2))
	mock.ExpectExec("UPDATE cart_items SET quantity").WithArgs(4, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item, err := svc.Add(1, 7, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.Quantity != 4 {
		t.Fatalf("expected merged quantity 4, got %d", item.Quantity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddCapsAtAvailableStock(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	mock.ExpectQuery("FROM products WHERE id").WithArgs(int64(7)).
		WillReturnRows(productRow(7, 5))
	mock.ExpectQuery("FROM cart_items").WithArgs(int64(1), int64(7)).
		WillReturnRows(cartItemRow(3, 1, 7, 4))
	mock.ExpectExec("UPDATE cart_items SET quantity").WithArgs(5, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item, err := svc.Add(1, 7, 10)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity capped at 5, got %d", item.Quantity)
	}
}

func TestAddAtCapIsNoOp(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	mock.ExpectQuery("FROM products WHERE id").WithArgs(int64(7)).
		WillReturnRows(productRow(7, 5))
	mock.ExpectQuery("FROM cart_items").WithArgs(int64(1), int64(7)).
		WillReturnRows(cartItemRow(3, 1, 7, 5))

	// Already at the cap: no UPDATE, no error.
	item, err := svc.Add(1, 7, 1)
	if err != nil {
		t.Fatalf("add at cap must not fail: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity to stay 5, got %d", item.Quantity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected write: %v", err)
	}
}

func TestAddOutOfStockProduct(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	mock.ExpectQuery("FROM products WHERE id").WithArgs(int64(7)).
		WillReturnRows(productRow(7, 0))

	_, err := svc.Add(1, 7, 1)
	if !domain.IsState(err) {
		t.Fatalf("expected state error for empty stock, got %v", err)
	}
}

func TestSetQuantityRejectsOverStock(t *testing.T) {
	svc, mock, done := newCartService(t)
	defer done()

	mock.ExpectQuery("FROM cart_items ci").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "quantity", "price", "currency", "available_stock"}).
			AddRow(3, 7, "Papyrus notebook", 2, "25.00", "USD", 3))

	err := svc.SetQuantity(1, 3, 10)
	if !domain.IsState(err) {
		t.Fatalf("expected state error for over-stock quantity, got %v", err)
	}
}
