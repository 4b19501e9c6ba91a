package services

import (
	"context"
	"testing"

	"tripgenie/internal/clients"
	"tripgenie/internal/domain"
	"tripgenie/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

type fakePayments struct {
	id    string
	err   error
	calls int
	last  clients.SessionRequest
}

func (f *fakePayments) CreateSession(_ context.Context, req clients.SessionRequest) (string, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func newCheckoutService(t *testing.T, payments clients.PaymentClient) (CheckoutService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := CheckoutService{
		DB:               db,
		UserRepo:         repositories.UserRepository{DB: db},
		ProductRepo:      repositories.ProductRepository{DB: db},
		ActivityRepo:     repositories.ActivityRepository{DB: db},
		ItineraryRepo:    repositories.ItineraryRepository{DB: db},
		CartRepo:         repositories.CartRepository{DB: db},
		SessionRepo:      repositories.SessionRepository{DB: db},
		BookingRepo:      repositories.BookingRepository{DB: db},
		NotificationRepo: repositories.NotificationRepository{DB: db},
		Promo:            PromoService{PromoRepo: repositories.PromoRepository{DB: db}},
		Payments:         payments,
		SuccessURL:       "https://app.test/checkout/success",
		CancelURL:        "https://app.test/checkout/cancel",
	}
	return svc, mock, func() { db.Close() }
}

func hotelCheckoutRequest(paymentType string) CheckoutRequest {
	return CheckoutRequest{
		Kind:        "hotel",
		PaymentType: paymentType,
		Hotel: &HotelSelection{
			HotelID:        "HTL-9",
			HotelName:      "Nile View",
			RoomName:       "Double",
			CheckinDate:    "2025-07-01",
			CheckoutDate:   "2025-07-04",
			NumberOfAdults: 2,
			NumberOfRooms:  2,
			PricePerRoom:   decimal.NewFromInt(100),
			Currency:       "USD",
		},
	}
}

func TestCardCheckoutCreatesSessionWithoutBooking(t *testing.T) {
	fake := &fakePayments{id: "prov_123"}
	svc, mock, done := newCheckoutService(t, fake)
	defer done()

	mock.ExpectExec("INSERT INTO payment_sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	result, err := svc.Checkout(context.Background(), domain.AuthContext{UserID: 1, Role: domain.RoleTourist}, hotelCheckoutRequest(domain.PaymentCreditCard))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Status != "redirect" {
		t.Fatalf("expected redirect, got %q", result.Status)
	}
	if result.SessionID != "prov_123" {
		t.Fatalf("expected provider session id, got %q", result.SessionID)
	}
	if !result.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("server-side total wrong: %s", result.Total)
	}
	if fake.calls != 1 {
		t.Fatalf("provider called %d times", fake.calls)
	}
	if fake.last.Amount != "200.00" || fake.last.Currency != "USD" {
		t.Fatalf("provider got wrong charge: %s %s", fake.last.Amount, fake.last.Currency)
	}
	if fake.last.Reference == "" {
		t.Fatalf("session reference missing")
	}

	// No booking insert may happen before the webhook confirms.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected writes: %v", err)
	}
}

func TestCardCheckoutProviderFailureCancelsSession(t *testing.T) {
	fake := &fakePayments{err: domain.ExternalError{Service: "payments", Msg: "card declined"}}
	svc, mock, done := newCheckoutService(t, fake)
	defer done()

	mock.ExpectExec("INSERT INTO payment_sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE payment_sessions SET status='canceled'").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := svc.Checkout(context.Background(), domain.AuthContext{UserID: 1}, hotelCheckoutRequest(domain.PaymentCreditCard))
	if !domain.IsExternal(err) {
		t.Fatalf("expected external error, got %v", err)
	}
	if err.Error() != "card declined" {
		t.Fatalf("provider message must survive verbatim, got %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWalletCheckoutInsufficientBalanceRollsBack(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Checkout(context.Background(), domain.AuthContext{UserID: 1}, hotelCheckoutRequest(domain.PaymentWallet))
	if !domain.IsState(err) {
		t.Fatalf("expected state error, got %v", err)
	}
	if err.Error() != "insufficient wallet balance" {
		t.Fatalf("wrong message: %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction must roll back cleanly: %v", err)
	}
}

func TestWalletCheckoutDebitsBooksAndRedeems(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM promo_codes WHERE BINARY code").WithArgs("SAVE10").
		WillReturnRows(promoRow("SAVE10", "10.00", "active", "2000-01-01", "2999-12-31", 100, 0))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO hotel_bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("UPDATE promo_codes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := hotelCheckoutRequest(domain.PaymentWallet)
	req.PromoCode = "SAVE10"

	result, err := svc.Checkout(context.Background(), domain.AuthContext{UserID: 1, Role: domain.RoleTourist}, req)
	if err != nil {
		t.Fatalf("wallet checkout failed: %v", err)
	}
	if result.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %q", result.Status)
	}
	if result.BookingID != 42 {
		t.Fatalf("expected booking id 42, got %d", result.BookingID)
	}
	if !result.Total.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected discounted total 180, got %s", result.Total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func sessionRows(status, payload string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tourist_id", "kind", "payload", "amount", "currency",
		"promo_code", "percent_off", "payment_type", "status", "created_at", "confirmed_at",
	}).AddRow("sess-1", 1, "hotel", []byte(payload), "200.00", "USD", "", "0.00", "CreditCard", status, "2025-07-01 10:00:00", "")
}

const hotelPayload = `{"hotel":{"touristId":1,"hotelId":"HTL-9","hotelName":"Nile View","checkinDate":"2025-07-01","checkoutDate":"2025-07-04","roomName":"Double","numberOfAdults":2,"numberOfRooms":2,"price":"200","currency":"USD","paymentType":"CreditCard"}}`

func TestConfirmSessionMaterializesBookingOnce(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM payment_sessions WHERE id").WithArgs("sess-1").
		WillReturnRows(sessionRows("pending", hotelPayload))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO hotel_bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := svc.ConfirmSession("sess-1"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmSessionDuplicateDeliveryIsNoOp(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM payment_sessions WHERE id").WithArgs("sess-1").
		WillReturnRows(sessionRows("confirmed", hotelPayload))

	if err := svc.ConfirmSession("sess-1"); err != nil {
		t.Fatalf("duplicate delivery must be a no-op, got %v", err)
	}
	// No transaction, no booking insert.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected writes: %v", err)
	}
}

func TestConfirmSessionLosesRaceGracefully(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM payment_sessions WHERE id").WithArgs("sess-1").
		WillReturnRows(sessionRows("pending", hotelPayload))
	mock.ExpectBegin()
	// A concurrent delivery flipped the row between the read and this update.
	mock.ExpectExec("UPDATE payment_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := svc.ConfirmSession("sess-1"); err != nil {
		t.Fatalf("losing the race must not error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmSessionUnknownID(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM payment_sessions WHERE id").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.ConfirmSession("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuoteRecomputesCartTotalServerSide(t *testing.T) {
	svc, mock, done := newCheckoutService(t, &fakePayments{})
	defer done()

	mock.ExpectQuery("FROM cart_items ci").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "quantity", "price", "currency", "available_stock"}).
			AddRow(1, 7, "Papyrus notebook", 2, "25.00", "USD", 10).
			AddRow(2, 8, "Scarab amulet", 1, "40.00", "USD", 3))

	quote, err := svc.Quote(1, CheckoutRequest{Kind: "cart", PaymentType: domain.PaymentWallet})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.PreDiscountTotal.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected pre-discount 90, got %s", quote.PreDiscountTotal)
	}
	if !quote.Total.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected total 90, got %s", quote.Total)
	}
	if quote.Currency != "USD" {
		t.Fatalf("expected USD, got %q", quote.Currency)
	}
}
