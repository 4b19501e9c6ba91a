package services

import (
	"context"
	"database/sql"
	"encoding/json"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/clients"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutService orchestrates the booking/payment flow.
//
// Card payments only create a pending payment session here; the booking record
// is written when the provider's webhook confirms the session. Wallet payments
// debit and book synchronously inside one transaction. In both paths the
// charge amount is recomputed server-side; client-supplied prices for catalog
// items are ignored.
type CheckoutService struct {
	DB *sql.DB

	UserRepo         repositories.UserRepository
	ProductRepo      repositories.ProductRepository
	ActivityRepo     repositories.ActivityRepository
	ItineraryRepo    repositories.ItineraryRepository
	CartRepo         repositories.CartRepository
	SessionRepo      repositories.SessionRepository
	BookingRepo      repositories.BookingRepository
	NotificationRepo repositories.NotificationRepository

	Promo    PromoService
	Payments clients.PaymentClient

	SuccessURL string
	CancelURL  string
	RequestID  string
}

func (s CheckoutService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// HotelSelection describes a room picked from the external hotel search. The
// unit price comes from the search result and is the provider's to verify;
// quantities and totals are still computed here.
type HotelSelection struct {
	HotelID        string          `json:"hotelId" binding:"required"`
	HotelName      string          `json:"hotelName" binding:"required"`
	RoomName       string          `json:"roomName" binding:"required"`
	CheckinDate    string          `json:"checkinDate" binding:"required"`
	CheckoutDate   string          `json:"checkoutDate" binding:"required"`
	NumberOfAdults int             `json:"numberOfAdults"`
	NumberOfRooms  int             `json:"numberOfRooms" binding:"required"`
	PricePerRoom   decimal.Decimal `json:"pricePerRoom" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
}

type FlightSelection struct {
	FlightID        string          `json:"flightId" binding:"required"`
	From            string          `json:"from" binding:"required"`
	To              string          `json:"to" binding:"required"`
	DepartureDate   string          `json:"departureDate" binding:"required"`
	ArrivalDate     string          `json:"arrivalDate"`
	NumberOfTickets int             `json:"numberOfTickets" binding:"required"`
	SeatType        string          `json:"seatType"`
	FlightType      string          `json:"flightType"`
	PricePerTicket  decimal.Decimal `json:"pricePerTicket" binding:"required"`
	Currency        string          `json:"currency" binding:"required"`
}

type TransportSelection struct {
	TransportID   string          `json:"transportId" binding:"required"`
	From          string          `json:"from" binding:"required"`
	To            string          `json:"to" binding:"required"`
	DepartureDate string          `json:"departureDate" binding:"required"`
	Seats         int             `json:"seats" binding:"required"`
	PricePerSeat  decimal.Decimal `json:"pricePerSeat" binding:"required"`
	Currency      string          `json:"currency" binding:"required"`
}

// CheckoutRequest carries one checkout attempt. Exactly one selection matching
// Kind must be set; catalog kinds (activity, itinerary, cart) ignore any
// client price and reprice from the database.
type CheckoutRequest struct {
	Kind        string `json:"kind" binding:"required"`
	PaymentType string `json:"paymentType" binding:"required"`
	PromoCode   string `json:"promoCode"`

	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`

	Hotel          *HotelSelection     `json:"hotel"`
	Flight         *FlightSelection    `json:"flight"`
	Transportation *TransportSelection `json:"transportation"`
}

type Quote struct {
	PreDiscountTotal decimal.Decimal `json:"preDiscountTotal"`
	Discount         Discount        `json:"discount"`
	Total            decimal.Decimal `json:"total"`
	Currency         string          `json:"currency"`
}

type CheckoutResult struct {
	Status    string          `json:"status"` // redirect | confirmed
	SessionID string          `json:"sessionId,omitempty"`
	BookingID int64           `json:"bookingId,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

// sessionPayload is what a pending session needs to materialize the booking
// record once payment confirms, with the final post-discount price baked in.
type sessionPayload struct {
	Hotel          *models.HotelBooking          `json:"hotel,omitempty"`
	Flight         *models.FlightBooking         `json:"flight,omitempty"`
	Transportation *models.TransportationBooking `json:"transportation,omitempty"`
	Item           *models.ItemBooking           `json:"item,omitempty"`
	Order          *models.Order                 `json:"order,omitempty"`
}

type checkoutDraft struct {
	preTotal decimal.Decimal
	currency string
	payload  sessionPayload
}

// Quote recomputes the pre-discount total server-side and applies the promo.
func (s CheckoutService) Quote(touristID int64, req CheckoutRequest) (Quote, error) {
	draft, err := s.buildDraft(touristID, req)
	if err != nil {
		return Quote{}, err
	}
	discount, err := s.Promo.Validate(req.PromoCode, draft.preTotal)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		PreDiscountTotal: draft.preTotal,
		Discount:         discount,
		Total:            utils.Round2(discount.DiscountedTotal),
		Currency:         draft.currency,
	}, nil
}

// Checkout runs the full orchestration for one payment attempt.
func (s CheckoutService) Checkout(ctx context.Context, auth domain.AuthContext, req CheckoutRequest) (CheckoutResult, error) {
	if !domain.KnownPaymentType(req.PaymentType) {
		return CheckoutResult{}, domain.ValidationError{Field: "paymentType", Msg: "unknown payment type"}
	}

	draft, err := s.buildDraft(auth.UserID, req)
	if err != nil {
		return CheckoutResult{}, err
	}
	discount, err := s.Promo.Validate(req.PromoCode, draft.preTotal)
	if err != nil {
		return CheckoutResult{}, err
	}
	total := utils.Round2(discount.DiscountedTotal)
	s.setFinalPrice(&draft, total, req.PaymentType)

	if req.PaymentType == domain.PaymentWallet {
		return s.walletPay(auth.UserID, req.Kind, draft, discount, total)
	}
	return s.cardPay(ctx, auth.UserID, req.Kind, req.PaymentType, draft, discount, total)
}

// cardPay stores a pending session and asks the provider for a checkout
// session. No booking record is created here.
func (s CheckoutService) cardPay(ctx context.Context, touristID int64, kind, paymentType string, draft checkoutDraft, discount Discount, total decimal.Decimal) (CheckoutResult, error) {
	payload, err := json.Marshal(draft.payload)
	if err != nil {
		return CheckoutResult{}, domain.InternalError{Msg: "encode session payload", Err: err}
	}

	sessionID := uuid.NewString()
	if err := s.SessionRepo.Create(models.PaymentSession{
		ID:          sessionID,
		TouristID:   touristID,
		Kind:        kind,
		Payload:     payload,
		Amount:      total,
		Currency:    draft.currency,
		PromoCode:   discount.Code,
		PercentOff:  discount.PercentOff,
		PaymentType: paymentType,
	}); err != nil {
		return CheckoutResult{}, err
	}

	providerID, err := s.Payments.CreateSession(ctx, clients.SessionRequest{
		Reference:          sessionID,
		Amount:             total.StringFixed(2),
		Currency:           draft.currency,
		Description:        kind + " booking",
		PromoCode:          discount.Code,
		DiscountPercentage: discount.PercentOff.String(),
		SuccessURL:         s.SuccessURL,
		CancelURL:          s.CancelURL,
	})
	if err != nil {
		// Leave nothing pending for a session the user can never pay.
		if cancelErr := s.SessionRepo.MarkCanceled(sessionID); cancelErr != nil {
			utils.LogEvent(s.RequestID, "checkout", "cancel_session", cancelErr.Error())
		}
		return CheckoutResult{}, err
	}

	utils.LogEvent(s.RequestID, "checkout", "session_created", "kind="+kind+" session="+sessionID)
	return CheckoutResult{
		Status:    "redirect",
		SessionID: providerID,
		Total:     total,
		Currency:  draft.currency,
	}, nil
}

// walletPay debits and books atomically. Any failure rolls the whole attempt
// back, so an insufficient balance leaves no partial record.
func (s CheckoutService) walletPay(touristID int64, kind string, draft checkoutDraft, discount Discount, total decimal.Decimal) (CheckoutResult, error) {
	tx, err := s.db().Begin()
	if err != nil {
		return CheckoutResult{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.UserRepo.DebitWallet(tx, touristID, total); err != nil {
		return CheckoutResult{}, err
	}

	bookingID, err := s.materialize(tx, touristID, kind, draft.payload)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := s.Promo.Redeem(tx, discount.Code); err != nil {
		return CheckoutResult{}, err
	}

	if _, err := s.NotificationRepo.Insert(tx, models.Notification{
		UserID: touristID,
		Role:   domain.RoleTourist,
		Title:  "Booking confirmed",
		Body:   "Your " + kind + " booking was paid from your wallet.",
	}); err != nil {
		return CheckoutResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return CheckoutResult{}, err
	}
	committed = true

	utils.LogEvent(s.RequestID, "checkout", "wallet_paid", "kind="+kind)
	return CheckoutResult{
		Status:    "confirmed",
		BookingID: bookingID,
		Total:     total,
		Currency:  draft.currency,
	}, nil
}

// ConfirmSession handles the provider's confirmation webhook. It is safe to
// call more than once: only the delivery that flips the pending row creates
// the booking record.
func (s CheckoutService) ConfirmSession(sessionID string) error {
	sess, err := s.SessionRepo.GetByID(sessionID)
	if err != nil {
		return err
	}
	if sess.Status != models.SessionStatusPending {
		// Duplicate or late delivery; already settled one way or the other.
		utils.LogEvent(s.RequestID, "checkout", "confirm_noop", "session="+sessionID+" status="+sess.Status)
		return nil
	}

	var payload sessionPayload
	if err := json.Unmarshal(sess.Payload, &payload); err != nil {
		return domain.InternalError{Msg: "decode session payload", Err: err}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	won, err := s.SessionRepo.MarkConfirmed(tx, sessionID)
	if err != nil {
		return err
	}
	if !won {
		// A concurrent delivery got there first.
		return nil
	}

	if _, err := s.materialize(tx, sess.TouristID, sess.Kind, payload); err != nil {
		return err
	}

	if err := s.Promo.Redeem(tx, sess.PromoCode); err != nil {
		return err
	}

	if _, err := s.NotificationRepo.Insert(tx, models.Notification{
		UserID: sess.TouristID,
		Role:   domain.RoleTourist,
		Title:  "Payment received",
		Body:   "Your " + sess.Kind + " booking is confirmed.",
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	utils.LogEvent(s.RequestID, "checkout", "session_confirmed", "session="+sessionID)
	return nil
}

// buildDraft recomputes the pre-discount total and prepares the booking
// payload for the requested kind.
func (s CheckoutService) buildDraft(touristID int64, req CheckoutRequest) (checkoutDraft, error) {
	if !models.KnownCheckoutKind(req.Kind) {
		return checkoutDraft{}, domain.ValidationError{Field: "kind", Msg: "unknown checkout kind"}
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	switch req.Kind {
	case models.CheckoutHotel:
		sel := req.Hotel
		if sel == nil {
			return checkoutDraft{}, domain.ValidationError{Field: "hotel", Msg: "hotel selection is required"}
		}
		if sel.NumberOfRooms < 1 || sel.PricePerRoom.Sign() <= 0 {
			return checkoutDraft{}, domain.ValidationError{Field: "hotel", Msg: "invalid room count or price"}
		}
		pre := sel.PricePerRoom.Mul(decimal.NewFromInt(int64(sel.NumberOfRooms)))
		return checkoutDraft{
			preTotal: pre,
			currency: sel.Currency,
			payload: sessionPayload{Hotel: &models.HotelBooking{
				TouristID:      touristID,
				HotelID:        sel.HotelID,
				HotelName:      sel.HotelName,
				CheckinDate:    sel.CheckinDate,
				CheckoutDate:   sel.CheckoutDate,
				RoomName:       sel.RoomName,
				NumberOfAdults: sel.NumberOfAdults,
				NumberOfRooms:  sel.NumberOfRooms,
				Currency:       sel.Currency,
			}},
		}, nil

	case models.CheckoutFlight:
		sel := req.Flight
		if sel == nil {
			return checkoutDraft{}, domain.ValidationError{Field: "flight", Msg: "flight selection is required"}
		}
		if sel.NumberOfTickets < 1 || sel.PricePerTicket.Sign() <= 0 {
			return checkoutDraft{}, domain.ValidationError{Field: "flight", Msg: "invalid ticket count or price"}
		}
		pre := sel.PricePerTicket.Mul(decimal.NewFromInt(int64(sel.NumberOfTickets)))
		return checkoutDraft{
			preTotal: pre,
			currency: sel.Currency,
			payload: sessionPayload{Flight: &models.FlightBooking{
				TouristID:       touristID,
				FlightID:        sel.FlightID,
				From:            sel.From,
				To:              sel.To,
				DepartureDate:   sel.DepartureDate,
				ArrivalDate:     sel.ArrivalDate,
				NumberOfTickets: sel.NumberOfTickets,
				SeatType:        sel.SeatType,
				FlightType:      sel.FlightType,
				Currency:        sel.Currency,
			}},
		}, nil

	case models.CheckoutTransportation:
		sel := req.Transportation
		if sel == nil {
			return checkoutDraft{}, domain.ValidationError{Field: "transportation", Msg: "transportation selection is required"}
		}
		if sel.Seats < 1 || sel.PricePerSeat.Sign() <= 0 {
			return checkoutDraft{}, domain.ValidationError{Field: "transportation", Msg: "invalid seat count or price"}
		}
		pre := sel.PricePerSeat.Mul(decimal.NewFromInt(int64(sel.Seats)))
		return checkoutDraft{
			preTotal: pre,
			currency: sel.Currency,
			payload: sessionPayload{Transportation: &models.TransportationBooking{
				TouristID:     touristID,
				TransportID:   sel.TransportID,
				From:          sel.From,
				To:            sel.To,
				DepartureDate: sel.DepartureDate,
				Seats:         sel.Seats,
				Currency:      sel.Currency,
			}},
		}, nil

	case models.CheckoutActivity:
		activity, err := s.ActivityRepo.GetByID(req.ItemID)
		if err != nil {
			return checkoutDraft{}, err
		}
		if activity.AvailableSpots < qty {
			return checkoutDraft{}, domain.StateError{Reason: "insufficient_spots", Msg: "activity is fully booked"}
		}
		pre := activity.Price.Mul(decimal.NewFromInt(int64(qty)))
		return checkoutDraft{
			preTotal: pre,
			currency: activity.Currency,
			payload: sessionPayload{Item: &models.ItemBooking{
				TouristID:   touristID,
				ItemType:    models.CheckoutActivity,
				ItemID:      activity.ID,
				Quantity:    qty,
				BookingDate: activity.Date,
				Currency:    activity.Currency,
			}},
		}, nil

	case models.CheckoutItinerary:
		itinerary, err := s.ItineraryRepo.GetByID(req.ItemID)
		if err != nil {
			return checkoutDraft{}, err
		}
		if itinerary.AvailableSeats < qty {
			return checkoutDraft{}, domain.StateError{Reason: "insufficient_seats", Msg: "itinerary is fully booked"}
		}
		pre := itinerary.Price.Mul(decimal.NewFromInt(int64(qty)))
		return checkoutDraft{
			preTotal: pre,
			currency: itinerary.Currency,
			payload: sessionPayload{Item: &models.ItemBooking{
				TouristID:   touristID,
				ItemType:    models.CheckoutItinerary,
				ItemID:      itinerary.ID,
				Quantity:    qty,
				BookingDate: itinerary.StartDate,
				Currency:    itinerary.Currency,
			}},
		}, nil

	case models.CheckoutCart:
		lines, err := s.CartRepo.ListLines(touristID)
		if err != nil {
			return checkoutDraft{}, err
		}
		if len(lines) == 0 {
			return checkoutDraft{}, domain.ValidationError{Field: "cart", Msg: "cart is empty"}
		}
		pre := decimal.Zero
		currency := lines[0].Currency
		items := make([]models.OrderItem, 0, len(lines))
		for _, l := range lines {
			if l.Quantity > l.AvailableStock {
				return checkoutDraft{}, domain.StateError{Reason: "insufficient_stock", Msg: l.ProductName + " is out of stock"}
			}
			pre = pre.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
			items = append(items, models.OrderItem{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
		return checkoutDraft{
			preTotal: pre,
			currency: currency,
			payload: sessionPayload{Order: &models.Order{
				TouristID: touristID,
				Currency:  currency,
				Items:     items,
			}},
		}, nil
	}

	return checkoutDraft{}, domain.ValidationError{Field: "kind", Msg: "unknown checkout kind"}
}

func (s CheckoutService) setFinalPrice(draft *checkoutDraft, total decimal.Decimal, paymentType string) {
	switch {
	case draft.payload.Hotel != nil:
		draft.payload.Hotel.Price = total
		draft.payload.Hotel.PaymentType = paymentType
	case draft.payload.Flight != nil:
		draft.payload.Flight.Price = total
		draft.payload.Flight.PaymentType = paymentType
	case draft.payload.Transportation != nil:
		draft.payload.Transportation.Price = total
		draft.payload.Transportation.PaymentType = paymentType
	case draft.payload.Item != nil:
		draft.payload.Item.Price = total
		draft.payload.Item.PaymentType = paymentType
	case draft.payload.Order != nil:
		draft.payload.Order.Total = total
		draft.payload.Order.PaymentType = paymentType
	}
}

// materialize writes the booking record plus its side effects (stock/seat
// decrements, cart clearing) on the given transaction.
func (s CheckoutService) materialize(q repositories.DBTX, touristID int64, kind string, payload sessionPayload) (int64, error) {
	switch kind {
	case models.CheckoutHotel:
		if payload.Hotel == nil {
			return 0, domain.InternalError{Msg: "session payload missing hotel details"}
		}
		return s.BookingRepo.InsertHotel(q, *payload.Hotel)

	case models.CheckoutFlight:
		if payload.Flight == nil {
			return 0, domain.InternalError{Msg: "session payload missing flight details"}
		}
		return s.BookingRepo.InsertFlight(q, *payload.Flight)

	case models.CheckoutTransportation:
		if payload.Transportation == nil {
			return 0, domain.InternalError{Msg: "session payload missing transportation details"}
		}
		return s.BookingRepo.InsertTransportation(q, *payload.Transportation)

	case models.CheckoutActivity, models.CheckoutItinerary:
		if payload.Item == nil {
			return 0, domain.InternalError{Msg: "session payload missing item details"}
		}
		if kind == models.CheckoutActivity {
			if err := s.ActivityRepo.DecrementSpots(q, payload.Item.ItemID, payload.Item.Quantity); err != nil {
				return 0, err
			}
		} else {
			if err := s.ItineraryRepo.DecrementSeats(q, payload.Item.ItemID, payload.Item.Quantity); err != nil {
				return 0, err
			}
		}
		return s.BookingRepo.InsertItem(q, *payload.Item)

	case models.CheckoutCart:
		if payload.Order == nil {
			return 0, domain.InternalError{Msg: "session payload missing order details"}
		}
		for _, item := range payload.Order.Items {
			if err := s.ProductRepo.DecrementStock(q, item.ProductID, item.Quantity); err != nil {
				return 0, err
			}
		}
		orderID, err := s.BookingRepo.InsertOrder(q, *payload.Order)
		if err != nil {
			return 0, err
		}
		if err := s.CartRepo.Clear(q, touristID); err != nil {
			return 0, err
		}
		return orderID, nil
	}

	return 0, domain.InternalError{Msg: "unknown session kind " + kind}
}
