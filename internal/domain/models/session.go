package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCanceled  = "canceled"
)

// Checkout kinds a payment session can carry.
const (
	CheckoutHotel          = "hotel"
	CheckoutFlight         = "flight"
	CheckoutTransportation = "transportation"
	CheckoutActivity       = "activity"
	CheckoutItinerary      = "itinerary"
	CheckoutCart           = "cart"
)

// PaymentSession is the pending half of a card payment. The booking record is
// created only when the provider confirms this session.
type PaymentSession struct {
	ID          string          `json:"id"`
	TouristID   int64           `json:"touristId"`
	Kind        string          `json:"kind"`
	Payload     json.RawMessage `json:"payload"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PromoCode   string          `json:"promoCode,omitempty"`
	PercentOff  decimal.Decimal `json:"percentOff"`
	PaymentType string          `json:"paymentType"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	ConfirmedAt string          `json:"confirmedAt,omitempty"`
}

// KnownCheckoutKind reports whether k names a bookable checkout kind.
func KnownCheckoutKind(k string) bool {
	switch k {
	case CheckoutHotel, CheckoutFlight, CheckoutTransportation,
		CheckoutActivity, CheckoutItinerary, CheckoutCart:
		return true
	}
	return false
}
