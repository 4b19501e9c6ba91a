package models

import "github.com/shopspring/decimal"

// Booking records are durable proof of purchase: created only after confirmed
// payment, price already post-discount, cancellation deletes the row.

type FlightBooking struct {
	ID              int64           `json:"id"`
	TouristID       int64           `json:"touristId"`
	FlightID        string          `json:"flightId"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	DepartureDate   string          `json:"departureDate"`
	ArrivalDate     string          `json:"arrivalDate"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	NumberOfTickets int             `json:"numberOfTickets"`
	SeatType        string          `json:"seatType"`
	FlightType      string          `json:"flightType"` // OneWay | Return
	PaymentType     string          `json:"paymentType"`
}

type HotelBooking struct {
	ID             int64           `json:"id"`
	TouristID      int64           `json:"touristId"`
	HotelID        string          `json:"hotelId"`
	HotelName      string          `json:"hotelName"`
	CheckinDate    string          `json:"checkinDate"`
	CheckoutDate   string          `json:"checkoutDate"`
	RoomName       string          `json:"roomName"`
	NumberOfAdults int             `json:"numberOfAdults"`
	NumberOfRooms  int             `json:"numberOfRooms"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	PaymentType    string          `json:"paymentType"`
}

type TransportationBooking struct {
	ID            int64           `json:"id"`
	TouristID     int64           `json:"touristId"`
	TransportID   string          `json:"transportId"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	DepartureDate string          `json:"departureDate"`
	Seats         int             `json:"seats"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	PaymentType   string          `json:"paymentType"`
}

// ItemBooking covers activities and guide itineraries with one shape.
type ItemBooking struct {
	ID          int64           `json:"id"`
	TouristID   int64           `json:"touristId"`
	ItemType    string          `json:"itemType"` // activity | itinerary
	ItemID      int64           `json:"itemId"`
	Quantity    int             `json:"quantity"`
	BookingDate string          `json:"bookingDate"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	PaymentType string          `json:"paymentType"`
}

// Order persists a confirmed product-cart purchase.
type Order struct {
	ID          int64           `json:"id"`
	TouristID   int64           `json:"touristId"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	PaymentType string          `json:"paymentType"`
	CreatedAt   string          `json:"createdAt"`
	Items       []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
