package models

import "github.com/shopspring/decimal"

// Bookable catalog entities. Prices are stored in the item's native currency;
// that currency is authoritative for the charge, conversion is display-only.

type Activity struct {
	ID             int64           `json:"id"`
	AdvertiserID   int64           `json:"advertiserId"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Location       string          `json:"location"`
	Date           string          `json:"date"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	AvailableSpots int             `json:"availableSpots"`
	Status         string          `json:"status"`
}

type Itinerary struct {
	ID             int64           `json:"id"`
	GuideID        int64           `json:"guideId"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Language       string          `json:"language,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	AvailableSeats int             `json:"availableSeats"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Status         string          `json:"status"`
}

type Product struct {
	ID             int64           `json:"id"`
	SellerID       int64           `json:"sellerId"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	AvailableStock int             `json:"availableStock"`
	Status         string          `json:"status"`
}

// HistoricalPlace covers museums and historical sites curated by governors.
type HistoricalPlace struct {
	ID           int64           `json:"id"`
	GovernorID   int64           `json:"governorId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location"`
	TicketPrice  decimal.Decimal `json:"ticketPrice"`
	Currency     string          `json:"currency"`
	OpeningHours string          `json:"openingHours,omitempty"`
}
