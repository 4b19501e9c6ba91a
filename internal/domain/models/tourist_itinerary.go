package models

// TouristItinerary is a tourist-authored trip plan, distinct from guide
// itineraries in the catalog.
type TouristItinerary struct {
	ID        int64  `json:"id"`
	TouristID int64  `json:"touristId"`
	Title     string `json:"title"`
	Locations string `json:"locations"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Tags      string `json:"tags,omitempty"`
}
