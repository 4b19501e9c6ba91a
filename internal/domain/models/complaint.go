package models

const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusResolved = "resolved"
)

type Complaint struct {
	ID        int64  `json:"id"`
	TouristID int64  `json:"touristId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	Reply     string `json:"reply,omitempty"`
	CreatedAt string `json:"createdAt"`
}
