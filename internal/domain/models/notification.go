package models

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Seen      bool   `json:"seen"`
	CreatedAt string `json:"createdAt"`
}
