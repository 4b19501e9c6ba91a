package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HistoricalTag classifies historical places by era/type.
type HistoricalTag struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Period string `json:"period,omitempty"`
}

type Company struct {
	ID           int64  `json:"id"`
	AdvertiserID int64  `json:"advertiserId"`
	Name         string `json:"name"`
	Website      string `json:"website,omitempty"`
	Hotline      string `json:"hotline,omitempty"`
	Industry     string `json:"industry,omitempty"`
}
