package model

// DateLayout is the day-resolution date format used throughout the tracker
// and in the persisted catalog.
const DateLayout = "2006-01-02"

// PricePoint is one recorded daily price. Within a history, dates are
// strictly ascending and at most one point exists per calendar date.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// Product is a tracked item with its acquisition parameters and the fields
// derived on each run. CurrentPrice, Change24h and Sentiment stay at their
// zero values until the first successful update.
type Product struct {
	Name         string       `json:"name"`
	URL          string       `json:"url,omitempty"`
	Selector     string       `json:"selector,omitempty"`
	CurrentPrice float64      `json:"current_price,omitempty"`
	Change24h    float64      `json:"change_24h,omitempty"`
	Sentiment    Sentiment    `json:"sentiment,omitempty"`
	History      []PricePoint `json:"history"`
}
