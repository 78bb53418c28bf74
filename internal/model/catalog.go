package model

import "time"

// Catalog is the full persisted collection of tracked products,
// unique by name.
type Catalog struct {
	LastUpdated time.Time  `json:"last_updated"`
	Products    []*Product `json:"products"`
}
