package collector

import (
	"fmt"

	"SiliconMeter/internal/model"
)

// Fetcher supplies a current price for a product. lastPrice is the most
// recent recorded price (or the configured default baseline) for sources
// that derive the next price from the previous one.
type Fetcher interface {
	FetchPrice(p model.Product, lastPrice float64) (float64, error)
	Name() string
}

// AcquisitionError wraps any network, status, parse, or missing-selector
// condition that left a product without a price this run. The runner skips
// the product and continues the batch.
type AcquisitionError struct {
	Product string
	Err     error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire price for %s: %v", e.Product, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }
