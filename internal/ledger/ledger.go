package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"SiliconMeter/internal/model"
)

// ErrInvalidBaseline is returned when the previous price used as the
// change-percent baseline is zero or negative.
var ErrInvalidBaseline = errors.New("baseline price must be positive")

// Ledger applies daily price observations to a product's history.
type Ledger struct {
	// MaxHistory caps the history length; the oldest entry is evicted
	// when an append would exceed it.
	MaxHistory int
	// DefaultBaseline is the change-percent baseline used when a product
	// has no history yet. A policy choice of the caller, surfaced here
	// so it never hides as a magic constant.
	DefaultBaseline float64
}

// New creates a Ledger with the given cap and empty-history baseline.
func New(maxHistory int, defaultBaseline float64) *Ledger {
	return &Ledger{MaxHistory: maxHistory, DefaultBaseline: defaultBaseline}
}

// Result is the outcome of recording one observation.
type Result struct {
	// History is the updated sequence. The input slice is never mutated.
	History []model.PricePoint
	// ChangePercent is the move from Baseline to the observed price,
	// rounded to 2 decimal places.
	ChangePercent float64
	// Baseline is the previous price the change was computed against.
	Baseline float64
}

// Baseline returns the last recorded price, or DefaultBaseline for an
// empty history.
func (l *Ledger) Baseline(history []model.PricePoint) float64 {
	if len(history) == 0 {
		return l.DefaultBaseline
	}
	return history[len(history)-1].Price
}

// Record applies today's observed price to the history.
//
// The operation is idempotent per calendar day: if the last entry already
// carries today's date its price is overwritten (last write wins), otherwise
// a new entry is appended. After an append the history is capped at
// MaxHistory by evicting the single oldest entry. At most one entry is
// appended per call, so at most one is ever evicted.
func (l *Ledger) Record(history []model.PricePoint, today string, price float64) (Result, error) {
	baseline := l.Baseline(history)
	if baseline <= 0 {
		return Result{}, fmt.Errorf("record %s: %w (got %v)", today, ErrInvalidBaseline, baseline)
	}

	change := decimal.NewFromFloat(price).
		Sub(decimal.NewFromFloat(baseline)).
		Div(decimal.NewFromFloat(baseline)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	updated := make([]model.PricePoint, len(history), len(history)+1)
	copy(updated, history)

	if n := len(updated); n > 0 && updated[n-1].Date == today {
		updated[n-1].Price = price
	} else {
		updated = append(updated, model.PricePoint{Date: today, Price: price})
		if l.MaxHistory > 0 && len(updated) > l.MaxHistory {
			updated = updated[1:]
		}
	}

	return Result{
		History:       updated,
		ChangePercent: change.InexactFloat64(),
		Baseline:      baseline,
	}, nil
}
