package collector

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"SiliconMeter/internal/model"
)

// Volatility bounds for the simulated market: biased positive so prices
// trend gently up, matching the commodity being tracked.
const (
	simMinChange = -0.05
	simMaxChange = 0.10
)

// SimulatedFetcher generates prices as a random walk from the last recorded
// price. Used for demo runs and tests; never fails.
type SimulatedFetcher struct {
	rng *rand.Rand
}

// NewSimulatedFetcher creates a fetcher seeded for reproducible sequences.
// seed 0 falls back to the wall clock.
func NewSimulatedFetcher(seed int64) *SimulatedFetcher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SimulatedFetcher{rng: rand.New(rand.NewSource(seed))}
}

func (f *SimulatedFetcher) Name() string { return "simulate" }

// FetchPrice draws a relative change uniformly from [simMinChange,
// simMaxChange), applies it to lastPrice and rounds to 2 decimals.
func (f *SimulatedFetcher) FetchPrice(_ model.Product, lastPrice float64) (float64, error) {
	volatility := simMinChange + f.rng.Float64()*(simMaxChange-simMinChange)
	next := decimal.NewFromFloat(lastPrice * (1 + volatility)).Round(2)
	return next.InexactFloat64(), nil
}
