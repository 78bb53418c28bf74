package strategy

import (
	"SiliconMeter/internal/calculator"
	"SiliconMeter/internal/model"
)

// Classification thresholds relative to the trailing average.
const (
	// TrailingWindow is the number of most recent daily prices used as the baseline.
	TrailingWindow = 7
	// PanicThreshold: strictly more than 10% above the average.
	PanicThreshold = 1.10
	// BuyThreshold: strictly more than 5% below the average.
	BuyThreshold = 0.95
)

// Classify derives the sentiment for currentPrice against the trailing
// average of the most recent TrailingWindow entries of history.
// An empty history gives no baseline to compare against, so it holds.
// Ties at either threshold fall into the hold band.
func Classify(currentPrice float64, history []model.PricePoint) model.Sentiment {
	if len(history) == 0 {
		return model.SentimentHold
	}
	avg, err := calculator.TrailingAverage(history, TrailingWindow)
	if err != nil {
		// Unreachable with a non-empty history; stay neutral rather than guess.
		return model.SentimentHold
	}
	switch {
	case currentPrice > avg*PanicThreshold:
		return model.SentimentPanic
	case currentPrice < avg*BuyThreshold:
		return model.SentimentBuy
	default:
		return model.SentimentHold
	}
}
