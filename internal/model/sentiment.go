package model

// Sentiment is the trend signal derived from a product's recent history.
type Sentiment string

const (
	// SentimentPanic means the price is anomalously high vs the trailing average.
	SentimentPanic Sentiment = "panic"
	// SentimentBuy means the price is anomalously low vs the trailing average.
	SentimentBuy Sentiment = "buy"
	// SentimentHold means the price sits within the normal band.
	SentimentHold Sentiment = "hold"
)
