package recorder

import (
	"time"

	"SiliconMeter/internal/model"
)

// Observation is one product's outcome within a run.
type Observation struct {
	Date          string
	Product       string
	Price         float64
	ChangePercent float64
	Sentiment     model.Sentiment
}

// RunSummary aggregates a full batch run.
type RunSummary struct {
	Source   string
	Products int
	Updated  int
	Failed   int
	Duration time.Duration
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordObservation(obs *Observation) error
	RecordRun(sum *RunSummary) error
	Close() error
}
