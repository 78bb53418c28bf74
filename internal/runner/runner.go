package runner

import (
	"fmt"
	"log"
	"time"

	"SiliconMeter/internal/collector"
	"SiliconMeter/internal/ledger"
	"SiliconMeter/internal/model"
	"SiliconMeter/internal/recorder"
	"SiliconMeter/internal/store"
	"SiliconMeter/internal/strategy"
)

// Runner executes one run-to-completion batch: fetch each product's price,
// classify it, fold it into the history, then save the catalog once.
type Runner struct {
	Fetcher  collector.Fetcher
	Store    *store.Store
	Ledger   *ledger.Ledger
	Recorder recorder.Recorder
}

// New creates a Runner.
func New(f collector.Fetcher, s *store.Store, l *ledger.Ledger, rec recorder.Recorder) *Runner {
	return &Runner{Fetcher: f, Store: s, Ledger: l, Recorder: rec}
}

// ProductResult is one product's outcome within a run.
type ProductResult struct {
	Name          string
	Price         float64
	ChangePercent float64
	Sentiment     model.Sentiment
	Err           error
}

// Report summarizes a batch run for logging and notification.
type Report struct {
	Date     string
	Source   string
	Results  []ProductResult
	Updated  int
	Failed   int
	Duration time.Duration
}

// Run processes every product in the catalog and saves it. Per-product
// failures are tolerated: one bad product never blocks the others' updates
// or the final save.
func (r *Runner) Run() (*Report, error) {
	start := time.Now()

	cat, err := r.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	today := start.Format(model.DateLayout)
	report := &Report{Date: today, Source: r.Fetcher.Name()}

	for _, p := range cat.Products {
		res := r.update(p, today)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			report.Failed++
			log.Printf("[WARN] %s: %v", p.Name, res.Err)
			continue
		}
		report.Updated++
		log.Printf("[INFO] %s: price=%.2f change=%+.2f%% sentiment=%s",
			p.Name, res.Price, res.ChangePercent, res.Sentiment)

		if err := r.Recorder.RecordObservation(&recorder.Observation{
			Date:          today,
			Product:       p.Name,
			Price:         res.Price,
			ChangePercent: res.ChangePercent,
			Sentiment:     res.Sentiment,
		}); err != nil {
			log.Printf("[ERROR] record observation for %s: %v", p.Name, err)
		}
	}

	if err := r.Store.Save(cat); err != nil {
		return report, fmt.Errorf("save catalog: %w", err)
	}

	report.Duration = time.Since(start)
	if err := r.Recorder.RecordRun(&recorder.RunSummary{
		Source:   report.Source,
		Products: len(cat.Products),
		Updated:  report.Updated,
		Failed:   report.Failed,
		Duration: report.Duration,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	return report, nil
}

// update fetches and applies one product's observation. The product is only
// mutated once everything has succeeded.
func (r *Runner) update(p *model.Product, today string) ProductResult {
	baseline := r.Ledger.Baseline(p.History)

	price, err := r.Fetcher.FetchPrice(*p, baseline)
	if err != nil {
		return ProductResult{Name: p.Name, Err: err}
	}

	// Sentiment reflects the trend up to but excluding today's point, so
	// classification runs against the history as it stood before this
	// observation is recorded.
	sentiment := strategy.Classify(price, p.History)

	res, err := r.Ledger.Record(p.History, today, price)
	if err != nil {
		return ProductResult{Name: p.Name, Err: err}
	}

	p.CurrentPrice = price
	p.Change24h = res.ChangePercent
	p.Sentiment = sentiment
	p.History = res.History

	return ProductResult{
		Name:          p.Name,
		Price:         price,
		ChangePercent: res.ChangePercent,
		Sentiment:     sentiment,
	}
}
