package ledger

import (
	"errors"
	"math"
	"testing"
	"time"

	"SiliconMeter/internal/model"
)

func day(i int) string {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format(model.DateLayout)
}

func TestRecord_AppendsNewDay(t *testing.T) {
	l := New(365, 100)
	history := []model.PricePoint{
		{Date: day(0), Price: 100},
		{Date: day(1), Price: 110},
	}

	res, err := l.Record(history, day(2), 121)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.History) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(res.History))
	}
	last := res.History[2]
	if last.Date != day(2) || last.Price != 121 {
		t.Errorf("unexpected last entry: %+v", last)
	}
	if res.Baseline != 110 {
		t.Errorf("expected baseline 110, got %v", res.Baseline)
	}
	if res.ChangePercent != 10.0 {
		t.Errorf("expected change 10.0, got %v", res.ChangePercent)
	}
}

func TestRecord_SameDayOverwrites(t *testing.T) {
	l := New(365, 100)
	today := day(5)

	res1, err := l.Record(nil, today, 100)
	if err != nil {
		t.Fatalf("first record: %v", err)
	}
	res2, err := l.Record(res1.History, today, 103)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}

	if len(res2.History) != len(res1.History) {
		t.Errorf("same-day rerun changed length: %d -> %d", len(res1.History), len(res2.History))
	}
	if got := res2.History[len(res2.History)-1].Price; got != 103 {
		t.Errorf("expected last write to win with 103, got %v", got)
	}
}

func TestRecord_InputNotMutated(t *testing.T) {
	l := New(365, 100)
	history := []model.PricePoint{{Date: day(0), Price: 100}}

	if _, err := l.Record(history, day(0), 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history[0].Price != 100 {
		t.Errorf("input history mutated: %v", history[0].Price)
	}
}

func TestRecord_CapEvictsOldest(t *testing.T) {
	l := New(365, 100)
	history := make([]model.PricePoint, 365)
	for i := range history {
		history[i] = model.PricePoint{Date: day(i), Price: 100}
	}

	res, err := l.Record(history, day(365), 105)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.History) != 365 {
		t.Fatalf("expected capped length 365, got %d", len(res.History))
	}
	if res.History[0].Date != day(1) {
		t.Errorf("expected oldest entry evicted, first is %s", res.History[0].Date)
	}
	if got := res.History[364]; got.Date != day(365) || got.Price != 105 {
		t.Errorf("unexpected newest entry: %+v", got)
	}
}

func TestRecord_EmptyHistoryUsesDefaultBaseline(t *testing.T) {
	l := New(365, 100)
	res, err := l.Record(nil, day(0), 110)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Baseline != 100 {
		t.Errorf("expected default baseline 100, got %v", res.Baseline)
	}
	if res.ChangePercent != 10.0 {
		t.Errorf("expected change 10.0, got %v", res.ChangePercent)
	}
	if len(res.History) != 1 {
		t.Errorf("expected 1 entry, got %d", len(res.History))
	}
}

func TestRecord_InvalidBaseline(t *testing.T) {
	tests := []struct {
		name    string
		ledger  *Ledger
		history []model.PricePoint
	}{
		{"zero default baseline", New(365, 0), nil},
		{"zero last price", New(365, 100), []model.PricePoint{{Date: day(0), Price: 0}}},
		{"negative last price", New(365, 100), []model.PricePoint{{Date: day(0), Price: -5}}},
	}
	for _, tt := range tests {
		res, err := tt.ledger.Record(tt.history, day(1), 50)
		if !errors.Is(err, ErrInvalidBaseline) {
			t.Errorf("%s: expected ErrInvalidBaseline, got %v", tt.name, err)
		}
		if math.IsInf(res.ChangePercent, 0) || math.IsNaN(res.ChangePercent) {
			t.Errorf("%s: change percent leaked Inf/NaN: %v", tt.name, res.ChangePercent)
		}
	}
}

func TestRecord_ChangePercentRounding(t *testing.T) {
	l := New(365, 100)
	history := []model.PricePoint{{Date: day(0), Price: 3}}

	// (4-3)/3*100 = 33.333... -> 33.33
	res, err := l.Record(history, day(1), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ChangePercent != 33.33 {
		t.Errorf("expected 33.33, got %v", res.ChangePercent)
	}
}
