package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SiliconMeter/internal/model"
)

func newTestFetcher() *ScrapeFetcher {
	return NewScrapeFetcher("test-agent", 5*time.Second, "")
}

func TestScrapeFetcher_ExtractsPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("unexpected user agent: %q", ua)
		}
		w.Write([]byte(`<html><body>
			<span class="title">DDR5 32GB Kit</span>
			<div id="price"> $1,234.56 </div>
		</body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	price, err := f.FetchPrice(model.Product{Name: "ram", URL: srv.URL, Selector: "#price"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 1234.56 {
		t.Errorf("expected 1234.56, got %v", price)
	}
}

func TestScrapeFetcher_SelectorMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><div id="other">hi</div></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := f.FetchPrice(model.Product{Name: "ram", URL: srv.URL, Selector: "#price"}, 0)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected *AcquisitionError, got %v", err)
	}
	if acqErr.Product != "ram" {
		t.Errorf("expected product name in error, got %q", acqErr.Product)
	}
}

func TestScrapeFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := f.FetchPrice(model.Product{Name: "ram", URL: srv.URL, Selector: "#price"}, 0)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected *AcquisitionError for status 403, got %v", err)
	}
}

func TestScrapeFetcher_UnparsablePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><div id="price">call for price</div></body></html>`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := f.FetchPrice(model.Product{Name: "ram", URL: srv.URL, Selector: "#price"}, 0)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected *AcquisitionError for unparsable text, got %v", err)
	}
}

func TestScrapeFetcher_MissingParams(t *testing.T) {
	f := newTestFetcher()
	_, err := f.FetchPrice(model.Product{Name: "ram"}, 0)
	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected *AcquisitionError for missing url/selector, got %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"$1,234.56", 1234.56, false},
		{"  99.90  ", 99.9, false},
		{"€499.99", 499.99, false},
		{"£45", 45, false},
		{"free", 0, true},
		{"-10", 0, true},
		{"0", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePrice(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePrice(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePrice(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
