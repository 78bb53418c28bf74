package collector

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"SiliconMeter/internal/model"
)

// ScrapeFetcher retrieves a product page over HTTP and extracts the price
// through the product's CSS selector.
type ScrapeFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewScrapeFetcher creates a fetcher with the given user agent, request
// timeout and optional proxy.
func NewScrapeFetcher(userAgent string, timeout time.Duration, proxyURL string) *ScrapeFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScrapeFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		UserAgent: userAgent,
	}
}

func (f *ScrapeFetcher) Name() string { return "scrape" }

// FetchPrice fetches the product's URL and extracts the first node matching
// its selector. Retailer pages format prices for humans, so the extracted
// text is cleaned of currency signs and thousands separators before parsing.
func (f *ScrapeFetcher) FetchPrice(p model.Product, _ float64) (float64, error) {
	if p.URL == "" || p.Selector == "" {
		return 0, &AcquisitionError{Product: p.Name, Err: fmt.Errorf("missing url or selector")}
	}

	req, err := http.NewRequest("GET", p.URL, nil)
	if err != nil {
		return 0, &AcquisitionError{Product: p.Name, Err: err}
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, &AcquisitionError{Product: p.Name, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, &AcquisitionError{Product: p.Name, Err: fmt.Errorf("status %d from %s", resp.StatusCode, p.URL)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, &AcquisitionError{Product: p.Name, Err: fmt.Errorf("parse html: %w", err)}
	}

	sel := doc.Find(p.Selector).First()
	if sel.Length() == 0 {
		return 0, &AcquisitionError{Product: p.Name, Err: fmt.Errorf("selector %q matched nothing", p.Selector)}
	}

	price, err := parsePrice(sel.Text())
	if err != nil {
		return 0, &AcquisitionError{Product: p.Name, Err: err}
	}
	return price, nil
}

var priceCleaner = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

func parsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(priceCleaner.Replace(text))
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", text, err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("non-positive price %q", text)
	}
	return price, nil
}
