// Package rates looks up exchange rates from a dated, currency-keyed JSON
// source and converts amounts into the home currency.
//
// The source publishes one document per calendar day. Days without data are
// common (weekends, very recent dates), so a missing document is not an
// error by itself: the client steps back one day at a time, up to a fixed
// bound, before giving up. Every other failure mode aborts immediately.
//
// Example usage:
//
//	client := rates.NewClient(rates.WithHomeCurrency("cop"))
//	converted, err := client.Convert(ctx, "usd", amount, date)
package rates

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"context"

	"github.com/shopspring/decimal"

	"github.com/jdcardona/tripledger/telemetry"
	"github.com/jdcardona/tripledger/trip"
)

const (
	// DefaultBaseURL is the public currency-api mirror the client queries
	// when no override is configured.
	DefaultBaseURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api"

	// DefaultHomeCurrency is the reporting currency all expenses are
	// normalized to.
	DefaultHomeCurrency = "cop"

	// DefaultMaxAttempts bounds the day-stepping fallback: the requested
	// date plus up to six prior days.
	DefaultMaxAttempts = 7

	// DefaultTimeout bounds each individual network attempt. A timeout is
	// a hard failure, not a trigger for day-stepping.
	DefaultTimeout = 5 * time.Second
)

// Client queries the exchange-rate source. It keeps no state between calls
// and performs no caching; every lookup re-queries the source.
type Client struct {
	baseURL      string
	homeCurrency string
	maxAttempts  int
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the rate source base URL. Tests point this at a
// local server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHomeCurrency sets the currency rates are expressed in. The home
// currency is explicit per-client configuration, not shared global state.
func WithHomeCurrency(currency string) Option {
	return func(c *Client) {
		c.homeCurrency = strings.ToLower(currency)
	}
}

// WithHTTPClient replaces the underlying HTTP client, including its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMaxAttempts overrides how many consecutive days are tried before the
// lookup is declared unavailable.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// NewClient creates a rate client with the given options applied over the
// defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		homeCurrency: DefaultHomeCurrency,
		maxAttempts:  DefaultMaxAttempts,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HomeCurrency returns the currency code lookups are quoted in.
func (c *Client) HomeCurrency() string { return c.homeCurrency }

// lookup is the three-way outcome of a single fetch attempt. Modeling "no
// data for this date" as a value keeps the day-stepping retry an explicit
// branch instead of exception-style control flow.
type lookup struct {
	rate     decimal.Decimal
	notFound bool
}

// Rate returns how many home-currency units one unit of currency bought on
// the given date, rounded to 2 decimal places.
//
// When the source has no document for the exact date, the previous calendar
// day is tried, up to the configured attempt bound. Exhausting the bound or
// hitting any transport, status or decoding failure returns an
// *UnavailableError; no raw transport error escapes this package.
func (c *Client) Rate(ctx context.Context, currency string, date trip.Date) (decimal.Decimal, error) {
	currency = strings.ToLower(currency)

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("rates.lookup %s->%s", currency, c.homeCurrency))
	defer timer.End()

	day := date
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		attemptTimer := timer.Child(fmt.Sprintf("fetch %s", day))
		result, err := c.fetch(ctx, currency, day)
		attemptTimer.End()

		if err != nil {
			return decimal.Zero, &UnavailableError{
				Currency: currency,
				Date:     date,
				Attempts: attempt,
				Cause:    err,
			}
		}
		if result.notFound {
			day = day.Prev()
			continue
		}
		return result.rate.Round(2), nil
	}

	return decimal.Zero, &UnavailableError{
		Currency:  currency,
		Date:      date,
		Attempts:  c.maxAttempts,
		Exhausted: true,
	}
}

// Convert converts amount from currency into the home currency using the
// rate for date, rounded to 2 decimal places. It fails exactly as Rate
// fails and introduces no error kinds of its own.
func (c *Client) Convert(ctx context.Context, currency string, amount decimal.Decimal, date trip.Date) (decimal.Decimal, error) {
	rate, err := c.Rate(ctx, currency, date)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(2), nil
}

// fetch performs one GET against the source for one candidate date.
func (c *Client) fetch(ctx context.Context, currency string, day trip.Date) (lookup, error) {
	url := fmt.Sprintf("%s/%s/v1/currencies/%s.json", c.baseURL, day, currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return lookup{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return lookup{}, fmt.Errorf("querying rate source: %w", err)
	}
	defer resp.Body.Close()

	// Only the "no document for this date" case feeds the day-stepping
	// fallback; every other non-success status is a hard failure.
	if resp.StatusCode == http.StatusNotFound {
		return lookup{notFound: true}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return lookup{}, fmt.Errorf("rate source returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	rate, err := decodeRate(resp.Body, currency, c.homeCurrency)
	if err != nil {
		return lookup{}, err
	}
	return lookup{rate: rate}, nil
}

// decodeRate extracts the home-currency rate from a source document. The
// document is an object with a "date" field and one key per queried
// currency, whose value maps currency codes to numeric rates:
//
//	{"date": "2025-06-01", "usd": {"cop": 4123.4567, "eur": 0.88, ...}}
func decodeRate(r io.Reader, currency, home string) (decimal.Decimal, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return decimal.Zero, fmt.Errorf("decoding rate document: %w", err)
	}

	raw, ok := doc[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate document has no entry for %q", currency)
	}

	var table map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &table); err != nil {
		return decimal.Zero, fmt.Errorf("decoding rates for %q: %w", currency, err)
	}

	rate, ok := table[home]
	if !ok {
		return decimal.Zero, fmt.Errorf("no %s->%s rate in document", currency, home)
	}
	return rate, nil
}
