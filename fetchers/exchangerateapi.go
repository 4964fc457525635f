package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arshkumarsingh/rorex"
)

const historyWindowDays = 30

type (
	// ExchangeRateAPIFetcher talks to the exchangerate-api v6 REST
	// endpoints. The zero value uses the production URL and a fresh
	// client with the default timeout.
	ExchangeRateAPIFetcher struct {
		URL    string
		Client *http.Client
	}
)

var _ rorex.Fetcher = ExchangeRateAPIFetcher{}

func (e ExchangeRateAPIFetcher) baseURL() string {
	if e.URL != "" {
		return e.URL
	}

	return ExchangeRateAPIURL
}

func (e ExchangeRateAPIFetcher) client() *http.Client {
	if e.Client != nil {
		return e.Client
	}

	return &http.Client{Timeout: requestTimeout}
}

func (e ExchangeRateAPIFetcher) get(ctx context.Context, url string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	req.Header.Add("Accept", "application/json")

	res, err := e.client().Do(req)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return err
	}

	if err := json.NewDecoder(res.Body).Decode(data); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrRateUnavailable, err)
	}

	return nil
}

// FetchRate performs one GET against the "latest rates for base currency"
// endpoint and picks the target out of the conversion_rates map.
func (e ExchangeRateAPIFetcher) FetchRate(ctx context.Context, apiKey string, pair rorex.Pair) (float64, error) {
	url := fmt.Sprintf("%s/v6/%s/latest/%s", e.baseURL(), apiKey, pair.Base)

	var data latestResponse

	if err := e.get(ctx, url, &data); err != nil {
		return 0, err
	}

	rate, ok := data.ConversionRates[pair.Target]

	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPairNotFound, pair)
	}

	return rate, nil
}

// FetchHistory walks the trailing 30-day window day by day, ascending. Every
// request carries the full start/end range; the per-day date only selects
// one entry out of the returned rates map. Days missing from the response
// are skipped without error, but any failed request aborts the whole call
// and discards samples gathered so far.
func (e ExchangeRateAPIFetcher) FetchHistory(ctx context.Context, apiKey string, pair rorex.Pair) ([]rorex.RateSample, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -historyWindowDays)

	samples := make([]rorex.RateSample, 0, historyWindowDays+1)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		url := fmt.Sprintf(
			"%s/v6/%s/history/%s/%s?start_date=%s&end_date=%s",
			e.baseURL(), apiKey, pair.Base, pair.Target,
			start.Format(rorex.DateFormat), end.Format(rorex.DateFormat),
		)

		var data historyResponse

		if err := e.get(ctx, url, &data); err != nil {
			return nil, err
		}

		byCode, ok := data.Rates[day.Format(rorex.DateFormat)]

		if !ok {
			continue
		}

		if rate, ok := byCode[pair.Target]; ok {
			samples = append(samples, rorex.RateSample{Date: day, Rate: rate})
		}
	}

	return samples, nil
}
