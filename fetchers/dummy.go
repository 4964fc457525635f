package fetchers

import (
	"context"
	"time"

	"github.com/arshkumarsingh/rorex"
)

type (
	// DummyFetcher serves a fixed rate without touching the network. Used
	// for wiring tests and as the "dummy" provider of the factory.
	DummyFetcher struct {
		Rate float64
	}
)

var _ rorex.Fetcher = DummyFetcher{}

func (d DummyFetcher) rate() float64 {
	if d.Rate != 0 {
		return d.Rate
	}

	return 1
}

func (d DummyFetcher) FetchRate(_ context.Context, _ string, _ rorex.Pair) (float64, error) {
	return d.rate(), nil
}

// FetchHistory returns one sample per day of the trailing window with a
// small upward drift, so consumers that plot the series get a visible line.
func (d DummyFetcher) FetchHistory(_ context.Context, _ string, _ rorex.Pair) ([]rorex.RateSample, error) {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -historyWindowDays)

	samples := make([]rorex.RateSample, 0, historyWindowDays+1)

	for i, day := 0, start; !day.After(end); i, day = i+1, day.AddDate(0, 0, 1) {
		samples = append(samples, rorex.RateSample{Date: day, Rate: d.rate() + float64(i)/1000})
	}

	return samples, nil
}
