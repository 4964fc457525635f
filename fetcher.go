package rorex

import "context"

type (
	// Fetcher retrieves conversion rates from a rate provider. Both calls
	// block for the duration of the underlying HTTP round-trips; callers
	// that must not block run them through a background runner.
	Fetcher interface {
		FetchRate(ctx context.Context, apiKey string, pair Pair) (float64, error)
		FetchHistory(ctx context.Context, apiKey string, pair Pair) ([]RateSample, error)
	}
)
