package fetchers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/fetchers"
)

func TestNewFetcher(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	exchange := fetchers.NewFetcher(rorex.ExchangeRateAPIProvider, fetchers.ExchangeRateAPIConfig{URL: "http://localhost"})
	asserts.IsType(fetchers.ExchangeRateAPIFetcher{}, exchange)

	dummy := fetchers.NewFetcher(rorex.DummyProvider, fetchers.DummyConfig{Rate: 0.92})
	asserts.IsType(fetchers.DummyFetcher{}, dummy)

	asserts.Nil(fetchers.NewFetcher(rorex.EmptyProvider, nil))
}

func TestDummyFetcher(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	pair := rorex.Pair{Base: "USD", Target: "EUR"}

	rate, err := fetchers.DummyFetcher{Rate: 0.92}.FetchRate(ctx, "", pair)
	asserts.Nil(err)
	asserts.Equal(0.92, rate)

	rate, err = fetchers.DummyFetcher{}.FetchRate(ctx, "", pair)
	asserts.Nil(err)
	asserts.Equal(1.0, rate)

	samples, err := fetchers.DummyFetcher{Rate: 0.92}.FetchHistory(ctx, "", pair)
	asserts.Nil(err)
	asserts.Len(samples, 31)
	asserts.Equal(0.92, samples[0].Rate)

	for i := 1; i < len(samples); i++ {
		asserts.True(samples[i-1].Date.Before(samples[i].Date))
		asserts.Less(samples[i-1].Rate, samples[i].Rate)
	}
}
