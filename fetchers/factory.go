package fetchers

import (
	"net/http"

	"github.com/arshkumarsingh/rorex"
)

type (
	ExchangeRateAPIConfig struct {
		URL    string
		Client *http.Client
	}

	DummyConfig struct {
		Rate float64
	}
)

func NewFetcher(provider rorex.Provider, config interface{}) rorex.Fetcher {
	switch provider {
	case rorex.ExchangeRateAPIProvider:
		c, _ := config.(ExchangeRateAPIConfig)

		return ExchangeRateAPIFetcher{
			URL:    c.URL,
			Client: c.Client,
		}
	case rorex.DummyProvider:
		c, _ := config.(DummyConfig)

		return DummyFetcher{Rate: c.Rate}
	}

	return nil
}
