package fetchers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ExchangeRateAPIURL is the production host for the exchangerate-api v6
// endpoints. Tests point the fetcher at an httptest server instead.
const ExchangeRateAPIURL = "https://v6.exchangerate-api.com"

const requestTimeout = 10 * time.Second

var (
	// ErrRateUnavailable is the class of every transport, HTTP status and
	// decode failure. Concrete errors wrap it, so errors.Is against it
	// matches all of them.
	ErrRateUnavailable = errors.New("rate unavailable")

	// ErrPairNotFound means the provider answered with a well-formed body
	// that does not contain the requested target currency.
	ErrPairNotFound = errors.New("currency pair not found")

	ErrClient  = fmt.Errorf("%w: client error", ErrRateUnavailable)
	ErrServer  = fmt.Errorf("%w: server error", ErrRateUnavailable)
	ErrUnknown = fmt.Errorf("%w: unknown error", ErrRateUnavailable)
)

type (
	latestResponse struct {
		ConversionRates map[string]float64 `json:"conversion_rates"`
	}

	historyResponse struct {
		Rates map[string]map[string]float64 `json:"rates"`
	}
)

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode != http.StatusOK {
		switch res.StatusCode {
		case http.StatusBadRequest:
			return ErrClient
		case http.StatusInternalServerError:
			return ErrServer
		default:
			return ErrUnknown
		}
	}

	return nil
}
