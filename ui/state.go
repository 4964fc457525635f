// Package ui renders the single-screen form and owns the application
// state. State is an explicit value threaded through the update step, never
// a package-level variable.
package ui

import (
	"errors"
	"fmt"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/fetchers"
	"github.com/arshkumarsingh/rorex/runner"
)

type (
	// State holds everything the form renders from: current inputs, the
	// last fetched rate, the accumulated trend values and the most recent
	// historical series.
	State struct {
		APIKey  string
		Base    string
		Target  string
		Rate    *float64
		Trend   []float64
		History []rorex.RateSample
		Status  string
	}
)

func NewState() State {
	return State{
		Base:   "USD",
		Target: "EUR",
	}
}

func (s State) Pair() rorex.Pair {
	return rorex.Pair{Base: s.Base, Target: s.Target}
}

// Apply folds one drained result into the state and returns the new state.
// A failed fetch never clears previously displayed data; it only sets the
// status line. Rate results overwrite the displayed rate; history results
// replace the historical series and extend the trend with the new values.
func Apply(s State, result runner.Result) State {
	if result.Err != nil {
		s.Status = statusFor(result)
		return s
	}

	s.Status = ""

	switch result.Kind {
	case runner.KindRate:
		rate := result.Rate
		s.Rate = &rate
	case runner.KindHistory:
		s.History = result.Samples

		trend := make([]float64, 0, len(s.Trend)+len(result.Samples))
		trend = append(trend, s.Trend...)

		for _, sample := range result.Samples {
			trend = append(trend, sample.Rate)
		}

		s.Trend = trend
	}

	return s
}

func statusFor(result runner.Result) string {
	if errors.Is(result.Err, fetchers.ErrPairNotFound) {
		return fmt.Sprintf("%s: pair not found", result.Pair)
	}

	return fmt.Sprintf("%s %s fetch failed: rate unavailable", result.Pair, result.Kind)
}
