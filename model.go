package rorex

import "time"

// DateFormat is the calendar-day format used by the exchangerate-api
// history endpoint and by journal entries.
const DateFormat = "2006-01-02"

type (
	// Pair is an ordered base/target currency pair.
	Pair struct {
		Base   string
		Target string
	}

	// RateSample is one historical observation: a calendar day (UTC
	// midnight) and the conversion rate on that day.
	RateSample struct {
		Date time.Time
		Rate float64
	}

	// Entry is a single successful fetch recorded in a journal.
	Entry struct {
		Pair      Pair
		Provider  Provider
		Rate      float64
		FetchedAt time.Time
	}

	// EntryWithID is an Entry together with the identifier the journal
	// backend assigned to it.
	EntryWithID struct {
		Entry
		ID interface{}
	}
)

// String renders the pair as the 6-letter wire form, e.g. "USDEUR".
func (p Pair) String() string {
	return p.Base + p.Target
}
