// Package runner executes fetches off the UI loop. Every admitted request
// runs in its own goroutine and delivers exactly one typed Result on a
// shared channel; the consumer drains it with non-blocking polls, one
// result per poll.
package runner

import (
	"context"
	"sync"

	"github.com/arshkumarsingh/rorex"
)

// resultBuffer keeps senders from blocking for any click rate a human can
// produce; backlog equals completed-but-undrained tasks.
const resultBuffer = 64

type Kind int

const (
	KindRate Kind = iota
	KindHistory
)

func (k Kind) String() string {
	switch k {
	case KindRate:
		return "rate"
	case KindHistory:
		return "history"
	default:
		return "unknown"
	}
}

type (
	// Result is the single message a background task produces. Err carries
	// the structured fetch error so the consumer can tell failure classes
	// apart instead of seeing a bare absence.
	Result struct {
		Kind    Kind
		Pair    rorex.Pair
		Rate    float64
		Samples []rorex.RateSample
		Err     error
	}

	requestKey struct {
		pair rorex.Pair
		kind Kind
	}

	Runner struct {
		fetcher  rorex.Fetcher
		results  chan Result
		mu       sync.Mutex
		inFlight map[requestKey]struct{}
	}
)

func New(fetcher rorex.Fetcher) *Runner {
	return &Runner{
		fetcher:  fetcher,
		results:  make(chan Result, resultBuffer),
		inFlight: make(map[requestKey]struct{}),
	}
}

// FetchRate spawns a point-rate task. Returns false without spawning when
// the same pair+kind is already in flight.
func (r *Runner) FetchRate(ctx context.Context, apiKey string, pair rorex.Pair) bool {
	return r.spawn(ctx, KindRate, apiKey, pair)
}

// FetchHistory spawns a 30-day history task, deduplicated the same way.
func (r *Runner) FetchHistory(ctx context.Context, apiKey string, pair rorex.Pair) bool {
	return r.spawn(ctx, KindHistory, apiKey, pair)
}

func (r *Runner) spawn(ctx context.Context, kind Kind, apiKey string, pair rorex.Pair) bool {
	key := requestKey{pair: pair, kind: kind}

	r.mu.Lock()

	if _, busy := r.inFlight[key]; busy {
		r.mu.Unlock()
		return false
	}

	r.inFlight[key] = struct{}{}
	r.mu.Unlock()

	go func() {
		result := Result{Kind: kind, Pair: pair}

		switch kind {
		case KindRate:
			result.Rate, result.Err = r.fetcher.FetchRate(ctx, apiKey, pair)
		case KindHistory:
			result.Samples, result.Err = r.fetcher.FetchHistory(ctx, apiKey, pair)
		}

		r.mu.Lock()
		delete(r.inFlight, key)
		r.mu.Unlock()

		r.results <- result
	}()

	return true
}

// Poll receives at most one queued result without blocking.
func (r *Runner) Poll() (Result, bool) {
	select {
	case result := <-r.results:
		return result, true
	default:
		return Result{}, false
	}
}

// InFlight reports the number of tasks spawned and not yet finished.
func (r *Runner) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.inFlight)
}
