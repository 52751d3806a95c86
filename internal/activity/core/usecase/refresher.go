package usecase

import (
	"context"
	"errors"
	"sync"

	"audit-activity-service/internal/activity/core/domain"
)

var ErrSuperseded = errors.New("request superseded by a newer one")

type Aggregator interface {
	Execute(ctx context.Context, in AggregateActivityInput) (*domain.ActivitySeries, error)
}

type refreshRun struct {
	gen    uint64
	cancel context.CancelFunc
}

// Refresher keeps at most one live aggregation per viewer key. Starting a run
// cancels the previous one for the same key, and a run that completes after
// being replaced returns ErrSuperseded instead of its result.
type Refresher struct {
	agg Aggregator

	mu   sync.Mutex
	gen  uint64
	runs map[string]refreshRun
}

func NewRefresher(agg Aggregator) *Refresher {
	return &Refresher{
		agg:  agg,
		runs: make(map[string]refreshRun),
	}
}

// Refresh runs the aggregation for viewer. An empty viewer key is not tracked.
func (r *Refresher) Refresh(ctx context.Context, viewer string, in AggregateActivityInput) (*domain.ActivitySeries, error) {
	if viewer == "" {
		return r.agg.Execute(ctx, in)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.Lock()
	r.gen++
	gen := r.gen
	if prev, ok := r.runs[viewer]; ok {
		prev.cancel()
	}
	r.runs[viewer] = refreshRun{gen: gen, cancel: cancel}
	r.mu.Unlock()

	series, err := r.agg.Execute(runCtx, in)

	r.mu.Lock()
	cur, ok := r.runs[viewer]
	latest := ok && cur.gen == gen
	if latest {
		delete(r.runs, viewer)
	}
	r.mu.Unlock()

	if !latest {
		return nil, ErrSuperseded
	}
	return series, err
}

// InFlight returns the number of viewers with a running aggregation.
func (r *Refresher) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}
