package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"audit-activity-service/internal/activity/core/domain"
	"audit-activity-service/internal/activity/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidActivityQuery = errors.New("missing required parameters: tenant and table")
	ErrInvalidWindow        = errors.New("invalid window size")
	ErrAggregationFailed    = errors.New("activity aggregation failed")
	ErrEventCountOverflow   = errors.New("day event count overflows int64")
)

// Outcome labels passed to RunObserver.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

type AggregateActivityInput struct {
	Tenant      string
	Table       string
	Actor       *string
	WindowDays  int       // 0 = configured default
	Now         time.Time // zero = clock
	Credentials ports.Credentials
}

// Settings are the aggregation knobs resolved from config.
type Settings struct {
	DefaultWindowDays  int
	MaxWindowDays      int
	DayQueryLimit      int
	MaxParallelQueries int // 0 = one goroutine per day
	Location           *time.Location
}

// RunObserver receives timing for runs and individual day queries.
type RunObserver interface {
	ObserveRun(outcome string, windowDays int, d time.Duration)
	ObserveDayQuery(outcome string, d time.Duration, truncated bool)
}

type nopObserver struct{}

func (nopObserver) ObserveRun(string, int, time.Duration) {}
func (nopObserver) ObserveDayQuery(string, time.Duration, bool) {}

type Option func(*AggregateActivityUseCase)

func WithClock(now func() time.Time) Option {
	return func(uc *AggregateActivityUseCase) { uc.now = now }
}

func WithObserver(o RunObserver) Option {
	return func(uc *AggregateActivityUseCase) { uc.observer = o }
}

type AggregateActivityUseCase struct {
	source   ports.ReportSourcePort
	settings Settings
	logger   *zap.Logger
	now      func() time.Time
	observer RunObserver
}

func NewAggregateActivityUseCase(source ports.ReportSourcePort, settings Settings, logger *zap.Logger, opts ...Option) *AggregateActivityUseCase {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	uc := &AggregateActivityUseCase{
		source:   source,
		settings: settings,
		logger:   logger.Named("activity"),
		now:      time.Now,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type dayResult struct {
	count     int64
	truncated bool
}

// Execute builds the trailing day window ending today, queries every day
// concurrently and returns the series in bucket order. Any failing day fails
// the whole run and cancels the remaining queries.
func (uc *AggregateActivityUseCase) Execute(ctx context.Context, in AggregateActivityInput) (*domain.ActivitySeries, error) {
	if in.Tenant == "" || in.Table == "" {
		return nil, ErrInvalidActivityQuery
	}

	window := in.WindowDays
	if window == 0 {
		window = uc.settings.DefaultWindowDays
	}
	if window <= 0 || (uc.settings.MaxWindowDays > 0 && window > uc.settings.MaxWindowDays) {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidWindow, window, uc.settings.MaxWindowDays)
	}

	now := in.Now
	if now.IsZero() {
		now = uc.now()
	}

	runID := uuid.NewString()
	log := uc.logger.With(
		zap.String("run_id", runID),
		zap.String("tenant", in.Tenant),
		zap.String("table", in.Table),
		zap.Int("window_days", window),
	)
	started := time.Now()

	buckets := domain.BuildDayBuckets(now, window, uc.settings.Location)
	results := make([]dayResult, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	if uc.settings.MaxParallelQueries > 0 {
		g.SetLimit(uc.settings.MaxParallelQueries)
	}

	for i, b := range buckets {
		i, b := i, b
		g.Go(func() error {
			res, err := uc.queryDay(gctx, in, b)
			if err != nil {
				return fmt.Errorf("day %s: %w", b.Start.Format(time.DateOnly), err)
			}
			if res.truncated {
				log.Warn("day query hit the result cap, count may be low",
					zap.Time("day", b.Start),
					zap.Int("limit", uc.settings.DayQueryLimit),
				)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		outcome := OutcomeError
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			outcome = OutcomeCanceled
		}
		uc.observer.ObserveRun(outcome, window, time.Since(started))
		log.Warn("activity aggregation failed", zap.String("outcome", outcome), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrAggregationFailed, err)
	}

	points := make([]domain.ActivityPoint, len(buckets))
	for i, b := range buckets {
		points[i] = domain.NewActivityPoint(b, results[i].count, results[i].truncated)
	}

	uc.observer.ObserveRun(OutcomeSuccess, window, time.Since(started))
	log.Debug("activity aggregated", zap.Duration("took", time.Since(started)))

	return domain.NewActivitySeries(in.Tenant, in.Table, deref(in.Actor), now, points), nil
}

func (uc *AggregateActivityUseCase) queryDay(ctx context.Context, in AggregateActivityInput, b domain.DayBucket) (dayResult, error) {
	started := time.Now()

	items, err := uc.source.FetchReport(ctx, in.Credentials, ports.ReportFilter{
		Tenant: in.Tenant,
		Table:  in.Table,
		Actor:  in.Actor,
		From:   b.Start,
		To:     b.End,
		Limit:  uc.settings.DayQueryLimit,
	})
	if err != nil {
		uc.observer.ObserveDayQuery(OutcomeError, time.Since(started), false)
		return dayResult{}, err
	}

	var res dayResult
	for i, item := range items {
		if item.EventCount < 0 || item.EventCount > math.MaxInt64-res.count {
			uc.observer.ObserveDayQuery(OutcomeError, time.Since(started), false)
			return dayResult{}, fmt.Errorf("%w: item %d adds %d to %d", ErrEventCountOverflow, i, item.EventCount, res.count)
		}
		res.count += item.EventCount
	}
	res.truncated = uc.settings.DayQueryLimit > 0 && len(items) >= uc.settings.DayQueryLimit

	uc.observer.ObserveDayQuery(OutcomeSuccess, time.Since(started), res.truncated)
	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
