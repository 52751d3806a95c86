package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ActivityMetrics records aggregation runs and the per-day audit API queries
// they fan out to. It satisfies the activity usecase RunObserver.
type ActivityMetrics struct {
	RunDuration      *prometheus.HistogramVec
	RunsTotal        *prometheus.CounterVec
	DayQueryDuration *prometheus.HistogramVec
	TruncatedDays    prometheus.Counter
}

// NewActivityMetrics registers the collectors on reg. A nil reg gets a private
// registry that nothing scrapes.
func NewActivityMetrics(reg prometheus.Registerer) *ActivityMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &ActivityMetrics{
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "activity_aggregation_duration_seconds",
			Help:    "Duration of daily activity aggregation runs.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),

		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_aggregation_runs_total",
			Help: "Aggregation runs by outcome and window size.",
		}, []string{"outcome", "window_days"}),

		DayQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "activity_day_query_duration_seconds",
			Help:    "Latency of single-day audit report queries.",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),

		TruncatedDays: f.NewCounter(prometheus.CounterOpts{
			Name: "activity_day_query_truncated_total",
			Help: "Day queries that reached the result cap and may undercount.",
		}),
	}
}

func (m *ActivityMetrics) ObserveRun(outcome string, windowDays int, d time.Duration) {
	m.RunDuration.WithLabelValues(outcome).Observe(d.Seconds())
	m.RunsTotal.WithLabelValues(outcome, strconv.Itoa(windowDays)).Inc()
}

func (m *ActivityMetrics) ObserveDayQuery(outcome string, d time.Duration, truncated bool) {
	m.DayQueryDuration.WithLabelValues(outcome).Observe(d.Seconds())
	if truncated {
		m.TruncatedDays.Inc()
	}
}

// Handler exposes the gatherer in the prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
