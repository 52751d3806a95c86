package domain

import "time"

// DayBucket is a half-open [Start, End) calendar day in the aggregation zone.
type DayBucket struct {
	Start time.Time
	End   time.Time
}

// ActivityPoint is the aggregated event count of one DayBucket.
type ActivityPoint struct {
	Date          time.Time
	DateLabel     string // "Jan 2"
	DateTimeLabel string // "Jan 2 00:00:00"
	Start         time.Time
	End           time.Time
	EventCount    int64
	// Truncated is set when the day's query hit the result cap, so the
	// count may be lower than the real number of events.
	Truncated bool
}

type ActivitySeries struct {
	Tenant      string
	Table       string
	Actor       string
	WindowDays  int
	GeneratedAt time.Time
	Points      []ActivityPoint
	Scale       ChartScale
	NoActivity  bool
}

// NewActivityPoint labels a bucket with its summed count.
func NewActivityPoint(b DayBucket, count int64, truncated bool) ActivityPoint {
	day := b.Start.Format("Jan 2")
	return ActivityPoint{
		Date:          b.Start,
		DateLabel:     day,
		DateTimeLabel: day + " " + b.Start.Format("15:04:05"),
		Start:         b.Start,
		End:           b.End,
		EventCount:    count,
		Truncated:     truncated,
	}
}

// NewActivitySeries derives scale and the no-activity flag from points.
func NewActivitySeries(tenant, table, actor string, generatedAt time.Time, points []ActivityPoint) *ActivitySeries {
	return &ActivitySeries{
		Tenant:      tenant,
		Table:       table,
		Actor:       actor,
		WindowDays:  len(points),
		GeneratedAt: generatedAt,
		Points:      points,
		Scale:       ComputeChartScale(points),
		NoActivity:  IsNoActivity(points),
	}
}

// IsNoActivity reports whether every point has a zero count.
func IsNoActivity(points []ActivityPoint) bool {
	for _, p := range points {
		if p.EventCount != 0 {
			return false
		}
	}
	return true
}
