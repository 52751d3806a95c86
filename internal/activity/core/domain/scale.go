package domain

import "math"

const (
	TickCount   = 5
	MinYAxisMax = 10.0
	YAxisMargin = 1.1
)

// ChartScale is the y-axis of the activity bar chart.
type ChartScale struct {
	MaxCount int64
	YMax     float64
	TickStep int64
	Ticks    []int64
}

// ComputeChartScale is a pure function of the series counts:
// maxCount has a floor of 1, yMax is maxCount plus 10% with a floor of 10,
// and the ticks are TickCount evenly spaced values starting at 0.
func ComputeChartScale(points []ActivityPoint) ChartScale {
	var maxCount int64 = 1
	for _, p := range points {
		if p.EventCount > maxCount {
			maxCount = p.EventCount
		}
	}

	yMax := math.Max(float64(maxCount)*YAxisMargin, MinYAxisMax)

	// integer ceil(maxCount / (TickCount-1)); maxCount >= 1
	step := (maxCount-1)/(TickCount-1) + 1

	ticks := make([]int64, TickCount)
	for i := range ticks {
		// saturate instead of wrapping for counts near MaxInt64
		if int64(i) > math.MaxInt64/step {
			ticks[i] = math.MaxInt64
			continue
		}
		ticks[i] = int64(i) * step
	}

	return ChartScale{
		MaxCount: maxCount,
		YMax:     yMax,
		TickStep: step,
		Ticks:    ticks,
	}
}
