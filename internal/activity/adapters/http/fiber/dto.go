package fiber

type ActivityPointResponse struct {
	Date          string `json:"date" example:"2024-01-02T00:00:00Z"`
	DateLabel     string `json:"dateLabel" example:"Jan 2"`
	DateTimeLabel string `json:"dateTimeLabel" example:"Jan 2 00:00:00"`
	Start         string `json:"start"`
	End           string `json:"end"`
	EventCount    int64  `json:"eventCount" example:"12"`
	Truncated     bool   `json:"truncated,omitempty"`
}

type ChartScaleResponse struct {
	MaxCount int64   `json:"maxCount" example:"12"`
	YMax     float64 `json:"yMax" example:"13.2"`
	TickStep int64   `json:"tickStep" example:"3"`
	Ticks    []int64 `json:"ticks"`
}

// ActivityResponse is the daily activity series plus its y-axis.
// @Description Daily activity series
type ActivityResponse struct {
	Tenant      string                  `json:"tenant"`
	Table       string                  `json:"table"`
	Actor       string                  `json:"actor,omitempty"`
	WindowDays  int                     `json:"windowDays"`
	GeneratedAt string                  `json:"generatedAt"`
	Points      []ActivityPointResponse `json:"points"`
	Scale       ChartScaleResponse      `json:"scale"`
	NoActivity  bool                    `json:"noActivity"`
	Message     string                  `json:"message,omitempty" example:"No activity found in the last 7 days"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"missing required parameters: tenant and table"`
}
