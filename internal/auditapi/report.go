package auditapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"audit-activity-service/internal/activity/core/ports"
)

var _ ports.ReportSourcePort = (*Client)(nil)

type reportItemDTO struct {
	PrimaryObjectID   string          `json:"primaryObjectId"`
	PrimaryObjectType string          `json:"primaryObjectType"`
	EventType         string          `json:"eventType"`
	EventCount        json.RawMessage `json:"eventCount"`
}

// FetchReport queries the activity report for [f.From, f.To).
func (c *Client) FetchReport(ctx context.Context, creds ports.Credentials, f ports.ReportFilter) ([]ports.ReportItem, error) {
	q := url.Values{}
	q.Set("tenant", f.Tenant)
	q.Set("table", f.Table)
	if f.Actor != nil {
		setIfNotEmpty(q, "actor", *f.Actor)
	}
	q.Set("timestampFrom", formatTimestamp(f.From))
	q.Set("timestampTo", formatTimestamp(f.To))
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	body, err := c.get(ctx, c.reportPath, q, credentials{
		username:   creds.Username,
		password:   creds.Password,
		domainName: creds.DomainName,
	})
	if err != nil {
		return nil, err
	}

	dtos, err := decodeArray[reportItemDTO](body)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ReportItem, len(dtos))
	for i, d := range dtos {
		n, err := parseEventCount(d.EventCount)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, i, err)
		}
		items[i] = ports.ReportItem{
			PrimaryObjectID:   d.PrimaryObjectID,
			PrimaryObjectType: d.PrimaryObjectType,
			EventType:         d.EventType,
			EventCount:        n,
		}
	}
	return items, nil
}

// parseEventCount accepts any JSON number that is a non-negative integer
// fitting in int64, including forms like 5.0 and 1e3.
func parseEventCount(raw json.RawMessage) (int64, error) {
	s := string(raw)
	if s == "" || s == "null" {
		return 0, fmt.Errorf("missing eventCount")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative eventCount %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("eventCount %s is not a number", s)
	}
	if f < 0 || f >= math.MaxInt64 || f != math.Trunc(f) {
		return 0, fmt.Errorf("eventCount %s is not a non-negative int64", s)
	}
	return int64(f), nil
}
