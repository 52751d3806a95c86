package ports

import (
	"context"
	"time"
)

// Credentials are forwarded verbatim to the audit API.
type Credentials struct {
	Username   string
	Password   string
	DomainName string
}

type ReportFilter struct {
	Tenant string
	Table  string
	Actor  *string // optional
	From   time.Time
	To     time.Time // exclusive
	Limit  int
}

// ReportItem is one row of the audit report. EventCount may already be a
// pre-aggregated count covering several events.
type ReportItem struct {
	PrimaryObjectID   string
	PrimaryObjectType string
	EventType         string
	EventCount        int64
}

type ReportSourcePort interface {
	FetchReport(ctx context.Context, creds Credentials, f ReportFilter) ([]ReportItem, error)
}
