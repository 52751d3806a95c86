package ports

import (
	"context"

	"audit-activity-service/internal/audits/core/domain"
)

// Credentials are forwarded verbatim to the audit API.
type Credentials struct {
	Username   string
	Password   string
	DomainName string
}

// ListFilter mirrors the audit list query. Empty optional fields are omitted.
type ListFilter struct {
	Tenant            string
	Table             string
	PrimaryObjectID   string
	PrimaryObjectType string
	Actor             string
	EventType         string
	Action            string
	TimestampFrom     string
	TimestampTo       string
	Limit             int
	Offset            int
}

type AuditSourcePort interface {
	ListAudits(ctx context.Context, creds Credentials, f ListFilter) ([]domain.Audit, error)
}
