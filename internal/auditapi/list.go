package auditapi

import (
	"context"
	"net/url"
	"strconv"

	"audit-activity-service/internal/audits/core/domain"
	"audit-activity-service/internal/audits/core/ports"
)

var _ ports.AuditSourcePort = (*Client)(nil)

type auditDTO struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Actor       string `json:"actor"`
	ActorEmail  string `json:"actorEmail"`
	Action      string `json:"action"`
	EventType   string `json:"eventType"`
	ObjectType  string `json:"objectType"`
	ObjectID    string `json:"objectId"`
	Description string `json:"description"`
}

// ListAudits fetches one page of the audit log.
func (c *Client) ListAudits(ctx context.Context, creds ports.Credentials, f ports.ListFilter) ([]domain.Audit, error) {
	q := url.Values{}
	q.Set("tenant", f.Tenant)
	q.Set("table", f.Table)
	setIfNotEmpty(q, "primaryObjectId", f.PrimaryObjectID)
	setIfNotEmpty(q, "primaryObjectType", f.PrimaryObjectType)
	setIfNotEmpty(q, "actor", f.Actor)
	setIfNotEmpty(q, "eventType", f.EventType)
	setIfNotEmpty(q, "action", f.Action)
	setIfNotEmpty(q, "timestampFrom", f.TimestampFrom)
	setIfNotEmpty(q, "timestampTo", f.TimestampTo)
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))

	body, err := c.get(ctx, c.listPath, q, credentials{
		username:   creds.Username,
		password:   creds.Password,
		domainName: creds.DomainName,
	})
	if err != nil {
		return nil, err
	}

	dtos, err := decodeArray[auditDTO](body)
	if err != nil {
		return nil, err
	}

	audits := make([]domain.Audit, len(dtos))
	for i, d := range dtos {
		audits[i] = domain.Audit{
			ID:          d.ID,
			Timestamp:   d.Timestamp,
			Actor:       d.Actor,
			ActorEmail:  d.ActorEmail,
			Action:      d.Action,
			EventType:   d.EventType,
			ObjectType:  d.ObjectType,
			ObjectID:    d.ObjectID,
			Description: d.Description,
		}
	}
	return audits, nil
}
