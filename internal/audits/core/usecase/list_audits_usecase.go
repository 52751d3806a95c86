package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"audit-activity-service/internal/audits/core/domain"
	"audit-activity-service/internal/audits/core/ports"
)

var (
	ErrInvalidAuditQuery = errors.New("missing required parameters: tenant and table")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidTimeRange  = errors.New("invalid time range")
)

type ListAuditsInput struct {
	Tenant            string
	Table             string
	PrimaryObjectID   string
	PrimaryObjectType string
	Actor             string
	EventType         string
	Action            string
	TimestampFrom     string
	TimestampTo       string
	Limit             int // 0 = default
	Offset            int
	Credentials       ports.Credentials
}

type ListAuditsUseCase struct {
	source       ports.AuditSourcePort
	defaultLimit int
	maxLimit     int
}

func NewListAuditsUseCase(source ports.AuditSourcePort, defaultLimit, maxLimit int) *ListAuditsUseCase {
	return &ListAuditsUseCase{
		source:       source,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Execute validates the query, applies paging defaults and fetches one page.
func (uc *ListAuditsUseCase) Execute(ctx context.Context, in ListAuditsInput) (*domain.AuditPage, error) {
	if in.Tenant == "" || in.Table == "" {
		return nil, ErrInvalidAuditQuery
	}

	limit := in.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}
	if limit < 0 || limit > uc.maxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, uc.maxLimit)
	}
	if in.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
	}

	if err := validateRange(in.TimestampFrom, in.TimestampTo); err != nil {
		return nil, err
	}

	audits, err := uc.source.ListAudits(ctx, in.Credentials, ports.ListFilter{
		Tenant:            in.Tenant,
		Table:             in.Table,
		PrimaryObjectID:   in.PrimaryObjectID,
		PrimaryObjectType: in.PrimaryObjectType,
		Actor:             in.Actor,
		EventType:         in.EventType,
		Action:            in.Action,
		TimestampFrom:     in.TimestampFrom,
		TimestampTo:       in.TimestampTo,
		Limit:             limit,
		Offset:            in.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &domain.AuditPage{
		Audits: audits,
		Limit:  limit,
		Offset: in.Offset,
	}, nil
}

// validateRange accepts RFC 3339 instants; from must not be after to.
func validateRange(from, to string) error {
	var fromT, toT time.Time
	var err error
	if from != "" {
		if fromT, err = time.Parse(time.RFC3339, from); err != nil {
			return fmt.Errorf("%w: timestampFrom: %w", ErrInvalidTimeRange, err)
		}
	}
	if to != "" {
		if toT, err = time.Parse(time.RFC3339, to); err != nil {
			return fmt.Errorf("%w: timestampTo: %w", ErrInvalidTimeRange, err)
		}
	}
	if from != "" && to != "" && fromT.After(toT) {
		return fmt.Errorf("%w: timestampFrom is after timestampTo", ErrInvalidTimeRange)
	}
	return nil
}
