package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"audit-activity-service/internal/auditapi"
	"audit-activity-service/internal/audits/core/domain"
	"audit-activity-service/internal/audits/core/ports"
	"audit-activity-service/internal/audits/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ListAuditsUseCase interface {
	Execute(ctx context.Context, in usecase.ListAuditsInput) (*domain.AuditPage, error)
}

type AuditHandler struct {
	uc     ListAuditsUseCase
	logger *zap.Logger
}

func NewAuditHandler(uc ListAuditsUseCase, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{uc: uc, logger: logger.Named("audits-http")}
}

// ListAudits godoc
// @Summary List audits
// @Description Returns one page of audit records from the backend audit API
// @Tags Audits
// @Produce json
// @Param tenant query string true "Tenant"
// @Param table query string true "Audit table"
// @Param primaryObjectId query string false "Object id"
// @Param primaryObjectType query string false "Object type"
// @Param actor query string false "Actor"
// @Param eventType query string false "Event type"
// @Param action query string false "Action"
// @Param timestampFrom query string false "RFC 3339 lower bound"
// @Param timestampTo query string false "RFC 3339 upper bound"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} AuditListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /audits [get]
func (h *AuditHandler) ListAudits(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid 'limit' parameter",
		})
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid 'offset' parameter",
		})
	}

	in := usecase.ListAuditsInput{
		Tenant:            c.Query("tenant", ""),
		Table:             c.Query("table", ""),
		PrimaryObjectID:   c.Query("primaryObjectId", c.Query("objectId", "")),
		PrimaryObjectType: c.Query("primaryObjectType", c.Query("objectType", "")),
		Actor:             c.Query("actor", ""),
		EventType:         c.Query("eventType", ""),
		Action:            c.Query("action", ""),
		TimestampFrom:     c.Query("timestampFrom", ""),
		TimestampTo:       c.Query("timestampTo", ""),
		Limit:             limit,
		Offset:            offset,
		Credentials: ports.Credentials{
			Username:   c.Get(auditapi.HeaderAuthUsername),
			Password:   c.Get(auditapi.HeaderAuthPassword),
			DomainName: c.Get(auditapi.HeaderAuthDomainName),
		},
	}

	page, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAuditQuery),
			errors.Is(err, usecase.ErrInvalidPagination),
			errors.Is(err, usecase.ErrInvalidTimeRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, auditapi.ErrMalformedResponse):
			h.logger.Warn("malformed audit list", zap.Error(err))
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "malformed_response",
				Message: err.Error(),
			})
		case errors.Is(err, auditapi.ErrUpstreamStatus),
			errors.Is(err, auditapi.ErrUpstreamTransport):
			h.logger.Warn("audit api unavailable", zap.Error(err))
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "upstream_unavailable",
				Message: err.Error(),
			})
		default:
			h.logger.Error("audit listing failed", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := AuditListResponse{
		Audits:  make([]AuditResponse, 0, len(page.Audits)),
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasNext: page.HasNext(),
	}
	for _, a := range page.Audits {
		resp.Audits = append(resp.Audits, AuditResponse{
			ID:          a.ID,
			Timestamp:   a.Timestamp,
			Actor:       a.Actor,
			ActorEmail:  a.ActorEmail,
			Action:      a.Action,
			EventType:   a.EventType,
			ObjectType:  a.ObjectType,
			ObjectID:    a.ObjectID,
			Description: a.Description,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	s := c.Query(key, "")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
