package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"audit-activity-service/internal/activity/core/domain"
	"audit-activity-service/internal/activity/core/ports"
	"audit-activity-service/internal/activity/core/usecase"
	"audit-activity-service/internal/auditapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderViewerID identifies a viewer whose older in-flight request should be
// superseded by a newer one.
const HeaderViewerID = "X-Viewer-ID"

type RefreshActivityUseCase interface {
	Refresh(ctx context.Context, viewer string, in usecase.AggregateActivityInput) (*domain.ActivitySeries, error)
}

type ActivityHandler struct {
	uc     RefreshActivityUseCase
	logger *zap.Logger
}

func NewActivityHandler(uc RefreshActivityUseCase, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, logger: logger.Named("activity-http")}
}

// GetActivity godoc
// @Summary Daily activity
// @Description Returns per-day event counts for the trailing window ending today, oldest first, with the chart y-axis
// @Tags Activity
// @Produce json
// @Param tenant query string true "Tenant"
// @Param table query string true "Audit table"
// @Param actor query string false "Actor filter"
// @Param days query int false "Window size in days (defaults to the configured window)"
// @Param viewer query string false "Viewer id; a newer request for the same viewer supersedes an older one"
// @Param authUsername header string false "Forwarded to the audit API"
// @Param authPassword header string false "Forwarded to the audit API"
// @Param authDomainName header string false "Forwarded to the audit API"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /activity [get]
func (h *ActivityHandler) GetActivity(c *fiber.Ctx) error {
	in := usecase.AggregateActivityInput{
		Tenant: c.Query("tenant", ""),
		Table:  c.Query("table", ""),
		Credentials: ports.Credentials{
			Username:   c.Get(auditapi.HeaderAuthUsername),
			Password:   c.Get(auditapi.HeaderAuthPassword),
			DomainName: c.Get(auditapi.HeaderAuthDomainName),
		},
	}

	if actor := c.Query("actor", ""); actor != "" {
		in.Actor = &actor
	}

	if daysStr := c.Query("days", ""); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'days' parameter",
			})
		}
		in.WindowDays = days
	}

	viewer := c.Query("viewer", "")
	if viewer == "" {
		viewer = c.Get(HeaderViewerID)
	}

	series, err := h.uc.Refresh(c.UserContext(), viewer, in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(series))
}

func (h *ActivityHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidActivityQuery),
		errors.Is(err, usecase.ErrInvalidWindow):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrSuperseded):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "superseded",
			Message: err.Error(),
		})
	case errors.Is(err, auditapi.ErrMalformedResponse),
		errors.Is(err, usecase.ErrEventCountOverflow):
		h.logger.Warn("malformed audit report", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "malformed_report",
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
		h.logger.Error("activity aggregation failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toResponse(s *domain.ActivitySeries) ActivityResponse {
	resp := ActivityResponse{
		Tenant:      s.Tenant,
		Table:       s.Table,
		Actor:       s.Actor,
		WindowDays:  s.WindowDays,
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
		Points:      make([]ActivityPointResponse, 0, len(s.Points)),
		Scale: ChartScaleResponse{
			MaxCount: s.Scale.MaxCount,
			YMax:     s.Scale.YMax,
			TickStep: s.Scale.TickStep,
			Ticks:    s.Scale.Ticks,
		},
		NoActivity: s.NoActivity,
	}

	for _, p := range s.Points {
		resp.Points = append(resp.Points, ActivityPointResponse{
			Date:          p.Date.Format(time.RFC3339),
			DateLabel:     p.DateLabel,
			DateTimeLabel: p.DateTimeLabel,
			Start:         p.Start.Format(time.RFC3339),
			End:           p.End.Format(time.RFC3339),
			EventCount:    p.EventCount,
			Truncated:     p.Truncated,
		})
	}

	if s.NoActivity {
		resp.Message = noActivityMessage(s.WindowDays)
	}
	return resp
}

func noActivityMessage(days int) string {
	if days == 1 {
		return "No activity found today"
	}
	return fmt.Sprintf("No activity found in the last %d days", days)
}
