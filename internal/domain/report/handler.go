package report

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dermacare/dermacare/internal/domain/identity"
	"github.com/dermacare/dermacare/internal/domain/scan"
	"github.com/dermacare/dermacare/internal/platform/auth"
)

const historyReportLimit = 100

type scanReader interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*scan.ScanRecord, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*scan.ScanRecord, int, error)
}

type profileReader interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*identity.UserAccount, error)
}

// Handler serves printable HTML reports for the signed-in user's scans.
type Handler struct {
	renderer *Renderer
	scans    scanReader
	users    profileReader
}

func NewHandler(renderer *Renderer, scans scanReader, users profileReader) *Handler {
	return &Handler{renderer: renderer, scans: scans, users: users}
}

func (h *Handler) RegisterRoutes(private *echo.Group) {
	private.GET("/reports/scans/:id", h.ScanReport)
	private.GET("/reports/history", h.HistoryReport)
}

func (h *Handler) ScanReport(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scan id")
	}

	record, err := h.scans.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, scan.ErrScanNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "scan not found")
		}
		return err
	}
	profile, err := h.users.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}

	doc, err := h.renderer.RenderScan(record, profile)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, doc)
}

func (h *Handler) HistoryReport(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}

	records, _, err := h.scans.History(ctx, userID, historyReportLimit, 0)
	if err != nil {
		return err
	}
	profile, err := h.users.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}

	doc, err := h.renderer.RenderHistory(records, profile)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, doc)
}
