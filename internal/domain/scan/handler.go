package scan

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dermacare/dermacare/internal/platform/auth"
	"github.com/dermacare/dermacare/internal/platform/blobstore"
	"github.com/dermacare/dermacare/pkg/pagination"
)

type Handler struct {
	svc    *Service
	intake *Intake
}

func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{
		svc:    svc,
		intake: NewIntake(maxUploadBytes, nil),
	}
}

func (h *Handler) RegisterRoutes(private *echo.Group) {
	private.POST("/scans", h.Analyze)
	private.GET("/scans", h.List)
	private.GET("/scans/:id", h.Get)
	private.DELETE("/scans/:id", h.Delete)
}

func (h *Handler) Analyze(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}

	// Same gate the upload widget applies: content sniffing, not extension.
	if err := h.intake.Accept(file.Filename, content); err != nil {
		if errors.Is(err, ErrFileTooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "only image uploads are accepted")
	}

	resp, err := h.svc.Analyze(ctx, userID, file.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, ErrPredictionFailed):
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		case errors.Is(err, blobstore.ErrObjectTooLarge):
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, blobstore.ErrInvalidContentType):
			return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(ctx, userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*ScanRecord{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrScanNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "scan not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrScanNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "scan not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
