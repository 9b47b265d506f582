package directory

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler serves the directory endpoints. Lookup endpoints always answer
// 200 with a JSON array; upstream trouble shows up as an empty list, not a
// server error.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/verified-doctors", h.VerifiedDoctors)
	g.GET("/nearby-dermatologists", h.NearbyDermatologists)
	g.GET("/locations/states", h.States)
	g.GET("/locations/cities", h.Cities)
}

func (h *Handler) VerifiedDoctors(c echo.Context) error {
	q := DoctorsQuery{
		City:  c.QueryParam("city"),
		State: c.QueryParam("state"),
	}
	if lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64); err == nil {
		if lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64); err == nil {
			q.Lat, q.Lng = &lat, &lng
		}
	}
	return c.JSON(http.StatusOK, h.svc.VerifiedDoctors(c.Request().Context(), q))
}

func (h *Handler) NearbyDermatologists(c echo.Context) error {
	radiusKM := float64(DefaultNearbyRadiusKM)
	if r, err := strconv.ParseFloat(c.QueryParam("radius_km"), 64); err == nil && r > 0 {
		radiusKM = r
	}
	results := h.svc.NearbyDermatologists(c.Request().Context(), c.QueryParam("city"), c.QueryParam("state"), radiusKM)
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) States(c echo.Context) error {
	return c.JSON(http.StatusOK, States())
}

func (h *Handler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, Cities(c.QueryParam("state")))
}
