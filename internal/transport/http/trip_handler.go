package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/service"
	"github.com/AdithyahNair/Prefer/internal/util"
)

// StartTripRequest selects one of the cached candidate plans.
type StartTripRequest struct {
	PlanIndex int `json:"planIndex"`
}

// ReverseGeocodeRequest carries device coordinates.
type ReverseGeocodeRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TripHandler struct {
	planner   *service.PlannerService
	trips     *service.TripService
	locations *service.LocationService
}

func RegisterTrips(
	e *echo.Echo,
	auth *service.AuthService,
	planner *service.PlannerService,
	trips *service.TripService,
	locations *service.LocationService,
) {
	handler := &TripHandler{planner: planner, trips: trips, locations: locations}

	group := e.Group("/v1/trips", RequireAuth(auth))
	group.POST("/plan", handler.plan)
	group.GET("/plans", handler.candidates)
	group.POST("/start", handler.start)
	group.GET("/active", handler.active)
	group.POST("/end", handler.end)
	group.GET("/stats", handler.stats)

	e.POST("/v1/location/reverse", handler.reverseGeocode, RequireAuth(auth))
}

func (h *TripHandler) plan(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req domain.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	plans, err := h.planner.GeneratePlans(c.Request().Context(), user.UID, req)
	if err != nil {
		if errors.Is(err, service.ErrTripValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"plans": plans})
}

func (h *TripHandler) candidates(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	plans, err := h.trips.Candidates(c.Request().Context(), user.UID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	if plans == nil {
		plans = []domain.TravelPlan{}
	}
	return c.JSON(http.StatusOK, util.Envelope{"plans": plans})
}

func (h *TripHandler) start(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req StartTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	trip, stats, err := h.trips.Start(c.Request().Context(), user.UID, req.PlanIndex)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		case errors.Is(err, service.ErrTripAlreadyActive):
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
		}
	}
	return c.JSON(http.StatusCreated, util.Envelope{"trip": trip, "stats": stats})
}

func (h *TripHandler) active(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	trip, err := h.trips.Active(c.Request().Context(), user.UID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveTrip) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"trip": trip})
}

func (h *TripHandler) end(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	summary, err := h.trips.End(c.Request().Context(), user.UID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveTrip) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"daysTraveled": summary.DaysTraveled,
		"stats":        summary.Stats,
	})
}

func (h *TripHandler) stats(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	stats, err := h.trips.Stats(c.Request().Context(), user.UID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"stats": stats})
}

func (h *TripHandler) reverseGeocode(c echo.Context) error {
	var req ReverseGeocodeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.locations.Resolve(c.Request().Context(), req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, service.ErrLocationValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}

	body := util.Envelope{"address": result.Address}
	if result.Partial != nil {
		body["detail"] = result.Partial.Error()
	}
	return c.JSON(http.StatusOK, body)
}
