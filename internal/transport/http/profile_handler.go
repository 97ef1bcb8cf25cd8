package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/service"
	"github.com/AdithyahNair/Prefer/internal/util"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func RegisterProfile(e *echo.Echo, auth *service.AuthService, profiles *service.ProfileService) {
	handler := &ProfileHandler{profiles: profiles}

	e.GET("/v1/preferences/options", handler.options)
	e.GET("/v1/me", handler.me, RequireAuth(auth))
	e.PUT("/v1/preferences", handler.updatePreferences, RequireAuth(auth))
}

func (h *ProfileHandler) options(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"options": h.profiles.Options(c.Request().Context()),
	})
}

func (h *ProfileHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	profile, err := h.profiles.Get(c.Request().Context(), user.UID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"profile": profile})
}

func (h *ProfileHandler) updatePreferences(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var prefs domain.Preferences
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	profile, err := h.profiles.UpdatePreferences(c.Request().Context(), user.UID, prefs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPreferenceValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrProfileNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
		}
	}
	return c.JSON(http.StatusOK, util.Envelope{"profile": profile})
}
