package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AdithyahNair/Prefer/internal/service"
	"github.com/AdithyahNair/Prefer/internal/util"
)

// MapsKeyRequest carries a runtime-supplied Google Maps API key. An empty
// key clears the stored one.
type MapsKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type SettingsHandler struct {
	settings *service.SettingsService
}

func RegisterSettings(e *echo.Echo, auth *service.AuthService, settings *service.SettingsService) {
	handler := &SettingsHandler{settings: settings}

	e.GET("/v1/settings/maps-key", handler.mapsKeyStatus, RequireAuth(auth))
	e.PUT("/v1/settings/maps-key", handler.saveMapsKey, RequireAuth(auth))
}

// mapsKeyStatus reports whether a maps key is available, from the store or
// the environment, without echoing the key itself.
func (h *SettingsHandler) mapsKeyStatus(c echo.Context) error {
	key := h.settings.MapsAPIKey(c.Request().Context())
	return c.JSON(http.StatusOK, util.Envelope{"configured": key != ""})
}

func (h *SettingsHandler) saveMapsKey(c echo.Context) error {
	var req MapsKeyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.settings.SaveMapsAPIKey(c.Request().Context(), req.APIKey); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to save key"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}
