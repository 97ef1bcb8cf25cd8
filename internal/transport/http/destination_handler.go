package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/util"
)

type DestinationHandler struct{}

func RegisterDestinations(e *echo.Echo) {
	handler := &DestinationHandler{}

	e.GET("/v1/destinations/recommended", handler.recommended)
}

func (h *DestinationHandler) recommended(c echo.Context) error {
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": domain.RecommendedDestinations(),
	})
}
