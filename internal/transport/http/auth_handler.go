package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AdithyahNair/Prefer/internal/domain"
	"github.com/AdithyahNair/Prefer/internal/service"
	"github.com/AdithyahNair/Prefer/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/v1/auth")
	group.POST("/signup", handler.signUp)
	group.POST("/signin", handler.signIn)
	group.POST("/signin/:provider", handler.signInWithProvider)
	group.POST("/signout", handler.signOut, RequireAuth(auth))
}

func (h *AuthHandler) signUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	session, err := h.auth.SignUp(c.Request().Context(), service.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return h.writeAuthError(c, err)
	}
	return c.JSON(http.StatusCreated, sessionResponse(session))
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	session, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *AuthHandler) signInWithProvider(c echo.Context) error {
	session, err := h.auth.SignInWithProvider(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return h.writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *AuthHandler) signOut(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	if err := h.auth.SignOut(c.Request().Context(), user.UID); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to sign out"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

func (h *AuthHandler) writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrAuthValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusConflict, util.Error(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error("unexpected error"))
	}
}

func sessionResponse(session *service.Session) SessionResponse {
	return SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      sessionUser(session.User),
	}
}

func sessionUser(user domain.AuthUser) SessionUser {
	return SessionUser{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}
