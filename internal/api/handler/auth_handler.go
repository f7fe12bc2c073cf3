package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/metrics"
	"github.com/acquisitions/acquisitions-api/internal/api/session"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// AuthHandler handles sign-up, sign-in, and sign-out.
type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
	cookies     *session.Manager
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, cookies *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, cookies: cookies}
}

// Signup handles POST /api/auth/sign-up.
//
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Sign-up details"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/auth/sign-up [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	token, err := h.tokens.Sign(user)
	if err != nil {
		return err
	}
	h.cookies.Set(c, token)

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, userEnvelope{
		Message: "User signed up successfully",
		User:    user,
	})
}

// Signin handles POST /api/auth/sign-in.
//
// @Summary      Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/auth/sign-in [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.tokens.Sign(user)
	if err != nil {
		return err
	}
	h.cookies.Set(c, token)

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, userEnvelope{
		Message: "User signed in successfully",
		User:    user,
	})
}

// Signout handles POST /api/auth/sign-out. The token itself stays valid
// until its embedded expiry; only the client cookie is removed.
//
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/sign-out [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "User signed out successfully"})
}
