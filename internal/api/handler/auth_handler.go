package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-system/internal/api/metrics"
	"github.com/99minutos/auth-system/internal/core/domain"
	"github.com/99minutos/auth-system/internal/core/ports"
)

type AuthHandler struct {
	authUseCase   ports.AuthUseCase
	signUpService ports.SignUpService
}

func NewAuthHandler(authUseCase ports.AuthUseCase, signUpService ports.SignUpService) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase, signUpService: signUpService}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// signupRequest caps the password at bcrypt's input limit.
type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type signupResponse struct {
	User *domain.User `json:"user"`
}

type meResponse struct {
	UserID string `json:"user_id"`
}

// Login exchanges credentials for an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	start := time.Now()

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	accessToken, err := h.authUseCase.Auth(c.Request().Context(), req.Email, req.Password)
	switch {
	case err != nil:
		observeLogin(metrics.OutcomeError, start)
		return err
	case accessToken == "":
		observeLogin(metrics.OutcomeRejected, start)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	observeLogin(metrics.OutcomeSuccess, start)
	return c.JSON(http.StatusOK, loginResponse{AccessToken: accessToken})
}

// SignUp creates a new account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account credentials"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.signUpService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues(metrics.SignupExists).Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues(metrics.SignupError).Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(metrics.SignupCreated).Inc()
	return c.JSON(http.StatusCreated, signupResponse{User: user})
}

// Me returns the identity carried by the bearer token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{UserID: userID})
}

func observeLogin(outcome string, start time.Time) {
	metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	metrics.LoginDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
