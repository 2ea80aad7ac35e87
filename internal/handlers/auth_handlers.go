package handlers

import (
	"errors"
	"net/http"

	"shoplite/internal/common"
	"shoplite/internal/services"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// AuthHandlers handles HTTP requests for registration and login
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. Duplicate usernames or emails come back
// as a 400 with the same message regardless of which column collided.
func (h *AuthHandlers) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return errorJSON(c, http.StatusBadRequest, "Username, email and password are required")
		}
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return errorJSON(c, http.StatusBadRequest, "Username or email already exists")
		}
		log.Errorf("registration failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

// Login verifies credentials and returns the account summary. An unknown
// email and a wrong password produce distinct messages but the same status.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	summary, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errorJSON(c, http.StatusBadRequest, "User not found")
		}
		if errors.Is(err, common.ErrInvalidCredentials) {
			return errorJSON(c, http.StatusBadRequest, "Invalid credentials")
		}
		log.Errorf("login failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    summary,
	})
}
