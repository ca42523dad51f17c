package handler

import (
	"net/http"

	"github.com/baladi39/hippo-portal/pkg/jwtutil"
	"github.com/baladi39/hippo-portal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login issues a signed token for any credentials. User accounts are not
// modeled yet, so this only establishes a session identity for the portal;
// no route enforces the token.
func Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := jwtutil.GenerateToken(req.Email, 1, "broker")
	if err != nil {
		log.Error("Failed to generate token", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate token"})
	}

	log.Info("Login successful", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"email": req.Email,
	})
}
