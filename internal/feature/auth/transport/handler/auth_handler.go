// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amyzliao/finance/internal/feature/auth/transport/http/dto"
	"github.com/amyzliao/finance/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns a signed token.
	Register(ctx context.Context, username, password, confirmation string) (string, error)
	// Login authenticates an account and returns a signed token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
// - binds the request JSON, 400 on validation failure
// - 400 when password and confirmation differ
// - 409 on a duplicate username, with no account row created
// - 201 with a token on success (registration logs the user in)
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Confirmation)
	if err != nil {
		slog.Warn("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "that username is taken"})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "signup failed"})
		}
		return
	}

	slog.Info("account registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login handles POST /login.
// - binds the request JSON, 400 on validation failure
// - 401 with one generic message on any authentication failure
// - 200 with a token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Do not reveal whether the username exists
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	slog.Info("login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"token": token})
}
