package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stakeboard/stakeboard/internal/common"
)

// Client-visible error strings. Fixed values: raw internal errors never
// reach the response body.
const (
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgInternalError      = "Internal server error"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// authResponse is shared by signup and login. Business failures ride
// in-band with HTTP 200; only transport-level problems change the status.
type authResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handlers) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	res, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyRegistered) {
			c.JSON(http.StatusOK, authResponse{Success: false, Error: msgEmailTaken})
			return
		}
		h.logger.Error(c.Request.Context(), "signup failed", "error", err)
		c.JSON(http.StatusOK, authResponse{Success: false, Error: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, authResponse{Success: true, Token: res.Token, Username: res.Username})
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusOK, authResponse{Success: false, Error: msgInvalidCredentials})
			return
		}
		h.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusOK, authResponse{Success: false, Error: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, authResponse{Success: true, Token: res.Token, Username: res.Username})
}
