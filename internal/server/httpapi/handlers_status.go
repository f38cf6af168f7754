package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stakeboard/stakeboard/internal/server/models"
)

type statusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

func (h *Handlers) CreateStatusCheck(c *gin.Context) {
	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	check, err := h.status.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		h.logger.Error(c.Request.Context(), "status check create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *Handlers) ListStatusChecks(c *gin.Context) {
	checks, err := h.status.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "status check list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternalError})
		return
	}

	if checks == nil {
		checks = []*models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
