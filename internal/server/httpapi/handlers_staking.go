package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) StakingOverview(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.staking.Overview(claims.UserID),
	})
}

func (h *Handlers) StakingAssets(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.staking.Assets(claims.UserID),
	})
}

func (h *Handlers) StakingRewardsHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.staking.RewardsHistory(daysParam(c)),
	})
}

func (h *Handlers) StakingPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.staking.Performance(daysParam(c)),
	})
}

// daysParam reads the ?days= query, falling back to 30 on absent or
// unparsable values. Range clamping happens in the service.
func daysParam(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		return 30
	}
	return days
}
