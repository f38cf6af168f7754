package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine: recovery, permissive CORS, public
// routes and the auth-gated staking group.
func NewRouter(h *Handlers, secretKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/", h.Root)

		api.POST("/status", h.CreateStatusCheck)
		api.GET("/status", h.ListStatusChecks)

		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)

		api.POST("/chat", h.Chat)
		api.POST("/search", h.Search)
		api.GET("/agents/capabilities", h.AgentCapabilities)

		staking := api.Group("/staking")
		staking.Use(RequireAuth(secretKey, h.logger))
		{
			staking.GET("/overview", h.StakingOverview)
			staking.GET("/assets", h.StakingAssets)
			staking.GET("/rewards-history", h.StakingRewardsHistory)
			staking.GET("/performance", h.StakingPerformance)
		}
	}

	return r
}
