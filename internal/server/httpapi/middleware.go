package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stakeboard/stakeboard/internal/logging"
	"github.com/stakeboard/stakeboard/internal/server/auth"
)

// bearerPrefix is matched exactly: scheme name, single space.
const bearerPrefix = "Bearer "

const claimsContextKey = "authClaims"

// RequireAuth rejects requests without a valid bearer token. The two
// failure modes keep distinct log lines but the client only ever sees one
// of two fixed detail strings, never the underlying verification error.
func RequireAuth(secretKey []byte, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Missing or invalid authorization header",
			})
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, bearerPrefix), secretKey)
		if err != nil {
			logger.Warn(c.Request.Context(), "rejected bearer token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid or expired token",
			})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified token claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
