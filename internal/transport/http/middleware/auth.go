package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/pkg/auth"
	"github.com/iamasit07/5-in-a-row/backend/pkg/httputil"
)

const (
	ContextMatchID = "match_id"
	ContextColor   = "color"
)

// MatchAuthMiddleware requires a match token for the match named in the
// :id path parameter.
func MatchAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateMatchToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if id := c.Param("id"); id != "" && id != claims.MatchID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token does not belong to this match"})
			return
		}

		c.Set(ContextMatchID, claims.MatchID)
		c.Set(ContextColor, claims.Color)
		c.Next()
	}
}

// ColorFromContext returns the color stored by MatchAuthMiddleware.
func ColorFromContext(c *gin.Context) (domain.Color, bool) {
	v, ok := c.Get(ContextColor)
	if !ok {
		return 0, false
	}
	color, ok := v.(domain.Color)
	return color, ok
}
