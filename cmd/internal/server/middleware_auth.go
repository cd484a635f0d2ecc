package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/auth"
)

const (
	contextTeamID   = "team_id"
	contextTeamName = "team_name"
)

// AuthMiddleware проверяет Bearer access токен команды из заголовка Authorization.
// При успешной валидации помещает team_id и team_name в gin.Context
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "access token not found",
			})
			return
		}

		claims, err := authService.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired access token",
			})
			return
		}

		c.Set(contextTeamID, claims.TeamID)
		c.Set(contextTeamName, claims.TeamName)

		c.Next()
	}
}

// teamIDFromContext достаёт команду, положенную AuthMiddleware.
// Если её нет, отвечает 401 и возвращает false.
func teamIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(contextTeamID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team authentication required"})
		return 0, false
	}
	teamID, ok := value.(int64)
	if !ok || teamID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "team authentication required"})
		return 0, false
	}
	return teamID, true
}
