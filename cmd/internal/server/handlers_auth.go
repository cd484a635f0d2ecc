package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/auth"
)

// loginHandler обрабатывает POST /api/v1/auth/login
// Вход команды по имени и общему коду доступа, в ответе Bearer токен
func (s *Server) loginHandler(c *gin.Context) {
	var req api_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	result, err := s.authService.Login(c.Request.Context(), req.TeamName, req.Passcode)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid team name or passcode"})
			return
		}
		s.logger.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, api_models.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt.Unix(),
		Team: api_models.TeamResponse{
			ID:   result.Team.ID,
			Name: result.Team.Name,
		},
	})
}

// meHandler обрабатывает GET /api/v1/auth/me
func (s *Server) meHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, api_models.TeamResponse{
		ID:   teamID,
		Name: c.GetString(contextTeamName),
	})
}
