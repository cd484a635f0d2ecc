package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// searchTeamsHandler обрабатывает GET /api/v1/teams/search?q=&limit=
// Публичный: используется экраном входа до получения токена.
func (s *Server) searchTeamsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid limit")))
			return
		}
		limit = parsed
	}

	found, err := s.searchService.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}
