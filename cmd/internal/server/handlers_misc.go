package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
)

func (s *Server) HomeHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to the Estimator API",
	})
}

// respondServiceError переводит типизированные ошибки сервисов в HTTP-статусы.
// Всё нетипизированное логируется и отдаётся клиенту как 500 без подробностей.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *apierrors.ValidationError
		notFoundErr   *apierrors.NotFoundError
		conflictErr   *apierrors.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse(err))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, errorResponse(err))
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, errorResponse(err))
	default:
		s.logger.Errorf("Ошибка обработки запроса %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam читает положительный int64 из параметра пути. При ошибке сам отвечает 400.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid %s", name)))
		return 0, false
	}
	return id, true
}
