package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
)

// listCategoriesHandler получает список категорий команды (без вопросов)
func (s *Server) listCategoriesHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}

	categories, err := s.catalogService.ListCategories(c.Request.Context(), teamID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// createCategoryHandler создает категорию вместе с рубрикой и вопросами
func (s *Server) createCategoryHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}

	var req api_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	category, err := s.catalogService.CreateCategory(c.Request.Context(), teamID, req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) getCategoryHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := s.catalogService.GetCategory(c.Request.Context(), teamID, id)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// updateRubricHandler целиком заменяет рубрику категории
func (s *Server) updateRubricHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req api_models.UpdateRubricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	category, err := s.catalogService.UpdateRubric(c.Request.Context(), teamID, id, req.Rubric)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) createQuestionHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req api_models.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	question, err := s.catalogService.CreateQuestion(c.Request.Context(), teamID, id, req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (s *Server) updateQuestionHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req api_models.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	question, err := s.catalogService.UpdateQuestion(c.Request.Context(), teamID, id, req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// estimateHandler считает оценку в story points по выбранным вариантам ответов
func (s *Server) estimateHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req api_models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := s.catalogService.Estimate(c.Request.Context(), teamID, id, req.Answers)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
