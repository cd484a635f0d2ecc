package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/estimation"
	"github.com/zhukovvlad/estimator-go/cmd/internal/util"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

// CatalogService управляет категориями команды: рубриками и вопросами.
// Все методы работают в пределах одной команды; чужие записи выглядят как несуществующие.
type CatalogService struct {
	store  db.Store
	logger *logging.Logger
}

// NewCatalogService создает новый экземпляр CatalogService
func NewCatalogService(store db.Store, logger *logging.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// CreateCategory реализует POST /api/v1/categories.
// Категория и все её вопросы создаются в одной транзакции.
func (s *CatalogService) CreateCategory(
	ctx context.Context,
	teamID int64,
	req api_models.CreateCategoryRequest,
) (api_models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return api_models.CategoryResponse{}, apierrors.NewValidationError("Category name is required")
	}
	if err := estimation.ValidateRubric(req.Rubric); err != nil {
		return api_models.CategoryResponse{}, err
	}
	for i, q := range req.Questions {
		if err := validateQuestion(q, estimation.RequiredOptions, 0); err != nil {
			return api_models.CategoryResponse{}, apierrors.NewValidationError("Question %d: %v", i+1, err)
		}
	}

	rubric, err := util.NullableJSON(req.Rubric)
	if err != nil {
		return api_models.CategoryResponse{}, fmt.Errorf("не удалось сериализовать рубрику: %w", err)
	}

	var (
		category  db.Category
		questions []db.Question
	)
	txErr := s.store.ExecTx(ctx, func(qtx db.TxQuerier) error {
		created, err := qtx.CreateCategory(ctx, db.CreateCategoryParams{
			TeamID: teamID,
			Name:   name,
			Rubric: rubric,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return apierrors.NewConflictError("Category %q already exists", name)
			}
			return fmt.Errorf("не удалось создать категорию: %w", err)
		}
		category = created

		for _, q := range req.Questions {
			question, err := createQuestion(ctx, qtx, created.ID, q)
			if err != nil {
				return err
			}
			questions = append(questions, question)
		}
		return nil
	})
	if txErr != nil {
		s.logger.Warnf("Не удалось создать категорию %q для команды %d: %v", name, teamID, txErr)
		return api_models.CategoryResponse{}, txErr
	}

	s.logger.Infof("Создана категория %q (ID: %d) с %d вопросами для команды %d", name, category.ID, len(questions), teamID)
	return toCategoryResponse(category, questions)
}

// ListCategories реализует GET /api/v1/categories (без вопросов).
func (s *CatalogService) ListCategories(ctx context.Context, teamID int64) ([]api_models.CategoryResponse, error) {
	categories, err := s.store.ListCategoriesByTeam(ctx, teamID)
	if err != nil {
		s.logger.Errorf("Ошибка ListCategoriesByTeam: %v", err)
		return nil, fmt.Errorf("ошибка БД: %w", err)
	}

	response := make([]api_models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		item, err := toCategoryResponse(c, nil)
		if err != nil {
			return nil, err
		}
		response = append(response, item)
	}
	return response, nil
}

// GetCategory реализует GET /api/v1/categories/:id (вместе с вопросами).
func (s *CatalogService) GetCategory(ctx context.Context, teamID, categoryID int64) (api_models.CategoryResponse, error) {
	category, err := s.teamCategory(ctx, s.store, teamID, categoryID)
	if err != nil {
		return api_models.CategoryResponse{}, err
	}
	questions, err := s.store.ListQuestionsByCategory(ctx, category.ID)
	if err != nil {
		return api_models.CategoryResponse{}, fmt.Errorf("ошибка БД: %w", err)
	}
	return toCategoryResponse(category, questions)
}

// UpdateRubric реализует PUT /api/v1/categories/:id/rubric. Рубрика заменяется целиком.
func (s *CatalogService) UpdateRubric(
	ctx context.Context,
	teamID, categoryID int64,
	rubric []api_models.RubricRange,
) (api_models.CategoryResponse, error) {
	if err := estimation.ValidateRubric(rubric); err != nil {
		return api_models.CategoryResponse{}, err
	}
	category, err := s.teamCategory(ctx, s.store, teamID, categoryID)
	if err != nil {
		return api_models.CategoryResponse{}, err
	}

	raw, err := util.NullableJSON(rubric)
	if err != nil {
		return api_models.CategoryResponse{}, fmt.Errorf("не удалось сериализовать рубрику: %w", err)
	}
	updated, err := s.store.UpdateCategoryRubric(ctx, db.UpdateCategoryRubricParams{ID: category.ID, Rubric: raw})
	if err != nil {
		return api_models.CategoryResponse{}, fmt.Errorf("не удалось обновить рубрику: %w", err)
	}
	return toCategoryResponse(updated, nil)
}

// CreateQuestion реализует POST /api/v1/categories/:id/questions. Требует ровно три варианта.
func (s *CatalogService) CreateQuestion(
	ctx context.Context,
	teamID, categoryID int64,
	req api_models.QuestionRequest,
) (api_models.QuestionResponse, error) {
	if err := validateQuestion(req, estimation.RequiredOptions, 0); err != nil {
		return api_models.QuestionResponse{}, err
	}
	category, err := s.teamCategory(ctx, s.store, teamID, categoryID)
	if err != nil {
		return api_models.QuestionResponse{}, err
	}

	question, err := createQuestion(ctx, s.store, category.ID, req)
	if err != nil {
		return api_models.QuestionResponse{}, err
	}
	return toQuestionResponse(question)
}

// UpdateQuestion реализует PUT /api/v1/questions/:id.
// В отличие от создания, здесь достаточно двух вариантов ответа.
func (s *CatalogService) UpdateQuestion(
	ctx context.Context,
	teamID, questionID int64,
	req api_models.QuestionRequest,
) (api_models.QuestionResponse, error) {
	if err := validateQuestion(req, 0, estimation.MinUpdateOptions); err != nil {
		return api_models.QuestionResponse{}, err
	}

	existing, err := s.store.GetQuestionByID(ctx, questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return api_models.QuestionResponse{}, apierrors.NewNotFoundError("Question %d not found", questionID)
	}
	if err != nil {
		return api_models.QuestionResponse{}, fmt.Errorf("ошибка БД: %w", err)
	}
	if _, err := s.teamCategory(ctx, s.store, teamID, existing.CategoryID); err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return api_models.QuestionResponse{}, apierrors.NewNotFoundError("Question %d not found", questionID)
		}
		return api_models.QuestionResponse{}, err
	}

	options, err := json.Marshal(req.Options)
	if err != nil {
		return api_models.QuestionResponse{}, fmt.Errorf("не удалось сериализовать варианты: %w", err)
	}
	updated, err := s.store.UpdateQuestion(ctx, db.UpdateQuestionParams{
		ID:      existing.ID,
		Text:    strings.TrimSpace(req.Text),
		Options: options,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return api_models.QuestionResponse{}, apierrors.NewConflictError("Question %q already exists in this category", req.Text)
		}
		return api_models.QuestionResponse{}, fmt.Errorf("не удалось обновить вопрос: %w", err)
	}
	return toQuestionResponse(updated)
}

// Estimate реализует POST /api/v1/categories/:id/estimate:
// суммирует баллы выбранных вариантов и ищет диапазон рубрики.
func (s *CatalogService) Estimate(
	ctx context.Context,
	teamID, categoryID int64,
	answers []api_models.AnswerSelection,
) (api_models.EstimateResponse, error) {
	details, err := s.GetCategory(ctx, teamID, categoryID)
	if err != nil {
		return api_models.EstimateResponse{}, err
	}

	byID := make(map[int64]api_models.QuestionResponse, len(details.Questions))
	for _, q := range details.Questions {
		byID[q.ID] = q
	}

	answered := make(map[int64]struct{}, len(answers))
	var score float64
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return api_models.EstimateResponse{}, apierrors.NewValidationError("Question %d does not belong to category %d", a.QuestionID, categoryID)
		}
		if _, dup := answered[a.QuestionID]; dup {
			return api_models.EstimateResponse{}, apierrors.NewValidationError("Question %d is answered more than once", a.QuestionID)
		}
		if a.OptionIndex < 0 || a.OptionIndex >= len(q.Options) {
			return api_models.EstimateResponse{}, apierrors.NewValidationError("Question %d has no option %d", a.QuestionID, a.OptionIndex)
		}
		answered[a.QuestionID] = struct{}{}
		score += q.Options[a.OptionIndex].Points
	}

	response := api_models.EstimateResponse{CategoryID: categoryID, Score: score}
	if r, ok := estimation.Estimate(details.Rubric, score); ok {
		points := r.StoryPoints
		response.StoryPoints = &points
		response.Matched = true
	}
	return response, nil
}

// teamCategory загружает категорию и проверяет, что она принадлежит команде.
func (s *CatalogService) teamCategory(ctx context.Context, q db.Querier, teamID, categoryID int64) (db.Category, error) {
	category, err := q.GetCategoryByID(ctx, categoryID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && category.TeamID != teamID) {
		return db.Category{}, apierrors.NewNotFoundError("Category %d not found", categoryID)
	}
	if err != nil {
		s.logger.Errorf("Ошибка GetCategoryByID(%d): %v", categoryID, err)
		return db.Category{}, fmt.Errorf("ошибка БД: %w", err)
	}
	return category, nil
}

func validateQuestion(q api_models.QuestionRequest, exact, minCount int) error {
	if strings.TrimSpace(q.Text) == "" {
		return apierrors.NewValidationError("Question text is required")
	}
	return estimation.ValidateOptions(q.Options, exact, minCount)
}

func createQuestion(ctx context.Context, q db.Querier, categoryID int64, req api_models.QuestionRequest) (db.Question, error) {
	options, err := json.Marshal(req.Options)
	if err != nil {
		return db.Question{}, fmt.Errorf("не удалось сериализовать варианты: %w", err)
	}
	text := strings.TrimSpace(req.Text)
	question, err := q.CreateQuestion(ctx, db.CreateQuestionParams{
		CategoryID: categoryID,
		Text:       text,
		Options:    options,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return db.Question{}, apierrors.NewConflictError("Question %q already exists in this category", text)
		}
		return db.Question{}, fmt.Errorf("не удалось создать вопрос: %w", err)
	}
	return question, nil
}
