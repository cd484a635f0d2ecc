package bulkupload

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/util"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

// errRollback возвращается из транзакции, когда в отчёте накопились ошибки записей:
// ExecTx откатывает всё, что успело записаться.
var errRollback = errors.New("загрузка содержит ошибки, транзакция откатывается")

const (
	savepointCategory = "bulk_category"
	savepointQuestion = "bulk_question"
)

// Applier записывает провалидированные категории в БД пачками.
// Все пачки одного файла выполняются в одной транзакции: либо сохраняется всё, либо ничего.
type Applier struct {
	store  db.Store
	logger *logging.Logger
}

func NewApplier(store db.Store, logger *logging.Logger) *Applier {
	return &Applier{
		store:  store,
		logger: logger,
	}
}

// Apply записывает uploads от имени команды teamID и заполняет счётчики result.
//
// Ошибка отдельной записи попадает в result.Errors, обработка продолжается,
// но в конце транзакция откатывается. Возвращаемая ошибка означает сбой инфраструктуры
// (транзакция тоже откачена), в этом случае result.Message не выставляется.
func (a *Applier) Apply(
	ctx context.Context,
	teamID int64,
	uploads []api_models.CategoryUpload,
	opts UploadOptions,
	result *UploadResult,
) error {
	batches := util.Chunk(uploads, opts.BatchSize)
	a.logger.Infof("Начинаем запись %d категорий пачками по %d (всего пачек: %d), стратегия дубликатов: %s",
		len(uploads), opts.BatchSize, len(batches), opts.DuplicateStrategy)

	txErr := a.store.ExecTx(ctx, func(qtx db.TxQuerier) error {
		line := 0
		for b, batch := range batches {
			a.logger.Debugf("Пачка %d/%d: %d категорий", b+1, len(batches), len(batch))
			for _, upload := range batch {
				line++
				if err := a.applyCategory(ctx, qtx, teamID, line, upload, opts.DuplicateStrategy, result); err != nil {
					return err
				}
			}
		}
		if len(result.Errors) > 0 {
			return errRollback
		}
		return nil
	})

	switch {
	case txErr == nil:
		result.Success = true
		result.Message = MessageUploadSucceeded
		a.logger.Infof("Загрузка записана: создано %d/%d, обновлено %d/%d, пропущено %d/%d (категории/вопросы)",
			result.Created.Categories, result.Created.Questions,
			result.Updated.Categories, result.Updated.Questions,
			result.Skipped.Categories, result.Skipped.Questions)
		return nil
	case errors.Is(txErr, errRollback):
		result.Success = false
		result.Message = MessageUploadWithErrors
		a.logger.Warnf("Загрузка откатена: ошибок в записях: %d", len(result.Errors))
		return nil
	default:
		a.logger.Errorf("Транзакция загрузки провалена: %v", txErr)
		return fmt.Errorf("транзакция загрузки провалена: %w", txErr)
	}
}

// applyCategory обрабатывает одну категорию и её вопросы.
// Возвращает ошибку только при сбое инфраструктуры.
func (a *Applier) applyCategory(
	ctx context.Context,
	qtx db.TxQuerier,
	teamID int64,
	line int,
	upload api_models.CategoryUpload,
	strategy DuplicateStrategy,
	result *UploadResult,
) error {
	result.Processed.Categories++
	logger := a.logger.WithFields(logrus.Fields{"line": line, "category": upload.Name})

	var (
		category db.Category
		usable   bool
	)

	recordErr, err := guarded(ctx, qtx, savepointCategory, func() error {
		existing, err := qtx.GetCategoryByTeamAndName(ctx, db.GetCategoryByTeamAndNameParams{
			TeamID: teamID,
			Name:   upload.Name,
		})
		if errors.Is(err, sql.ErrNoRows) {
			rubric, err := util.NullableJSON(upload.Rubric)
			if err != nil {
				return fmt.Errorf("не удалось сериализовать рубрику: %w", err)
			}
			created, err := qtx.CreateCategory(ctx, db.CreateCategoryParams{
				TeamID: teamID,
				Name:   upload.Name,
				Rubric: rubric,
			})
			if err != nil {
				return err
			}
			category, usable = created, true
			result.Created.Categories++
			logger.Debugf("Категория создана, ID: %d", created.ID)
			return nil
		}
		if err != nil {
			return err
		}

		switch strategy {
		case DuplicateError:
			result.Skipped.Categories++
			result.addError(UploadError{
				Line:     line,
				Category: upload.Name,
				Message:  fmt.Sprintf("Category %q already exists", upload.Name),
			})
			return nil
		case DuplicateUpdate:
			category = existing
			if upload.Rubric != nil {
				rubric, err := util.NullableJSON(upload.Rubric)
				if err != nil {
					return fmt.Errorf("не удалось сериализовать рубрику: %w", err)
				}
				updated, err := qtx.UpdateCategoryRubric(ctx, db.UpdateCategoryRubricParams{
					ID:     existing.ID,
					Rubric: rubric,
				})
				if err != nil {
					return err
				}
				category = updated
			}
			usable = true
			result.Updated.Categories++
			logger.Debugf("Категория обновлена, ID: %d", category.ID)
			return nil
		case DuplicateSkip:
			category, usable = existing, true
			result.Skipped.Categories++
			return nil
		default:
			return fmt.Errorf("неизвестная стратегия дубликатов: %s", strategy)
		}
	})
	if err != nil {
		return err
	}
	if recordErr != nil {
		logger.Warnf("Не удалось сохранить категорию: %v", recordErr)
		result.addError(UploadError{
			Line:     line,
			Category: upload.Name,
			Message:  fmt.Sprintf("Failed to save category: %v", recordErr),
		})
		return nil
	}

	// Без ссылки на категорию вопросы некуда привязать
	if !usable {
		return nil
	}
	for _, question := range upload.Questions {
		if err := a.applyQuestion(ctx, qtx, line, upload.Name, category.ID, question, strategy, result); err != nil {
			return err
		}
	}
	return nil
}

func (a *Applier) applyQuestion(
	ctx context.Context,
	qtx db.TxQuerier,
	line int,
	categoryName string,
	categoryID int64,
	question api_models.QuestionUpload,
	strategy DuplicateStrategy,
	result *UploadResult,
) error {
	result.Processed.Questions++

	recordErr, err := guarded(ctx, qtx, savepointQuestion, func() error {
		options, err := json.Marshal(question.Options)
		if err != nil {
			return fmt.Errorf("не удалось сериализовать варианты ответа: %w", err)
		}

		existing, err := qtx.GetQuestionByCategoryAndText(ctx, db.GetQuestionByCategoryAndTextParams{
			CategoryID: categoryID,
			Text:       question.Text,
		})
		if errors.Is(err, sql.ErrNoRows) {
			if _, err := qtx.CreateQuestion(ctx, db.CreateQuestionParams{
				CategoryID: categoryID,
				Text:       question.Text,
				Options:    options,
			}); err != nil {
				return err
			}
			result.Created.Questions++
			return nil
		}
		if err != nil {
			return err
		}

		switch strategy {
		case DuplicateError:
			result.Skipped.Questions++
			result.addError(UploadError{
				Line:     line,
				Category: categoryName,
				Question: question.Text,
				Message:  fmt.Sprintf("Question %q already exists in category %q", question.Text, categoryName),
			})
			return nil
		case DuplicateUpdate:
			if _, err := qtx.UpdateQuestion(ctx, db.UpdateQuestionParams{
				ID:      existing.ID,
				Text:    existing.Text,
				Options: options,
			}); err != nil {
				return err
			}
			result.Updated.Questions++
			return nil
		case DuplicateSkip:
			result.Skipped.Questions++
			return nil
		default:
			return fmt.Errorf("неизвестная стратегия дубликатов: %s", strategy)
		}
	})
	if err != nil {
		return err
	}
	if recordErr != nil {
		a.logger.WithFields(logrus.Fields{"line": line, "category": categoryName, "question": question.Text}).
			Warnf("Не удалось сохранить вопрос: %v", recordErr)
		result.addError(UploadError{
			Line:     line,
			Category: categoryName,
			Question: question.Text,
			Message:  fmt.Sprintf("Failed to save question: %v", recordErr),
		})
	}
	return nil
}

// guarded выполняет fn внутри точки сохранения name.
// Ошибка fn откатывает только эту точку и возвращается как recordErr.
// err не nil, если не удалось управлять самой точкой сохранения: транзакцию нужно бросать.
func guarded(ctx context.Context, qtx db.TxQuerier, name string, fn func() error) (recordErr error, err error) {
	if err := qtx.Savepoint(ctx, name); err != nil {
		return nil, fmt.Errorf("не удалось создать точку сохранения %s: %w", name, err)
	}
	if recordErr := fn(); recordErr != nil {
		if err := qtx.RollbackToSavepoint(ctx, name); err != nil {
			return nil, fmt.Errorf("не удалось откатиться к точке сохранения %s: %w (исходная ошибка: %v)", name, err, recordErr)
		}
		return recordErr, nil
	}
	if err := qtx.ReleaseSavepoint(ctx, name); err != nil {
		return nil, fmt.Errorf("не удалось освободить точку сохранения %s: %w", name, err)
	}
	return nil, nil
}
