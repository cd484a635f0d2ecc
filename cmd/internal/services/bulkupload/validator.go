package bulkupload

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/estimation"
)

// ValidateRecords проходит все записи и собирает ошибки формы и бизнес-правил.
// Проверка не останавливается на первой ошибке; пустой список означает, что данные валидны.
func ValidateRecords(records []any) []UploadError {
	errs := []UploadError{}

	for i, record := range records {
		line := i + 1

		obj, ok := record.(map[string]any)
		if !ok {
			errs = append(errs, UploadError{Line: line, Message: "Category record must be an object"})
			continue
		}

		name, nameOK := obj["name"].(string)
		if !nameOK || name == "" {
			errs = append(errs, UploadError{Line: line, Message: "Category name is required and must be a non-empty string"})
		}
		if !nameOK {
			name = ""
		}

		if rubric, present := obj["rubric"]; present && rubric != nil {
			errs = validateRubricValue(errs, line, name, rubric)
		}
		if questions, present := obj["questions"]; present && questions != nil {
			errs = validateQuestionsValue(errs, line, name, questions)
		}
	}

	return errs
}

type indexedRange struct {
	index int
	r     api_models.RubricRange
}

func validateRubricValue(errs []UploadError, line int, category string, value any) []UploadError {
	ranges, ok := value.([]any)
	if !ok {
		return append(errs, UploadError{Line: line, Category: category, Message: "Rubric must be an array"})
	}

	rangeError := func(format string, args ...any) UploadError {
		return UploadError{Line: line, Category: category, Message: fmt.Sprintf(format, args...)}
	}

	seenPoints := make(map[float64]int, len(ranges))
	checked := make([]indexedRange, 0, len(ranges))

	for j, item := range ranges {
		entry, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, rangeError("Rubric range %d must be an object", j+1))
			continue
		}

		// 0 здесь тоже считается отсутствующим значением
		if !truthy(entry["min"]) || !truthy(entry["max"]) || !truthy(entry["storyPoints"]) {
			errs = append(errs, rangeError("Rubric range %d: min, max, and storyPoints are required", j+1))
			continue
		}
		minV, okMin := entry["min"].(float64)
		maxV, okMax := entry["max"].(float64)
		points, okPoints := entry["storyPoints"].(float64)
		if !okMin || !okMax || !okPoints {
			errs = append(errs, rangeError("Rubric range %d: min, max, and storyPoints must be numbers", j+1))
			continue
		}

		current := api_models.RubricRange{Min: minV, Max: maxV, StoryPoints: points}

		if minV > maxV {
			errs = append(errs, rangeError("Rubric range %d: min (%g) cannot be greater than max (%g)", j+1, minV, maxV))
		}

		if first, dup := seenPoints[points]; dup {
			errs = append(errs, rangeError("Rubric range %d: duplicate storyPoints value %g (already used by range %d)", j+1, points, first+1))
		} else {
			seenPoints[points] = j
		}

		for _, prior := range checked {
			if estimation.RangesOverlap(prior.r, current) {
				errs = append(errs, rangeError("Rubric ranges %d and %d overlap", prior.index+1, j+1))
			}
		}
		checked = append(checked, indexedRange{index: j, r: current})
	}

	return errs
}

func validateQuestionsValue(errs []UploadError, line int, category string, value any) []UploadError {
	questions, ok := value.([]any)
	if !ok {
		return append(errs, UploadError{Line: line, Category: category, Message: "Questions must be an array"})
	}

	for j, item := range questions {
		q, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, UploadError{Line: line, Category: category, Message: fmt.Sprintf("Question %d must be an object", j+1)})
			continue
		}

		text, textOK := q["text"].(string)
		if !textOK {
			text = ""
		}
		questionError := func(format string, args ...any) UploadError {
			return UploadError{Line: line, Category: category, Question: text, Message: fmt.Sprintf(format, args...)}
		}

		if !textOK || text == "" {
			errs = append(errs, questionError("Question %d: text is required and must be a non-empty string", j+1))
		}

		options, ok := q["options"].([]any)
		if !ok {
			errs = append(errs, questionError("Question %d: options must be an array of exactly %d options", j+1, estimation.RequiredOptions))
			continue
		}
		if len(options) != estimation.RequiredOptions {
			errs = append(errs, questionError("Question %d: must have exactly %d options, found %d", j+1, estimation.RequiredOptions, len(options)))
		}

		for k, rawOption := range options {
			option, ok := rawOption.(map[string]any)
			if !ok {
				errs = append(errs, questionError("Question %d, option %d must be an object", j+1, k+1))
				continue
			}
			if label, ok := option["label"].(string); !ok || label == "" {
				errs = append(errs, questionError("Question %d, option %d: label is required and must be a non-empty string", j+1, k+1))
			}
			if _, ok := option["points"].(float64); !ok {
				errs = append(errs, questionError("Question %d, option %d: points must be a number", j+1, k+1))
			}
		}
	}

	return errs
}

// truthy повторяет проверку "значение задано": nil, 0, NaN, "" и false не считаются заданными.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	case bool:
		return t
	default:
		return true
	}
}

// DecodeRecords превращает провалидированные записи в типизированные структуры.
func DecodeRecords(records []any) ([]api_models.CategoryUpload, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать записи: %w", err)
	}
	uploads := make([]api_models.CategoryUpload, 0, len(records))
	if err := json.Unmarshal(raw, &uploads); err != nil {
		return nil, fmt.Errorf("не удалось разобрать записи: %w", err)
	}
	return uploads, nil
}
