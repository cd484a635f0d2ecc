package estimation

import (
	"strings"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
)

const (
	// RequiredOptions - ровно столько вариантов у вопроса при создании и массовой загрузке.
	RequiredOptions = 3
	// MinUpdateOptions - минимум вариантов при обновлении вопроса.
	MinUpdateOptions = 2
)

// RangesOverlap проверяет пересечение замкнутых интервалов. Симметрична: [0,10] и [10,20] пересекаются.
func RangesOverlap(a, b api_models.RubricRange) bool {
	return a.Min <= b.Max && a.Max >= b.Min
}

// ValidateRubric проверяет рубрику категории: min <= max, уникальные storyPoints, отсутствие пересечений.
func ValidateRubric(rubric []api_models.RubricRange) error {
	seen := make(map[float64]struct{}, len(rubric))
	for j, r := range rubric {
		if r.Min > r.Max {
			return apierrors.NewValidationError("Rubric range %d: min (%g) cannot be greater than max (%g)", j+1, r.Min, r.Max)
		}
		if _, dup := seen[r.StoryPoints]; dup {
			return apierrors.NewValidationError("Rubric range %d: duplicate storyPoints value %g", j+1, r.StoryPoints)
		}
		seen[r.StoryPoints] = struct{}{}
		for k := 0; k < j; k++ {
			if RangesOverlap(rubric[k], r) {
				return apierrors.NewValidationError("Rubric ranges %d and %d overlap", k+1, j+1)
			}
		}
	}
	return nil
}

// ValidateOptions проверяет варианты ответа. exact > 0 требует ровно exact вариантов,
// иначе достаточно minCount.
func ValidateOptions(options []api_models.Option, exact, minCount int) error {
	switch {
	case exact > 0 && len(options) != exact:
		return apierrors.NewValidationError("Each question must have exactly %d options, found %d", exact, len(options))
	case exact == 0 && len(options) < minCount:
		return apierrors.NewValidationError("Each question must have at least %d options, found %d", minCount, len(options))
	}
	for k, o := range options {
		if strings.TrimSpace(o.Label) == "" {
			return apierrors.NewValidationError("Option %d: label is required", k+1)
		}
	}
	return nil
}

// Estimate подбирает диапазон рубрики для суммы баллов.
func Estimate(rubric []api_models.RubricRange, score float64) (api_models.RubricRange, bool) {
	for _, r := range rubric {
		if score >= r.Min && score <= r.Max {
			return r, true
		}
	}
	return api_models.RubricRange{}, false
}
