package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/util"
)

func toCategoryResponse(c db.Category, questions []db.Question) (api_models.CategoryResponse, error) {
	rubric, err := util.DecodeNullableJSON[api_models.RubricRange](c.Rubric)
	if err != nil {
		return api_models.CategoryResponse{}, fmt.Errorf("повреждена рубрика категории %d: %w", c.ID, err)
	}

	response := api_models.CategoryResponse{
		ID:     c.ID,
		TeamID: c.TeamID,
		Name:   c.Name,
		Rubric: rubric,
	}
	if questions == nil {
		return response, nil
	}

	response.Questions = make([]api_models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		item, err := toQuestionResponse(q)
		if err != nil {
			return api_models.CategoryResponse{}, err
		}
		response.Questions = append(response.Questions, item)
	}
	return response, nil
}

func toQuestionResponse(q db.Question) (api_models.QuestionResponse, error) {
	var options []api_models.Option
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return api_models.QuestionResponse{}, fmt.Errorf("повреждены варианты вопроса %d: %w", q.ID, err)
	}
	return api_models.QuestionResponse{
		ID:      q.ID,
		Text:    q.Text,
		Options: options,
	}, nil
}
