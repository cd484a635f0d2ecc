package testutil

import (
	"encoding/json"
	"time"

	"github.com/sqlc-dev/pqtype"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
)

const TestPasscode = "password"

// TestPasscodeHash - bcrypt-хеш TestPasscode. MinCost ускоряет тесты.
var TestPasscodeHash = mustHash(TestPasscode)

func mustHash(passcode string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// CreateTestTeam создает тестовую команду
func CreateTestTeam(id int64, name string) db.Team {
	return db.Team{
		ID:           id,
		Name:         name,
		PasscodeHash: TestPasscodeHash,
		CreatedAt:    time.Now(),
	}
}

// CreateTestCategory создает тестовую категорию. rubric == nil даёт NULL в колонке.
func CreateTestCategory(id, teamID int64, name string, rubric []api_models.RubricRange) db.Category {
	now := time.Now()
	category := db.Category{
		ID:        id,
		TeamID:    teamID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if rubric != nil {
		raw, _ := json.Marshal(rubric)
		category.Rubric = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}
	return category
}

// CreateTestQuestion создает тестовый вопрос
func CreateTestQuestion(id, categoryID int64, text string, options []api_models.Option) db.Question {
	now := time.Now()
	raw, _ := json.Marshal(options)
	return db.Question{
		ID:         id,
		CategoryID: categoryID,
		Text:       text,
		Options:    raw,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ThreeOptions - стандартный набор вариантов 1/2/3 балла.
func ThreeOptions() []api_models.Option {
	return []api_models.Option{
		{Label: "Low", Points: 1},
		{Label: "Medium", Points: 2},
		{Label: "High", Points: 3},
	}
}

// SampleRubric - непересекающаяся рубрика для трёх вопросов со ThreeOptions.
func SampleRubric() []api_models.RubricRange {
	return []api_models.RubricRange{
		{Min: 3, Max: 4, StoryPoints: 1},
		{Min: 5, Max: 6, StoryPoints: 3},
		{Min: 7, Max: 9, StoryPoints: 5},
	}
}
