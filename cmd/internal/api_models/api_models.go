package api_models

// RubricRange - замкнутый диапазон суммы баллов, которому соответствует оценка в story points.
type RubricRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	StoryPoints float64 `json:"storyPoints"`
}

// Option - вариант ответа на вопрос.
type Option struct {
	Label  string  `json:"label"`
	Points float64 `json:"points"`
}

type QuestionUpload struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// CategoryUpload - одна категория из файла массовой загрузки.
// Rubric == nil означает, что рубрика в записи не передавалась.
type CategoryUpload struct {
	Name      string           `json:"name"`
	Rubric    []RubricRange    `json:"rubric,omitempty"`
	Questions []QuestionUpload `json:"questions,omitempty"`
}

type QuestionResponse struct {
	ID      int64    `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type CategoryResponse struct {
	ID        int64              `json:"id"`
	TeamID    int64              `json:"team_id"`
	Name      string             `json:"name"`
	Rubric    []RubricRange      `json:"rubric"`
	Questions []QuestionResponse `json:"questions,omitempty"`
}

type TeamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AnswerSelection - выбранный вариант (по индексу) для вопроса категории.
type AnswerSelection struct {
	QuestionID  int64 `json:"question_id" binding:"required,min=1"`
	OptionIndex int   `json:"option_index" binding:"min=0"`
}

type EstimateResponse struct {
	CategoryID  int64    `json:"category_id"`
	Score       float64  `json:"score"`
	StoryPoints *float64 `json:"storyPoints"`
	Matched     bool     `json:"matched"`
}

// CreateCategoryRequest - тело POST /api/v1/categories.
type CreateCategoryRequest struct {
	Name      string            `json:"name" binding:"required"`
	Rubric    []RubricRange     `json:"rubric"`
	Questions []QuestionRequest `json:"questions"`
}

// QuestionRequest - тело создания и обновления вопроса.
type QuestionRequest struct {
	Text    string   `json:"text" binding:"required"`
	Options []Option `json:"options" binding:"required"`
}

type UpdateRubricRequest struct {
	Rubric []RubricRange `json:"rubric"`
}

type EstimateRequest struct {
	Answers []AnswerSelection `json:"answers" binding:"required,dive"`
}

type LoginRequest struct {
	TeamName string `json:"team_name" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
	Team        TeamResponse `json:"team"`
}
