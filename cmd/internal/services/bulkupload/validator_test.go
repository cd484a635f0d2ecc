package bulkupload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
)

func decodeJSONRecords(t *testing.T, raw string) []any {
	t.Helper()
	var records []any
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	return records
}

func messages(errs []UploadError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestValidateRecords_Valid(t *testing.T) {
	records := decodeJSONRecords(t, `[
		{"name": "Only name"},
		{"name": "Null parts", "rubric": null, "questions": null},
		{"name": "Full",
		 "rubric": [{"min": 1, "max": 3, "storyPoints": 1}, {"min": 4, "max": 6, "storyPoints": 2}],
		 "questions": [{"text": "Q", "options": [{"label": "a", "points": 0}, {"label": "b", "points": 1}, {"label": "c", "points": -1}]}]}
	]`)

	assert.Empty(t, ValidateRecords(records))
}

func TestValidateRecords_RecordShape(t *testing.T) {
	records := decodeJSONRecords(t, `["oops", {"name": ""}, {"name": 5}]`)

	errs := ValidateRecords(records)
	require.Len(t, errs, 3)
	assert.Equal(t, UploadError{Line: 1, Message: "Category record must be an object"}, errs[0])
	for i, e := range errs[1:] {
		assert.Equal(t, i+2, e.Line)
		assert.Equal(t, "Category name is required and must be a non-empty string", e.Message)
	}
}

// Имена из пробелов проходят структурную проверку: требуется только непустая строка.
func TestValidateRecords_WhitespaceIsNonEmpty(t *testing.T) {
	records := decodeJSONRecords(t, `[
		{"name": "  ",
		 "questions": [{"text": " ", "options": [{"label": " ", "points": 1}, {"label": "b", "points": 2}, {"label": "c", "points": 3}]}]}
	]`)

	assert.Empty(t, ValidateRecords(records))
}

func TestValidateRecords_Rubric(t *testing.T) {
	testCases := []struct {
		name     string
		rubric   string
		expected []string
	}{
		{
			name:     "not an array",
			rubric:   `{"min": 1}`,
			expected: []string{"Rubric must be an array"},
		},
		{
			name:     "range is not an object",
			rubric:   `[1]`,
			expected: []string{"Rubric range 1 must be an object"},
		},
		{
			name:     "zero counts as missing",
			rubric:   `[{"min": 0, "max": 3, "storyPoints": 1}]`,
			expected: []string{"Rubric range 1: min, max, and storyPoints are required"},
		},
		{
			name:     "string numbers are rejected",
			rubric:   `[{"min": "1", "max": 3, "storyPoints": 1}]`,
			expected: []string{"Rubric range 1: min, max, and storyPoints must be numbers"},
		},
		{
			name:     "min greater than max",
			rubric:   `[{"min": 5, "max": 3, "storyPoints": 1}]`,
			expected: []string{"Rubric range 1: min (5) cannot be greater than max (3)"},
		},
		{
			name:   "duplicate story points reference the first range",
			rubric: `[{"min": 1, "max": 2, "storyPoints": 3}, {"min": 3, "max": 4, "storyPoints": 5}, {"min": 5, "max": 6, "storyPoints": 3}]`,
			expected: []string{
				"Rubric range 3: duplicate storyPoints value 3 (already used by range 1)",
			},
		},
		{
			name:     "shared boundary overlaps",
			rubric:   `[{"min": 1, "max": 5, "storyPoints": 1}, {"min": 5, "max": 8, "storyPoints": 2}]`,
			expected: []string{"Rubric ranges 1 and 2 overlap"},
		},
		{
			name:   "each overlapping pair is reported once",
			rubric: `[{"min": 1, "max": 10, "storyPoints": 1}, {"min": 2, "max": 3, "storyPoints": 2}, {"min": 4, "max": 5, "storyPoints": 3}]`,
			expected: []string{
				"Rubric ranges 1 and 2 overlap",
				"Rubric ranges 1 and 3 overlap",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := decodeJSONRecords(t, `[{"name": "Cat", "rubric": `+tc.rubric+`}]`)

			errs := ValidateRecords(records)
			assert.Equal(t, tc.expected, messages(errs))
			for _, e := range errs {
				assert.Equal(t, 1, e.Line)
				assert.Equal(t, "Cat", e.Category)
			}
		})
	}

	t.Run("adjacent ranges do not overlap", func(t *testing.T) {
		records := decodeJSONRecords(t, `[{"name": "Cat", "rubric": [{"min": 1, "max": 4.99, "storyPoints": 1}, {"min": 5, "max": 8, "storyPoints": 2}]}]`)
		assert.Empty(t, ValidateRecords(records))
	})
}

func TestValidateRecords_Questions(t *testing.T) {
	testCases := []struct {
		name      string
		questions string
		expected  []string
	}{
		{
			name:      "not an array",
			questions: `"Q"`,
			expected:  []string{"Questions must be an array"},
		},
		{
			name:      "question is not an object",
			questions: `[null]`,
			expected:  []string{"Question 1 must be an object"},
		},
		{
			name:      "missing text and options",
			questions: `[{}]`,
			expected: []string{
				"Question 1: text is required and must be a non-empty string",
				"Question 1: options must be an array of exactly 3 options",
			},
		},
		{
			name:      "two options",
			questions: `[{"text": "Q", "options": [{"label": "a", "points": 1}, {"label": "b", "points": 2}]}]`,
			expected:  []string{"Question 1: must have exactly 3 options, found 2"},
		},
		{
			name:      "option fields are checked independently",
			questions: `[{"text": "Q", "options": [{"label": "", "points": "x"}, 7, {"label": "c", "points": 3}]}]`,
			expected: []string{
				"Question 1, option 1: label is required and must be a non-empty string",
				"Question 1, option 1: points must be a number",
				"Question 1, option 2 must be an object",
			},
		},
		{
			name:      "count error does not hide option errors",
			questions: `[{"text": "Q", "options": [{"label": "a"}]}]`,
			expected: []string{
				"Question 1: must have exactly 3 options, found 1",
				"Question 1, option 1: points must be a number",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := decodeJSONRecords(t, `[{"name": "Cat", "questions": `+tc.questions+`}]`)
			assert.Equal(t, tc.expected, messages(ValidateRecords(records)))
		})
	}

	t.Run("question text is attached to the error", func(t *testing.T) {
		records := decodeJSONRecords(t, `[{"name": "Cat", "questions": [{"text": "How big?", "options": []}]}]`)
		errs := ValidateRecords(records)
		require.Len(t, errs, 1)
		assert.Equal(t, "How big?", errs[0].Question)
		assert.Equal(t, "Cat", errs[0].Category)
	})
}

func TestValidateRecords_AccumulatesAcrossRecords(t *testing.T) {
	records := decodeJSONRecords(t, `[
		{"name": ""},
		{"name": "ok"},
		{"name": "bad", "rubric": [{"min": 2, "max": 1, "storyPoints": 1}]}
	]`)

	errs := ValidateRecords(records)
	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 3, errs[1].Line)
}

func TestDecodeRecords(t *testing.T) {
	records := decodeJSONRecords(t, `[
		{"name": "A"},
		{"name": "B", "rubric": [], "questions": [{"text": "Q", "options": [{"label": "a", "points": 1}, {"label": "b", "points": 2}, {"label": "c", "points": 3}]}]}
	]`)

	uploads, err := DecodeRecords(records)
	require.NoError(t, err)
	require.Len(t, uploads, 2)

	assert.Nil(t, uploads[0].Rubric, "absent rubric stays nil")
	assert.NotNil(t, uploads[1].Rubric, "empty rubric is a supplied rubric")
	assert.Empty(t, uploads[1].Rubric)
	assert.Equal(t, []api_models.QuestionUpload{{
		Text: "Q",
		Options: []api_models.Option{
			{Label: "a", Points: 1},
			{Label: "b", Points: 2},
			{Label: "c", Points: 3},
		},
	}}, uploads[1].Questions)
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(float64(0)))
	assert.False(t, truthy(""))
	assert.False(t, truthy(false))
	assert.True(t, truthy(float64(-1)))
	assert.True(t, truthy("0"))
	assert.True(t, truthy([]any{}))
}
