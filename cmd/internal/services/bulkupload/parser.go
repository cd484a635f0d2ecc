package bulkupload

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zhukovvlad/estimator-go/cmd/internal/services/estimation"
)

// Колонки CSV-шаблона.
const (
	colCategoryName = "category_name"
	colRubric       = "rubric"
	colQuestionText = "question_text"
	colOptions      = "options"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError - файл не удалось разобрать. Row - номер строки CSV с учётом заголовка (0, если строка не важна).
type ParseError struct {
	Row     int
	Message string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

// ParseUpload превращает содержимое файла в последовательность "сырых" записей категорий.
// Записи не типизированы: форму данных проверяет ValidateRecords.
func ParseUpload(content []byte, format Format) ([]any, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	switch format {
	case FormatJSON:
		return parseJSON(content)
	case FormatCSV:
		return parseCSV(content)
	default:
		return nil, &ParseError{Message: fmt.Sprintf("%s: %s", MessageUnsupportedFile, format)}
	}
}

func parseJSON(content []byte) ([]any, error) {
	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("Invalid JSON: %v", err)}
	}
	if records, ok := value.([]any); ok {
		return records, nil
	}
	// Одиночный объект оборачиваем в массив
	return []any{value}, nil
}

// csvRow даёт доступ к ячейкам по имени колонки. Отсутствующая ячейка читается как пустая строка.
type csvRow struct {
	columns map[string]int
	cells   []string
}

func (r csvRow) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

type csvCategory struct {
	name      string
	rubric    []any
	hasRubric bool
	questions []any
}

// parseCSV группирует строки по category_name в порядке первого появления.
// Каждая строка может добавить вопрос; рубрика берётся из последней непустой ячейки.
func parseCSV(content []byte) ([]any, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []any{}, nil
	}
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("Invalid CSV: %v", err)}
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	groups := make(map[string]*csvCategory)
	var order []string

	for rowIndex := 0; ; rowIndex++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// +2: строки данных нумеруются с 1, плюс строка заголовка
		line := rowIndex + 2
		if err != nil {
			return nil, &ParseError{Row: line, Message: fmt.Sprintf("Invalid CSV: %v", err)}
		}
		row := csvRow{columns: columns, cells: cells}

		name := strings.TrimSpace(row.get(colCategoryName))
		if name == "" {
			return nil, &ParseError{Row: line, Message: "Missing category name"}
		}

		category, ok := groups[name]
		if !ok {
			category = &csvCategory{name: name, questions: []any{}}
			groups[name] = category
			order = append(order, name)
		}

		if cell := strings.TrimSpace(row.get(colRubric)); cell != "" {
			rubric, err := decodeRubricCell(cell)
			if err != nil {
				return nil, &ParseError{Row: line, Message: err.Error()}
			}
			category.rubric = rubric
			category.hasRubric = true
		}

		text := strings.TrimSpace(row.get(colQuestionText))
		if text == "" {
			continue
		}
		options, err := resolveRowOptions(row)
		if err != nil {
			return nil, &ParseError{Row: line, Message: err.Error()}
		}
		if len(options) != estimation.RequiredOptions {
			return nil, &ParseError{Row: line, Message: fmt.Sprintf("Each question must have exactly %d options", estimation.RequiredOptions)}
		}
		category.questions = append(category.questions, map[string]any{
			"text":    text,
			"options": options,
		})
	}

	records := make([]any, 0, len(order))
	for _, name := range order {
		category := groups[name]
		record := map[string]any{
			"name":      category.name,
			"questions": category.questions,
		}
		if category.hasRubric {
			record["rubric"] = category.rubric
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRubricCell(cell string) ([]any, error) {
	var raw []any
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		return nil, fmt.Errorf("Invalid rubric JSON: %v", err)
	}
	rubric := make([]any, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New("Rubric entries must have numeric min, max, and storyPoints")
		}
		minV, okMin := entry["min"].(float64)
		maxV, okMax := entry["max"].(float64)
		points, okPoints := entry["storyPoints"].(float64)
		if !okMin || !okMax || !okPoints {
			return nil, errors.New("Rubric entries must have numeric min, max, and storyPoints")
		}
		rubric = append(rubric, map[string]any{"min": minV, "max": maxV, "storyPoints": points})
	}
	return rubric, nil
}

// resolveRowOptions берёт варианты из JSON-колонки options, а если она пуста,
// из позиционных колонок optionN_label / optionN_points.
func resolveRowOptions(row csvRow) ([]any, error) {
	if cell := strings.TrimSpace(row.get(colOptions)); cell != "" {
		return decodeOptionsCell(cell)
	}

	options := make([]any, 0, estimation.RequiredOptions)
	for i := 1; i <= estimation.RequiredOptions; i++ {
		label := strings.TrimSpace(row.get(fmt.Sprintf("option%d_label", i)))
		if label == "" {
			continue
		}
		points, err := strconv.ParseFloat(strings.TrimSpace(row.get(fmt.Sprintf("option%d_points", i))), 64)
		if err != nil || math.IsNaN(points) || math.IsInf(points, 0) {
			continue
		}
		options = append(options, map[string]any{"label": label, "points": points})
	}
	return options, nil
}

func decodeOptionsCell(cell string) ([]any, error) {
	var raw []any
	if err := json.Unmarshal([]byte(cell), &raw); err != nil {
		return nil, fmt.Errorf("Invalid options JSON: %v", err)
	}
	options := make([]any, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New("Each option must have a non-empty label and numeric points")
		}
		label, okLabel := entry["label"].(string)
		points, okPoints := entry["points"].(float64)
		if !okLabel || strings.TrimSpace(label) == "" || !okPoints {
			return nil, errors.New("Each option must have a non-empty label and numeric points")
		}
		options = append(options, map[string]any{"label": label, "points": points})
	}
	return options, nil
}
