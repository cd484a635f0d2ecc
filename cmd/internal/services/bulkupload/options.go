package bulkupload

import (
	"path/filepath"
	"strconv"
	"strings"
)

// DuplicateStrategy определяет, что делать с записью, естественный ключ которой уже есть в БД.
type DuplicateStrategy string

const (
	DuplicateSkip   DuplicateStrategy = "skip"
	DuplicateUpdate DuplicateStrategy = "update"
	DuplicateError  DuplicateStrategy = "error"
)

const (
	DefaultBatchSize = 50
	MinBatchSize     = 1
	MaxBatchSize     = 500
)

// ParseDuplicateStrategy возвращает skip для любого неизвестного значения.
func ParseDuplicateStrategy(s string) DuplicateStrategy {
	switch DuplicateStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case DuplicateUpdate:
		return DuplicateUpdate
	case DuplicateError:
		return DuplicateError
	default:
		return DuplicateSkip
	}
}

// UploadOptions - настройки одного запроса на загрузку.
type UploadOptions struct {
	DuplicateStrategy DuplicateStrategy
	BatchSize         int
	DryRun            bool
}

// DefaultOptions - skip, 50, без dry-run.
func DefaultOptions() UploadOptions {
	return UploadOptions{
		DuplicateStrategy: DuplicateSkip,
		BatchSize:         DefaultBatchSize,
	}
}

// NormalizeOptions собирает UploadOptions из сырых полей формы.
// batchSize, который не парсится как целое, заменяется на defaultBatchSize; результат зажимается в [1, 500].
func NormalizeOptions(strategy, batchSize, dryRun string, defaultBatchSize int) UploadOptions {
	if defaultBatchSize <= 0 {
		defaultBatchSize = DefaultBatchSize
	}
	size, err := strconv.Atoi(strings.TrimSpace(batchSize))
	if err != nil {
		size = defaultBatchSize
	}
	return UploadOptions{
		DuplicateStrategy: ParseDuplicateStrategy(strategy),
		BatchSize:         clampBatchSize(size),
		DryRun:            ParseDryRun(dryRun),
	}
}

// ParseDryRun принимает bool или литерал "true".
func ParseDryRun(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

func clampBatchSize(size int) int {
	if size < MinBatchSize {
		return MinBatchSize
	}
	if size > MaxBatchSize {
		return MaxBatchSize
	}
	return size
}

// Format - формат загружаемого файла.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatFromFilename определяет формат по расширению. Второе значение false - формат не поддерживается;
// первое тогда содержит само расширение для сообщения об ошибке.
func FormatFromFilename(filename string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return FormatCSV, true
	case ".json":
		return FormatJSON, true
	default:
		return Format(ext), false
	}
}
