package bulkupload

const (
	MessageValidationFailed     = "Validation failed"
	MessageValidationSuccessful = "Validation successful"
	MessageUploadSucceeded      = "Upload completed successfully"
	MessageUploadWithErrors     = "Upload completed with errors"
	MessageUploadFailed         = "Upload failed"
	MessageUnsupportedFile      = "Unsupported file type"
)

// EntityCounts - счётчик по категориям и вопросам.
type EntityCounts struct {
	Categories int `json:"categories"`
	Questions  int `json:"questions"`
}

// UploadError - одна ошибка загрузки. Line - номер записи в файле (с 1).
type UploadError struct {
	Line     int    `json:"line,omitempty"`
	Category string `json:"category,omitempty"`
	Question string `json:"question,omitempty"`
	Message  string `json:"message"`
}

// UploadResult - отчёт по одному файлу.
type UploadResult struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	File      string        `json:"file,omitempty"`
	Processed EntityCounts  `json:"processed"`
	Created   EntityCounts  `json:"created"`
	Updated   EntityCounts  `json:"updated"`
	Skipped   EntityCounts  `json:"skipped"`
	Errors    []UploadError `json:"errors"`
	DryRun    bool          `json:"dryRun"`
}

// BatchUploadResult - ответ на загрузку нескольких файлов.
type BatchUploadResult struct {
	Success bool            `json:"success"`
	Results []*UploadResult `json:"results"`
}

func newUploadResult(file string, dryRun bool) *UploadResult {
	return &UploadResult{
		File:   file,
		Errors: []UploadError{},
		DryRun: dryRun,
	}
}

func (r *UploadResult) addError(e UploadError) {
	r.Errors = append(r.Errors, e)
}

// fail помечает результат неуспешным с единственной ошибкой.
func (r *UploadResult) fail(message string, e UploadError) *UploadResult {
	r.Success = false
	r.Message = message
	r.addError(e)
	return r
}
