package bulkupload

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

const genericFailureMessage = "An unexpected error occurred while processing the upload"

// UploadFile - один файл из multipart-запроса.
type UploadFile struct {
	Name    string
	Content []byte
}

// Service проводит файлы через разбор, валидацию и запись.
type Service struct {
	store  db.Store
	logger *logging.Logger
	debug  bool
}

// NewService создает сервис массовой загрузки. При debug в ответ попадает текст внутренних ошибок.
func NewService(store db.Store, logger *logging.Logger, debug bool) *Service {
	return &Service{
		store:  store,
		logger: logger,
		debug:  debug,
	}
}

// ProcessFiles обрабатывает файлы по очереди. Каждый файл записывается в своей транзакции,
// итоговый Success истинен только если успешны все файлы.
func (s *Service) ProcessFiles(ctx context.Context, teamID int64, files []UploadFile, opts UploadOptions) *BatchUploadResult {
	uploadID := uuid.NewString()
	logger := &logging.Logger{Entry: s.logger.WithFields(logrus.Fields{
		"upload_id": uploadID,
		"team_id":   teamID,
	})}
	logger.Infof("Получено файлов: %d (dryRun=%t, batchSize=%d, duplicateStrategy=%s)",
		len(files), opts.DryRun, opts.BatchSize, opts.DuplicateStrategy)

	batch := &BatchUploadResult{
		Success: true,
		Results: make([]*UploadResult, 0, len(files)),
	}
	for _, file := range files {
		result := s.processFile(ctx, logger.GetLoggerWithField("file", file.Name), teamID, file, opts)
		batch.Results = append(batch.Results, result)
		batch.Success = batch.Success && result.Success
	}
	return batch
}

// ProcessFile обрабатывает один файл. Ошибки никогда не возвращаются наружу: всё, что
// пошло не так, отражено в UploadResult.
func (s *Service) ProcessFile(ctx context.Context, teamID int64, file UploadFile, opts UploadOptions) *UploadResult {
	logger := &logging.Logger{Entry: s.logger.WithFields(logrus.Fields{
		"upload_id": uuid.NewString(),
		"team_id":   teamID,
		"file":      file.Name,
	})}
	return s.processFile(ctx, logger, teamID, file, opts)
}

func (s *Service) processFile(
	ctx context.Context,
	logger *logging.Logger,
	teamID int64,
	file UploadFile,
	opts UploadOptions,
) (result *UploadResult) {
	result = newUploadResult(file.Name, opts.DryRun)

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Паника при обработке файла: %v\n%s", r, debug.Stack())
			result = s.genericFailure(file.Name, opts.DryRun, fmt.Errorf("panic: %v", r))
		}
	}()

	format, ok := FormatFromFilename(file.Name)
	if !ok {
		logger.Warnf("Неподдерживаемый тип файла: %q", format)
		return result.fail(MessageUnsupportedFile, UploadError{
			Message: fmt.Sprintf("%s: %s", MessageUnsupportedFile, format),
		})
	}

	logger.Infof("Шаг 1: разбор файла (%s, %d байт)", format, len(file.Content))
	records, err := ParseUpload(file.Content, format)
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			return s.genericFailure(file.Name, opts.DryRun, err)
		}
		logger.Warnf("Файл не разобран: %v", err)
		return result.fail(MessageValidationFailed, UploadError{Message: parseErr.Error()})
	}

	logger.Infof("Шаг 2: валидация %d записей", len(records))
	if validationErrors := ValidateRecords(records); len(validationErrors) > 0 {
		logger.Warnf("Валидация не пройдена, ошибок: %d", len(validationErrors))
		result.Success = false
		result.Message = MessageValidationFailed
		result.Errors = validationErrors
		return result
	}

	if opts.DryRun {
		logger.Info("Dry run: запись в БД пропущена")
		result.Success = true
		result.Message = MessageValidationSuccessful
		return result
	}

	uploads, err := DecodeRecords(records)
	if err != nil {
		logger.Errorf("Не удалось преобразовать записи: %v", err)
		return s.genericFailure(file.Name, opts.DryRun, err)
	}

	logger.Info("Шаг 3: запись в БД")
	if err := NewApplier(s.store, logger).Apply(ctx, teamID, uploads, opts, result); err != nil {
		return s.genericFailure(file.Name, opts.DryRun, err)
	}
	return result
}

// genericFailure строит ответ на непредвиденную ошибку. Подробности видны только в режиме отладки.
func (s *Service) genericFailure(file string, dryRun bool, err error) *UploadResult {
	message := genericFailureMessage
	if s.debug {
		message = err.Error()
	}
	return newUploadResult(file, dryRun).fail(MessageUploadFailed, UploadError{Message: message})
}
