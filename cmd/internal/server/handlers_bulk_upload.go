package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/bulkupload"
)

const uploadFilesField = "files"

// bulkUploadHandler обрабатывает POST /api/v1/bulk-upload.
// Поле files может содержать один или несколько файлов; для одного файла в ответе UploadResult,
// для нескольких { success, results }.
func (s *Server) bulkUploadHandler(c *gin.Context) {
	teamID, ok := teamIDFromContext(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("multipart form expected")))
		return
	}
	// Временные файлы multipart удаляются при любом исходе
	defer func() {
		if err := form.RemoveAll(); err != nil {
			s.logger.Warnf("Не удалось удалить временные файлы загрузки: %v", err)
		}
	}()

	headers := form.File[uploadFilesField]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	opts := bulkupload.NormalizeOptions(
		formValue(form, "duplicateStrategy"),
		formValue(form, "batchSize"),
		formValue(form, "dryRun"),
		s.config.Upload.DefaultBatchSize,
	)

	files := make([]bulkupload.UploadFile, 0, len(headers))
	for _, fh := range headers {
		content, err := readFormFile(fh)
		if err != nil {
			s.logger.Errorf("Ошибка чтения файла %s из формы: %v", fh.Filename, err)
			c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("could not read file %q", fh.Filename)))
			return
		}
		files = append(files, bulkupload.UploadFile{Name: fh.Filename, Content: content})
	}

	ctx := c.Request.Context()
	if len(files) == 1 {
		result := s.uploadService.ProcessFile(ctx, teamID, files[0], opts)
		c.JSON(uploadStatus(result), result)
		return
	}

	batch := s.uploadService.ProcessFiles(ctx, teamID, files, opts)
	status := http.StatusOK
	if !batch.Success {
		status = http.StatusBadRequest
		for _, r := range batch.Results {
			if uploadStatus(r) == http.StatusInternalServerError {
				status = http.StatusInternalServerError
				break
			}
		}
	}
	c.JSON(status, batch)
}

// bulkUploadTemplateHandler обрабатывает GET /api/v1/bulk-upload/template?format=csv|json
func (s *Server) bulkUploadTemplateHandler(c *gin.Context) {
	content, filename, contentType := bulkupload.Template(bulkupload.Format(c.DefaultQuery("format", "csv")))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, content)
}

// bulkUploadStatusHandler обрабатывает GET /api/v1/bulk-upload/status/:upload_id.
// Загрузка синхронная, отслеживать нечего.
func (s *Server) bulkUploadStatusHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error":     "not implemented",
		"upload_id": c.Param("upload_id"),
	})
}

func uploadStatus(result *bulkupload.UploadResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.Message == bulkupload.MessageUploadFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
