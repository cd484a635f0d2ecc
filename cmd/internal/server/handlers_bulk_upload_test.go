package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/estimator-go/cmd/internal/services/bulkupload"
	"github.com/zhukovvlad/estimator-go/cmd/internal/testutil"
)

/*
BEHAVIORAL SCENARIOS FOR BULK UPLOAD ENDPOINTS

What user problems does this protect us from?
================================================================================
1. Anonymous writes - uploads must belong to an authenticated team
2. Half-imported files - a file with record errors leaves nothing behind
3. Misleading statuses - the HTTP code must reflect the result body
4. Upload floods - one team cannot hammer the endpoint

GIVEN / WHEN / THEN Scenarios:
================================================================================

SCENARIO 1: Single file
- GIVEN the CSV template
  WHEN it is uploaded
  THEN 200 with an UploadResult and the categories exist

SCENARIO 2: Dry run
- GIVEN dryRun=true
  WHEN a valid file is uploaded
  THEN 200 "Validation successful" and nothing is written

SCENARIO 3: Several files
- GIVEN a valid and an invalid file
  WHEN both are uploaded at once
  THEN 400 with { success: false, results: [...] }

SCENARIO 4: Rejected requests
- GIVEN no token, no files or an unsupported extension
  WHEN the upload is posted
  THEN 401 / 400 accordingly
*/

const uploadPath = "/api/v1/bulk-upload"

func templateFile(t *testing.T, format bulkupload.Format) testutil.MultipartFile {
	t.Helper()
	content, filename, _ := bulkupload.Template(format)
	return testutil.MultipartFile{Field: uploadFilesField, Name: filename, Content: content}
}

func TestBulkUpload_SingleFile(t *testing.T) {
	// GIVEN: A logged in team and the CSV template
	env := newTestEnv(t, testServerConfig())

	// WHEN: The template is uploaded
	w := env.http.MakeMultipartRequest(t, uploadPath,
		[]testutil.MultipartFile{templateFile(t, bulkupload.FormatCSV)}, nil, env.auth())

	// THEN: The whole file is applied
	var result bulkupload.UploadResult
	testutil.AssertResponse(t, w, http.StatusOK, &result)
	assert.True(t, result.Success)
	assert.Equal(t, bulkupload.MessageUploadSucceeded, result.Message)
	assert.Equal(t, 2, result.Created.Categories)
	assert.Equal(t, 3, result.Created.Questions)
	assert.Empty(t, result.Errors)

	categories := env.store.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, env.teamID, categories[0].TeamID)
}

func TestBulkUpload_DuplicateStrategyFromForm(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	files := []testutil.MultipartFile{templateFile(t, bulkupload.FormatJSON)}

	w := env.http.MakeMultipartRequest(t, uploadPath, files, nil, env.auth())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("error strategy rejects the second upload", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath, files,
			map[string]string{"duplicateStrategy": "error"}, env.auth())

		var result bulkupload.UploadResult
		testutil.AssertResponse(t, w, http.StatusBadRequest, &result)
		assert.False(t, result.Success)
		assert.Equal(t, bulkupload.MessageUploadWithErrors, result.Message)
		testutil.AssertAnyContains(t, messagesOf(result.Errors), "already exists")
	})

	t.Run("default strategy skips", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath, files, nil, env.auth())

		var result bulkupload.UploadResult
		testutil.AssertResponse(t, w, http.StatusOK, &result)
		assert.Equal(t, 2, result.Skipped.Categories)
		assert.Equal(t, 2, result.Skipped.Questions)
	})

	assert.Len(t, env.store.Categories(), 2)
}

func TestBulkUpload_DryRun(t *testing.T) {
	// GIVEN: dryRun=true
	env := newTestEnv(t, testServerConfig())

	// WHEN: A valid file is uploaded
	w := env.http.MakeMultipartRequest(t, uploadPath,
		[]testutil.MultipartFile{templateFile(t, bulkupload.FormatCSV)},
		map[string]string{"dryRun": "true", "batchSize": "7"}, env.auth())

	// THEN: Validation succeeds and nothing is written
	var result bulkupload.UploadResult
	testutil.AssertResponse(t, w, http.StatusOK, &result)
	assert.True(t, result.Success)
	assert.True(t, result.DryRun)
	assert.Equal(t, bulkupload.MessageValidationSuccessful, result.Message)
	assert.Empty(t, env.store.Categories())
	assert.Zero(t, env.store.Commits)
}

func TestBulkUpload_SeveralFiles(t *testing.T) {
	// GIVEN: One valid and one structurally invalid file
	env := newTestEnv(t, testServerConfig())
	files := []testutil.MultipartFile{
		templateFile(t, bulkupload.FormatCSV),
		{Field: uploadFilesField, Name: "broken.json", Content: []byte(`[{"name": ""}]`)},
	}

	// WHEN: Both are uploaded in one request
	w := env.http.MakeMultipartRequest(t, uploadPath, files, nil, env.auth())

	// THEN: The batch fails as a whole, each file has its own result
	var batch bulkupload.BatchUploadResult
	testutil.AssertResponse(t, w, http.StatusBadRequest, &batch)
	assert.False(t, batch.Success)
	require.Len(t, batch.Results, 2)

	assert.True(t, batch.Results[0].Success)
	assert.Equal(t, "bulk-upload-template.csv", batch.Results[0].File)

	assert.False(t, batch.Results[1].Success)
	assert.Equal(t, bulkupload.MessageValidationFailed, batch.Results[1].Message)
	assert.Equal(t, "broken.json", batch.Results[1].File)
}

func TestBulkUpload_RejectedRequests(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	t.Run("no token", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath,
			[]testutil.MultipartFile{templateFile(t, bulkupload.FormatCSV)}, nil, nil)
		testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "access token")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath,
			[]testutil.MultipartFile{templateFile(t, bulkupload.FormatCSV)}, nil, testutil.WithAuth("not-a-jwt"))
		testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "invalid or expired")
	})

	t.Run("no files", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath, nil, map[string]string{"dryRun": "true"}, env.auth())
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "No files uploaded")
	})

	t.Run("files under another field", func(t *testing.T) {
		file := templateFile(t, bulkupload.FormatCSV)
		file.Field = "file"
		w := env.http.MakeMultipartRequest(t, uploadPath, []testutil.MultipartFile{file}, nil, env.auth())
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "No files uploaded")
	})

	t.Run("not multipart", func(t *testing.T) {
		w := env.http.MakePostRequest(t, uploadPath, map[string]string{"files": "x"}, env.auth())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		w := env.http.MakeMultipartRequest(t, uploadPath,
			[]testutil.MultipartFile{{Field: uploadFilesField, Name: "data.xlsx", Content: []byte("x")}}, nil, env.auth())

		var result bulkupload.UploadResult
		testutil.AssertResponse(t, w, http.StatusBadRequest, &result)
		assert.Equal(t, bulkupload.MessageUnsupportedFile, result.Message)
	})

	assert.Empty(t, env.store.Categories())
}

func TestBulkUpload_RateLimit(t *testing.T) {
	// GIVEN: A burst of one upload and a negligible refill rate
	cfg := testServerConfig()
	cfg.Upload.Burst = 1
	cfg.Upload.RatePerSecond = 0.001
	env := newTestEnv(t, cfg)
	files := []testutil.MultipartFile{templateFile(t, bulkupload.FormatCSV)}
	dryRun := map[string]string{"dryRun": "true"}

	// WHEN: The team uploads twice in a row
	first := env.http.MakeMultipartRequest(t, uploadPath, files, dryRun, env.auth())
	second := env.http.MakeMultipartRequest(t, uploadPath, files, dryRun, env.auth())

	// THEN: The second upload is throttled, the template stays available
	assert.Equal(t, http.StatusOK, first.Code)
	testutil.AssertErrorResponse(t, second, http.StatusTooManyRequests, "rate limit exceeded")

	w := env.http.MakeGetRequest(t, "/api/v1/bulk-upload/template", env.auth())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBulkUploadTemplate(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	testCases := []struct {
		query       string
		filename    string
		contentType string
	}{
		{"", "bulk-upload-template.csv", "text/csv"},
		{"?format=csv", "bulk-upload-template.csv", "text/csv"},
		{"?format=json", "bulk-upload-template.json", "application/json"},
	}

	for _, tc := range testCases {
		t.Run(tc.filename+tc.query, func(t *testing.T) {
			w := env.http.MakeGetRequest(t, "/api/v1/bulk-upload/template"+tc.query, env.auth())

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tc.contentType)
			assert.Contains(t, w.Header().Get("Content-Disposition"), tc.filename)
			assert.Contains(t, w.Body.String(), "Backend API")
		})
	}
}

func TestBulkUploadStatus_NotImplemented(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	w := env.http.MakeGetRequest(t, "/api/v1/bulk-upload/status/abc-123", env.auth())

	var body map[string]string
	testutil.AssertResponse(t, w, http.StatusNotImplemented, &body)
	assert.Equal(t, "not implemented", body["error"])
	assert.Equal(t, "abc-123", body["upload_id"])
}

func TestUploadStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, uploadStatus(&bulkupload.UploadResult{Success: true}))
	assert.Equal(t, http.StatusInternalServerError, uploadStatus(&bulkupload.UploadResult{Message: bulkupload.MessageUploadFailed}))
	assert.Equal(t, http.StatusBadRequest, uploadStatus(&bulkupload.UploadResult{Message: bulkupload.MessageValidationFailed}))
}

func messagesOf(errs []bulkupload.UploadError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
