package bulkupload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOptions(t *testing.T) {
	testCases := []struct {
		name                        string
		strategy, batchSize, dryRun string
		expected                    UploadOptions
	}{
		{
			name:     "defaults",
			expected: UploadOptions{DuplicateStrategy: DuplicateSkip, BatchSize: DefaultBatchSize},
		},
		{
			name:      "explicit values",
			strategy:  "update",
			batchSize: "10",
			dryRun:    "true",
			expected:  UploadOptions{DuplicateStrategy: DuplicateUpdate, BatchSize: 10, DryRun: true},
		},
		{
			name:     "unknown strategy falls back to skip",
			strategy: "overwrite",
			expected: UploadOptions{DuplicateStrategy: DuplicateSkip, BatchSize: DefaultBatchSize},
		},
		{
			name:      "zero is clamped to one",
			strategy:  "error",
			batchSize: "0",
			expected:  UploadOptions{DuplicateStrategy: DuplicateError, BatchSize: MinBatchSize},
		},
		{
			name:      "too large is clamped",
			batchSize: "100000",
			expected:  UploadOptions{DuplicateStrategy: DuplicateSkip, BatchSize: MaxBatchSize},
		},
		{
			name:      "not an integer uses default",
			batchSize: "12abc",
			expected:  UploadOptions{DuplicateStrategy: DuplicateSkip, BatchSize: DefaultBatchSize},
		},
		{
			name:     "only literal true enables dry run",
			dryRun:   "TRUE",
			expected: UploadOptions{DuplicateStrategy: DuplicateSkip, BatchSize: DefaultBatchSize},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeOptions(tc.strategy, tc.batchSize, tc.dryRun, DefaultBatchSize))
		})
	}

	t.Run("configured default batch size", func(t *testing.T) {
		assert.Equal(t, 20, NormalizeOptions("", "", "", 20).BatchSize)
	})
}

func TestParseDryRun(t *testing.T) {
	assert.True(t, ParseDryRun(true))
	assert.True(t, ParseDryRun("true"))
	assert.False(t, ParseDryRun("1"))
	assert.False(t, ParseDryRun(1))
	assert.False(t, ParseDryRun(nil))
}

func TestFormatFromFilename(t *testing.T) {
	format, ok := FormatFromFilename("Data.CSV")
	assert.True(t, ok)
	assert.Equal(t, FormatCSV, format)

	format, ok = FormatFromFilename("data.json")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, format)

	format, ok = FormatFromFilename("data.txt")
	assert.False(t, ok)
	assert.Equal(t, Format(".txt"), format)
}
