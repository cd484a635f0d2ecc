package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual сравнивает два JSON объекта независимо от порядка полей
func AssertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "Invalid expected JSON")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "Invalid actual JSON")

	assert.Equal(t, expectedJSON, actualJSON)
}

// AssertErrorContains проверяет, что ошибка содержит определенную подстроку
func AssertErrorContains(t *testing.T, err error, substring string) {
	t.Helper()

	require.Error(t, err, "Expected an error but got nil")
	assert.Contains(t, err.Error(), substring)
}

// AssertAnyContains проверяет, что хотя бы одна строка из messages содержит substring.
func AssertAnyContains(t *testing.T, messages []string, substring string) {
	t.Helper()

	for _, m := range messages {
		if strings.Contains(m, substring) {
			return
		}
	}
	assert.Failf(t, "substring not found", "%q not found in %q", substring, messages)
}
