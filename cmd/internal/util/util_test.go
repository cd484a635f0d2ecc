package util

import (
	"testing"

	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== Тесты для Chunk ==========

func TestChunk(t *testing.T) {
	t.Run("ровное деление", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
	})

	t.Run("последняя часть короче", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)
	})

	t.Run("размер больше длины", func(t *testing.T) {
		chunks := Chunk([]string{"a", "b"}, 500)
		assert.Equal(t, [][]string{{"a", "b"}}, chunks)
	})

	t.Run("пустой вход", func(t *testing.T) {
		assert.Empty(t, Chunk([]int{}, 3))
	})

	t.Run("нулевой размер трактуется как 1", func(t *testing.T) {
		assert.Len(t, Chunk([]int{1, 2, 3}, 0), 3)
	})
}

// ========== Тесты для NullableJSON ==========

type pair struct {
	A int `json:"a"`
}

func TestNullableJSON(t *testing.T) {
	t.Run("nil даёт NULL", func(t *testing.T) {
		v, err := NullableJSON[pair](nil)
		require.NoError(t, err)
		assert.False(t, v.Valid)
	})

	t.Run("пустой слайс остаётся пустым массивом", func(t *testing.T) {
		v, err := NullableJSON([]pair{})
		require.NoError(t, err)
		assert.True(t, v.Valid)
		assert.JSONEq(t, `[]`, string(v.RawMessage))
	})

	t.Run("туда и обратно", func(t *testing.T) {
		v, err := NullableJSON([]pair{{A: 1}, {A: 2}})
		require.NoError(t, err)

		decoded, err := DecodeNullableJSON[pair](v)
		require.NoError(t, err)
		assert.Equal(t, []pair{{A: 1}, {A: 2}}, decoded)
	})

	t.Run("NULL читается как пустой слайс", func(t *testing.T) {
		decoded, err := DecodeNullableJSON[pair](pqtype.NullRawMessage{})
		require.NoError(t, err)
		assert.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})
}

// ========== Тесты для CacheKey ==========

func TestCacheKey(t *testing.T) {
	t.Run("регистр и пробелы не влияют на ключ", func(t *testing.T) {
		assert.Equal(t, CacheKey("teams", "Core  Team"), CacheKey("teams", " core team "))
	})

	t.Run("префикс входит в ключ", func(t *testing.T) {
		key := CacheKey("teams", "x")
		assert.Contains(t, key, "teams:")
		assert.Len(t, key, len("teams:")+64)
	})
}
