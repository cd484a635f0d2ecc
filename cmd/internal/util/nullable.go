package util

import (
	"encoding/json"

	"github.com/sqlc-dev/pqtype"
)

// NullableJSON сериализует v в jsonb. nil (в том числе nil-слайс) превращается в SQL NULL.
func NullableJSON[T any](v []T) (pqtype.NullRawMessage, error) {
	if v == nil {
		return pqtype.NullRawMessage{Valid: false}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// DecodeNullableJSON разбирает jsonb-колонку. NULL и пустое значение дают пустой слайс.
func DecodeNullableJSON[T any](p pqtype.NullRawMessage) ([]T, error) {
	out := []T{}
	if !p.Valid || len(p.RawMessage) == 0 || string(p.RawMessage) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(p.RawMessage, &out); err != nil {
		return nil, err
	}
	return out, nil
}
