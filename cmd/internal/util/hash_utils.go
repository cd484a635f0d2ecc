package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GetSHA256Hash вычисляет хеш SHA-256 для входной строки.
func GetSHA256Hash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// CacheKey строит стабильный ключ кэша: префикс плюс хеш нормализованного запроса.
func CacheKey(prefix, query string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	return prefix + ":" + GetSHA256Hash(normalized)
}
