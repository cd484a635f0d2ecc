// Package cache - кэш "ключ-значение" с истечением срока жизни.
// Значения непрозрачны: сериализацией занимается вызывающий код.
package cache

import (
	"context"
	"time"
)

// Cache реализуют MemoryCache и RedisCache.
type Cache interface {
	// Get возвращает значение и true, если ключ есть и не истёк.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
