package teams

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/cache"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/estimator-go/cmd/internal/util"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"
)

const (
	MinQueryLength = 2
	MaxLimit       = 50
	DefaultLimit   = 10

	cachePrefix = "teams:search"
)

// SearchService ищет команды по имени для экрана входа.
// Результаты кэшируются; одинаковые одновременные запросы схлопываются в один поход в БД.
type SearchService struct {
	store  db.Querier
	cache  cache.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *logging.Logger
}

func NewSearchService(store db.Querier, c cache.Cache, ttl time.Duration, logger *logging.Logger) *SearchService {
	return &SearchService{
		store:  store,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Search возвращает до limit команд, имя которых содержит query (без учёта регистра).
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]api_models.TeamResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, apierrors.NewValidationError("query must be at least %d characters", MinQueryLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	key := util.CacheKey(cachePrefix, fmt.Sprintf("%s|%d", query, limit))
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warnf("Кэш поиска команд недоступен: %v", err)
	} else if ok {
		var cached []api_models.TeamResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.logger.Warnf("Повреждённая запись кэша %s, читаем из БД", key)
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		rows, err := s.store.SearchTeams(ctx, db.SearchTeamsParams{
			Query:    query,
			RowLimit: int32(limit),
		})
		if err != nil {
			return nil, fmt.Errorf("ошибка БД: %w", err)
		}

		result := make([]api_models.TeamResponse, 0, len(rows))
		for _, t := range rows {
			result = append(result, api_models.TeamResponse{ID: t.ID, Name: t.Name})
		}

		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
				s.logger.Warnf("Не удалось сохранить результат поиска в кэш: %v", err)
			}
		}
		return result, nil
	})
	if err != nil {
		s.logger.Errorf("Ошибка поиска команд по %q: %v", query, err)
		return nil, err
	}
	if shared {
		s.logger.Debugf("Поиск команд %q выполнен одним запросом для нескольких клиентов", query)
	}
	return v.([]api_models.TeamResponse), nil
}
