package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// CachedProvider wraps another provider with a cache; the TTL is
// configurable and defaults to seven days. Cache failures are logged
// and treated as misses, so a dead cache only costs latency.
type CachedProvider struct {
	inner domain.SupplementaryProvider
	cache domain.Cache
	ttl   time.Duration
}

// NewCachedProvider creates a CachedProvider around inner.
func NewCachedProvider(inner domain.SupplementaryProvider, c domain.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: c, ttl: ttl}
}

// FetchSupplementary implements domain.SupplementaryProvider.
func (p *CachedProvider) FetchSupplementary(ctx context.Context, company, role, category string, max int) ([]domain.Question, error) {
	key := cache.GenerateCacheKey("websearch", "questions", company, role, category, strconv.Itoa(max))

	cached, err := p.cache.Get(ctx, key)
	if err == nil {
		var questions []domain.Question
		if err := json.Unmarshal([]byte(cached), &questions); err == nil {
			return questions, nil
		}
		logger.Get().Warn("Discarding corrupt cache entry", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	questions, err := p.inner.FetchSupplementary(ctx, company, role, category, max)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(questions); err == nil {
		if err := p.cache.Set(ctx, key, string(payload), p.ttl); err != nil {
			logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return questions, nil
}
