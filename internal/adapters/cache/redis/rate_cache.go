package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	portsrepo "github.com/SscSPs/takehome_app/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "takehome:rates:latest:"

// RateCache stores fetched rate payloads in Redis so replicas share one
// upstream fetch per TTL window.
type RateCache struct {
	client *goredis.Client
}

// NewRateCache creates a RateCache backed by client.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{client: client}
}

var _ portsrepo.RateCacheFacade = (*RateCache)(nil)

func cacheKey(base domain.CurrencyCode) string {
	return keyPrefix + string(base)
}

// GetRates implements portsrepo.RateCacheReader.
func (c *RateCache) GetRates(ctx context.Context, base domain.CurrencyCode) (map[string]float64, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(base)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get rates: %w", err)
	}

	var rates map[string]float64
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, false, fmt.Errorf("decode cached rates: %w", err)
	}
	return rates, true, nil
}

// SetRates implements portsrepo.RateCacheWriter.
func (c *RateCache) SetRates(ctx context.Context, base domain.CurrencyCode, rates map[string]float64, ttl time.Duration) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode rates: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(base), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set rates: %w", err)
	}
	return nil
}

// CachedRateSource serves rates from the cache and falls through to the
// upstream source on a miss. Cache failures are logged and never fail a fetch.
type CachedRateSource struct {
	upstream portsrepo.RateSource
	cache    portsrepo.RateCacheFacade
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCachedRateSource wraps upstream with cache.
func NewCachedRateSource(upstream portsrepo.RateSource, cache portsrepo.RateCacheFacade, ttl time.Duration, logger *slog.Logger) *CachedRateSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedRateSource{upstream: upstream, cache: cache, ttl: ttl, logger: logger}
}

var _ portsrepo.RateSource = (*CachedRateSource)(nil)

// FetchLatest implements portsrepo.RateSource.
func (s *CachedRateSource) FetchLatest(ctx context.Context, base domain.CurrencyCode) (map[string]float64, error) {
	rates, found, err := s.cache.GetRates(ctx, base)
	if err != nil {
		s.logger.Warn("Rate cache read failed, fetching upstream", slog.String("base", string(base)), slog.String("error", err.Error()))
	} else if found {
		s.logger.Debug("Rate cache hit", slog.String("base", string(base)))
		return rates, nil
	}

	rates, err = s.upstream.FetchLatest(ctx, base)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRates(ctx, base, rates, s.ttl); err != nil {
		s.logger.Warn("Rate cache write failed", slog.String("base", string(base)), slog.String("error", err.Error()))
	}
	return rates, nil
}
