package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/takehome_app/internal/core/domain"
)

// RateSource fetches the latest rates quoted against base, keyed by raw currency code.
// The result may omit codes or contain codes outside the supported set.
type RateSource interface {
	FetchLatest(ctx context.Context, base domain.CurrencyCode) (map[string]float64, error)
}

// RateCacheReader defines read operations on a shared rate cache.
type RateCacheReader interface {
	// GetRates returns the cached rates for base; found is false on a miss.
	GetRates(ctx context.Context, base domain.CurrencyCode) (rates map[string]float64, found bool, err error)
}

// RateCacheWriter defines write operations on a shared rate cache.
type RateCacheWriter interface {
	// SetRates stores rates for base for at most ttl.
	SetRates(ctx context.Context, base domain.CurrencyCode, rates map[string]float64, ttl time.Duration) error
}

// RateCacheFacade combines all rate cache operations.
type RateCacheFacade interface {
	RateCacheReader
	RateCacheWriter
}
