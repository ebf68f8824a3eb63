package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	rediscache "github.com/SscSPs/takehome_app/internal/adapters/cache/redis"
	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchLatest(ctx context.Context, base domain.CurrencyCode) (map[string]float64, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateCache_RoundTrip(t *testing.T) {
	mr, client := setupRedis(t)
	cache := rediscache.NewRateCache(client)
	ctx := context.Background()

	_, found, err := cache.GetRates(ctx, domain.USD)
	require.NoError(t, err)
	assert.False(t, found)

	rates := map[string]float64{"EUR": 0.93, "GBP": 0.8}
	require.NoError(t, cache.SetRates(ctx, domain.USD, rates, time.Minute))

	got, found, err := cache.GetRates(ctx, domain.USD)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rates, got)

	mr.FastForward(2 * time.Minute)
	_, found, err = cache.GetRates(ctx, domain.USD)
	require.NoError(t, err)
	assert.False(t, found, "entry should expire after ttl")
}

func TestRateCache_CorruptEntry(t *testing.T) {
	mr, client := setupRedis(t)
	require.NoError(t, mr.Set("takehome:rates:latest:USD", "{not json"))

	_, found, err := rediscache.NewRateCache(client).GetRates(context.Background(), domain.USD)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestCachedRateSource_MissThenHit(t *testing.T) {
	_, client := setupRedis(t)
	upstream := new(MockRateSource)
	ctx := context.Background()
	rates := map[string]float64{"EUR": 0.93}

	upstream.On("FetchLatest", ctx, domain.USD).Return(rates, nil).Once()

	src := rediscache.NewCachedRateSource(upstream, rediscache.NewRateCache(client), time.Minute, nil)

	first, err := src.FetchLatest(ctx, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, rates, first)

	second, err := src.FetchLatest(ctx, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, rates, second)

	upstream.AssertNumberOfCalls(t, "FetchLatest", 1)
}

func TestCachedRateSource_UpstreamErrorNotCached(t *testing.T) {
	mr, client := setupRedis(t)
	upstream := new(MockRateSource)
	ctx := context.Background()
	fetchErr := errors.Join(apperrors.ErrRateFetch, errors.New("boom"))

	upstream.On("FetchLatest", ctx, domain.USD).Return(nil, fetchErr).Once()

	src := rediscache.NewCachedRateSource(upstream, rediscache.NewRateCache(client), time.Minute, nil)
	_, err := src.FetchLatest(ctx, domain.USD)

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
	assert.False(t, mr.Exists("takehome:rates:latest:USD"))
}

func TestCachedRateSource_CacheDownFallsThrough(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	upstream := new(MockRateSource)
	ctx := context.Background()
	rates := map[string]float64{"EUR": 0.93}
	upstream.On("FetchLatest", ctx, domain.USD).Return(rates, nil).Once()

	src := rediscache.NewCachedRateSource(upstream, rediscache.NewRateCache(client), time.Minute, nil)
	got, err := src.FetchLatest(ctx, domain.USD)

	require.NoError(t, err)
	assert.Equal(t, rates, got)
	upstream.AssertExpectations(t)
}
