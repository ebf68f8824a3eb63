package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	portsrepo "github.com/SscSPs/takehome_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// FallbackErrorMessage is reported in the snapshot while the static rates are in use.
const FallbackErrorMessage = "Using fallback rates"

const (
	DefaultRefreshInterval = 30 * time.Minute
	DefaultFetchTimeout    = 10 * time.Second
)

const refreshKey = "latest"

// exchangeRateService keeps the process-wide rate snapshot. Readers never
// block on a fetch; the snapshot pointer is swapped as a whole.
type exchangeRateService struct {
	source          portsrepo.RateSource
	refreshInterval time.Duration
	fetchTimeout    time.Duration
	logger          *slog.Logger
	now             func() time.Time

	snapshot atomic.Pointer[domain.RateSnapshot]
	group    singleflight.Group
	stopped  atomic.Bool
}

// ExchangeRateOption configures the exchange rate service.
type ExchangeRateOption func(*exchangeRateService)

// WithRefreshInterval sets the period between background refreshes.
func WithRefreshInterval(d time.Duration) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithFetchTimeout bounds each fetch from the rate source.
func WithFetchTimeout(d time.Duration) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithRateLogger sets the logger used by background refreshes.
func WithRateLogger(logger *slog.Logger) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for LastUpdated.
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewExchangeRateService creates the exchange rate provider. It starts with
// the static fallback table and Loading set until the first refresh finishes.
func NewExchangeRateService(source portsrepo.RateSource, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		source:          source,
		refreshInterval: DefaultRefreshInterval,
		fetchTimeout:    DefaultFetchTimeout,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	svc.snapshot.Store(&domain.RateSnapshot{
		Base:    domain.BaseCurrency,
		Rates:   domain.FallbackRates(),
		Loading: true,
	})
	return svc
}

// Snapshot returns the current rate state. The rate table is a copy, so
// callers may modify it without affecting the provider.
func (s *exchangeRateService) Snapshot() domain.RateSnapshot {
	snap := *s.snapshot.Load()
	snap.Rates = snap.Rates.Clone()
	return snap
}

func (s *exchangeRateService) GetConversionRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	from, ok := domain.ParseCurrencyCode(fromCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, fromCode)
	}
	to, ok := domain.ParseCurrencyCode(toCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, toCode)
	}
	return s.Snapshot().Rates.ConversionRate(from, to), nil
}

// Refresh fetches the latest rates once. Concurrent callers share a single
// in-flight fetch. Once the service is stopped, or ctx is already done, the
// current snapshot is returned untouched.
func (s *exchangeRateService) Refresh(ctx context.Context) domain.RateSnapshot {
	if s.stopped.Load() || ctx.Err() != nil {
		return s.Snapshot()
	}
	v, _, _ := s.group.Do(refreshKey, func() (any, error) {
		return s.fetch(ctx), nil
	})
	return v.(domain.RateSnapshot)
}

// Run refreshes immediately and then every refresh interval until ctx is done.
func (s *exchangeRateService) Run(ctx context.Context) {
	defer s.stopped.Store(true)

	s.Refresh(ctx)

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Exchange rate refresher stopped")
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *exchangeRateService) fetch(ctx context.Context) domain.RateSnapshot {
	current := s.Snapshot()
	if !current.Loading {
		loading := current
		loading.Loading = true
		loading.Error = ""
		s.snapshot.Store(&loading)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.source.FetchLatest(fetchCtx, domain.BaseCurrency)
	metrics.RateRefreshDuration.Observe(time.Since(start).Seconds())

	// Shutdown or an abandoned caller: leave the table as it was.
	if s.stopped.Load() || ctx.Err() != nil {
		current.Loading = false
		s.snapshot.Store(&current)
		return current
	}

	next := domain.RateSnapshot{
		Base:        domain.BaseCurrency,
		LastUpdated: current.LastUpdated,
	}
	if err != nil {
		s.logger.Warn("Failed to fetch exchange rates, using fallback rates", slog.String("error", err.Error()))
		metrics.RateRefreshes.WithLabelValues(metrics.OutcomeFallback).Inc()
		next.Rates = domain.FallbackRates()
		next.Error = FallbackErrorMessage
	} else {
		updated := s.now()
		next.Rates = mergeRates(raw)
		next.LastUpdated = &updated
		metrics.RateRefreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
		metrics.RateSnapshotAge.Set(float64(updated.Unix()))
		s.logger.Debug("Exchange rates refreshed", slog.Int("fetched_codes", len(raw)))
	}
	s.snapshot.Store(&next)
	return next
}

// mergeRates takes every supported code's fetched rate when it is finite and
// positive, otherwise its fallback rate. Codes outside the table are ignored.
func mergeRates(raw map[string]float64) domain.RateTable {
	rates := domain.FallbackRates()
	for code := range rates {
		v, ok := raw[string(code)]
		if !ok || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rates[code] = decimal.NewFromFloat(v)
	}
	return rates
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
