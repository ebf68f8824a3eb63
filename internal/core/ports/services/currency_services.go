package services

import (
	"context"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for the currency table
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a supported currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// Snapshot returns the current best-known rate snapshot.
	Snapshot() domain.RateSnapshot

	// GetConversionRate returns the multiplier converting fromCode amounts into toCode.
	GetConversionRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateRefresherSvc defines refresh operations for exchange rate data
type ExchangeRateRefresherSvc interface {
	// Refresh fetches live rates once and returns the resulting snapshot.
	Refresh(ctx context.Context) domain.RateSnapshot

	// Run refreshes immediately and then periodically until ctx is done.
	Run(ctx context.Context)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}
