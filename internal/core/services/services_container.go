package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/takehome_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, source portsrepo.RateSource, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()

	// The calculator reads from the exchange rate provider, so it comes first
	container.ExchangeRate = NewExchangeRateService(
		source,
		WithRefreshInterval(cfg.RatesRefreshInterval),
		WithFetchTimeout(cfg.RatesFetchTimeout),
		WithRateLogger(logger),
	)
	container.Calculator = NewCalculatorService(container.ExchangeRate)
	container.Profile = NewProfileService()

	return container
}
