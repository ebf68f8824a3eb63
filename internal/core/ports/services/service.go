package services

// ServiceContainer holds instances of all the application services.
// Handlers and CLI commands reach services only through it.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Calculator   CalculatorSvcFacade
	Profile      ProfileSvcFacade
}
