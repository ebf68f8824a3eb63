package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
)

type currencyService struct{}

// NewCurrencyService creates a service over the fixed currency table.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	if strings.TrimSpace(currencyCode) == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	code, ok := domain.ParseCurrencyCode(currencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: currency code '%s' is not supported", apperrors.ErrNotFound, currencyCode)
	}
	currency, ok := domain.LookupCurrency(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency code '%s' is not supported", apperrors.ErrNotFound, currencyCode)
	}
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.Currencies(), nil
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)
