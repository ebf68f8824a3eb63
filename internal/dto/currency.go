package dto

import (
	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	FallbackRate decimal.Decimal `json:"fallbackRate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: string(curr.Code),
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		FallbackRate: curr.FallbackRate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
