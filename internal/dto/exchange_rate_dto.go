package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateStatus carries the freshness metadata of the rate snapshot used for a response.
type RateStatus struct {
	Loading     bool       `json:"loading"`
	Error       string     `json:"error,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// ExchangeRatesResponse defines the API response for the current rate snapshot.
type ExchangeRatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
	RateStatus
}

// ConversionRateResponse defines the API response for a currency pair.
type ConversionRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Label            string          `json:"label"`
}

// ToRateStatus extracts the freshness metadata from a snapshot.
func ToRateStatus(s domain.RateSnapshot) RateStatus {
	return RateStatus{Loading: s.Loading, Error: s.Error, LastUpdated: s.LastUpdated}
}

// ToExchangeRatesResponse converts a domain.RateSnapshot to its API form.
func ToExchangeRatesResponse(s domain.RateSnapshot) ExchangeRatesResponse {
	rates := make(map[string]decimal.Decimal, len(s.Rates))
	for code, r := range s.Rates {
		rates[string(code)] = r
	}
	return ExchangeRatesResponse{
		Base:       string(s.Base),
		Rates:      rates,
		RateStatus: ToRateStatus(s),
	}
}

// ConversionLabel renders "1 FROM = x.xxxx TO".
func ConversionLabel(from, to domain.CurrencyCode, rate decimal.Decimal) string {
	return fmt.Sprintf("1 %s = %s %s", from, rate.StringFixed(4), to)
}

// ToConversionRateResponse builds the response for a currency pair.
func ToConversionRateResponse(from, to domain.CurrencyCode, rate decimal.Decimal) ConversionRateResponse {
	return ConversionRateResponse{
		FromCurrencyCode: string(from),
		ToCurrencyCode:   string(to),
		Rate:             rate,
		Label:            ConversionLabel(from, to, rate),
	}
}
