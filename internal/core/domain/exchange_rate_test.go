package domain_test

import (
	"testing"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateTable_Rate(t *testing.T) {
	rates := domain.RateTable{
		domain.EUR: decimal.RequireFromString("0.9"),
		domain.JPY: decimal.Zero,
		domain.USD: decimal.RequireFromString("2"),
	}

	assert.True(t, rates.Rate(domain.EUR).Equal(decimal.RequireFromString("0.9")))
	assert.True(t, rates.Rate(domain.GBP).Equal(decimal.NewFromInt(1)), "absent code")
	assert.True(t, rates.Rate(domain.JPY).Equal(decimal.NewFromInt(1)), "non-positive rate")
	assert.True(t, rates.Rate(domain.CurrencyCode("???")).Equal(decimal.NewFromInt(1)), "unknown code")
	assert.True(t, rates.Rate(domain.BaseCurrency).Equal(decimal.NewFromInt(1)), "base is always 1")

	var empty domain.RateTable
	assert.True(t, empty.Rate(domain.EUR).Equal(decimal.NewFromInt(1)))
}

func TestRateTable_ConvertRoundTrip(t *testing.T) {
	rates := domain.FallbackRates()
	tolerance := decimal.RequireFromString("0.000001")
	amounts := []string{"0", "1", "1200", "0.01", "98765.4321"}

	for _, from := range domain.Currencies() {
		for _, to := range []domain.CurrencyCode{domain.USD, domain.EUR, domain.JPY, domain.VND, domain.KES} {
			for _, a := range amounts {
				amount := decimal.RequireFromString(a)
				back := rates.Convert(rates.Convert(amount, from.Code, to), to, from.Code)
				assert.True(t, back.Sub(amount).Abs().LessThanOrEqual(tolerance), "%s %s->%s->%s = %s", a, from.Code, to, from.Code, back)
			}
		}
	}
}

func TestRateTable_Convert(t *testing.T) {
	rates := domain.FallbackRates()

	assert.True(t, rates.Convert(decimal.NewFromInt(100), domain.USD, domain.EUR).Equal(decimal.NewFromInt(92)))
	assert.True(t, rates.Convert(decimal.NewFromInt(92), domain.EUR, domain.USD).Equal(decimal.NewFromInt(100)))
	assert.True(t, rates.Convert(decimal.NewFromInt(7), domain.USD, domain.USD).Equal(decimal.NewFromInt(7)))
	assert.True(t, rates.ConversionRate(domain.USD, domain.USD).Equal(decimal.NewFromInt(1)))
	assert.True(t, rates.ConversionRate(domain.USD, domain.JPY).Equal(decimal.RequireFromString("149.5")))
}

func TestFallbackRates(t *testing.T) {
	rates := domain.FallbackRates()
	assert.Len(t, rates, len(domain.Currencies()))
	assert.True(t, rates.Equal(domain.FallbackRates()))

	clone := rates.Clone()
	clone[domain.EUR] = decimal.NewFromInt(5)
	assert.False(t, rates.Equal(clone))
	assert.True(t, rates.Rate(domain.EUR).Equal(decimal.RequireFromString("0.92")))
}

func TestCalculationResult_Convert(t *testing.T) {
	rates := domain.FallbackRates()
	res := domain.CalculationResult{
		GrossIncome: decimal.NewFromInt(2000),
		FeeAmount:   decimal.NewFromInt(400),
		TaxAmount:   decimal.NewFromInt(400),
		NetPay:      decimal.NewFromInt(1200),
		IsValid:     true,
	}

	eur := res.Convert(rates, domain.USD, domain.EUR)
	assert.True(t, eur.GrossIncome.Equal(decimal.NewFromInt(1840)))
	assert.True(t, eur.NetPay.Equal(decimal.NewFromInt(1104)))

	invalid := domain.InvalidResult().Convert(rates, domain.USD, domain.EUR)
	assert.False(t, invalid.IsValid)
	assert.True(t, invalid.NetPay.IsZero())
}
