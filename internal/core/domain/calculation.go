package domain

import "github.com/shopspring/decimal"

// CalculationInput holds the four quantities of a take-home pay calculation,
// all expressed in BaseCurrency. Percentages are whole-number percents (20 means 20%).
type CalculationInput struct {
	HourlyRate         float64 `json:"hourlyRate"`
	HoursWorked        float64 `json:"hoursWorked"`
	PlatformFeePercent float64 `json:"platformFeePercent"`
	TaxPercent         float64 `json:"taxPercent"`
}

// CalculationResult is the outcome of a calculation. When IsValid is false all
// amounts are zero.
type CalculationResult struct {
	GrossIncome decimal.Decimal `json:"grossIncome"`
	FeeAmount   decimal.Decimal `json:"feeAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	NetPay      decimal.Decimal `json:"netPay"`
	IsValid     bool            `json:"isValid"`
}

// InvalidResult is the all-zero sentinel returned for unusable input.
func InvalidResult() CalculationResult {
	return CalculationResult{
		GrossIncome: decimal.Zero,
		FeeAmount:   decimal.Zero,
		TaxAmount:   decimal.Zero,
		NetPay:      decimal.Zero,
		IsValid:     false,
	}
}

// Convert returns the result with every amount converted with rates and
// rounded to 2 decimals. Invalid results are returned unchanged.
func (r CalculationResult) Convert(rates RateTable, from, to CurrencyCode) CalculationResult {
	if !r.IsValid {
		return r
	}
	conv := func(d decimal.Decimal) decimal.Decimal {
		return rates.Convert(d, from, to).Round(2)
	}
	return CalculationResult{
		GrossIncome: conv(r.GrossIncome),
		FeeAmount:   conv(r.FeeAmount),
		TaxAmount:   conv(r.TaxAmount),
		NetPay:      conv(r.NetPay),
		IsValid:     true,
	}
}
