package dto

import (
	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateRequest carries the raw text of the calculator form. Empty or
// malformed numbers are allowed and produce an invalid result, not an error.
type CalculateRequest struct {
	HourlyRate     string `json:"hourlyRate"`
	HoursWorked    string `json:"hoursWorked"`
	PlatformFee    string `json:"platformFee"`
	Tax            string `json:"tax"`
	InputCurrency  string `json:"inputCurrency" binding:"omitempty,len=3"`  // defaults to the base currency
	OutputCurrency string `json:"outputCurrency" binding:"omitempty,len=3"` // defaults to the base currency
}

// FieldWarning reports an input that is outside the form's advisory bounds.
type FieldWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CalculationDisplay holds formatted amounts; "—" stands in for invalid results.
type CalculationDisplay struct {
	GrossIncome string `json:"grossIncome"`
	FeeAmount   string `json:"feeAmount"`
	TaxAmount   string `json:"taxAmount"`
	NetPay      string `json:"netPay"`
}

// CalculateResponse is the outcome of a calculation session.
type CalculateResponse struct {
	InputCurrency  string                   `json:"inputCurrency"`
	OutputCurrency string                   `json:"outputCurrency"`
	ExchangeRate   decimal.Decimal          `json:"exchangeRate"`
	ExchangeLabel  string                   `json:"exchangeLabel"`
	Result         domain.CalculationResult `json:"result"`     // in OutputCurrency
	BaseResult     domain.CalculationResult `json:"baseResult"` // in the base currency
	Display        CalculationDisplay       `json:"display"`
	Warnings       []FieldWarning           `json:"warnings,omitempty"`
	Rates          RateStatus               `json:"rates"`
}

// PlaceholderAmount is displayed instead of an amount when the result is invalid.
const PlaceholderAmount = "—"

// ToCalculationDisplay formats r in currency code.
func ToCalculationDisplay(r domain.CalculationResult, code domain.CurrencyCode) CalculationDisplay {
	if !r.IsValid {
		return CalculationDisplay{
			GrossIncome: PlaceholderAmount,
			FeeAmount:   PlaceholderAmount,
			TaxAmount:   PlaceholderAmount,
			NetPay:      PlaceholderAmount,
		}
	}
	return CalculationDisplay{
		GrossIncome: domain.FormatAmount(r.GrossIncome, code),
		FeeAmount:   domain.FormatAmount(r.FeeAmount, code),
		TaxAmount:   domain.FormatAmount(r.TaxAmount, code),
		NetPay:      domain.FormatAmount(r.NetPay, code),
	}
}
