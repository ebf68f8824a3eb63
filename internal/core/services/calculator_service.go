package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/platform/metrics"
	"github.com/SscSPs/takehome_app/internal/utils/earnings"
)

type calculatorService struct {
	BaseService
	rates portssvc.ExchangeRateReaderSvc
}

// NewCalculatorService creates a calculator that prices results with the
// current snapshot of rates.
func NewCalculatorService(rates portssvc.ExchangeRateReaderSvc) portssvc.CalculatorSvcFacade {
	return &calculatorService{rates: rates}
}

// Calculate runs one calculation session. The hourly rate is entered in the
// input currency, converted to the base currency for the calculation, and the
// amounts are reported in the output currency. Unparsable inputs yield an
// invalid result rather than an error; only unsupported currencies fail.
func (s *calculatorService) Calculate(ctx context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, error) {
	inputCode, err := resolveCurrency(req.InputCurrency)
	if err != nil {
		return nil, err
	}
	outputCode, err := resolveCurrency(req.OutputCurrency)
	if err != nil {
		return nil, err
	}

	snapshot := s.rates.Snapshot()

	rate := earnings.ParseNumericInput(req.HourlyRate)
	hours := earnings.ParseNumericInput(req.HoursWorked)
	fee := earnings.ParseNumericInput(req.PlatformFee)
	tax := earnings.ParseNumericInput(req.Tax)

	base := domain.InvalidResult()
	if rate != nil && hours != nil && fee != nil && tax != nil {
		inputRate := snapshot.Rates.Rate(inputCode).InexactFloat64()
		base = earnings.CalculateTakeHomePay(domain.CalculationInput{
			HourlyRate:         *rate / inputRate,
			HoursWorked:        *hours,
			PlatformFeePercent: *fee,
			TaxPercent:         *tax,
		})
	}
	result := base.Convert(snapshot.Rates, domain.BaseCurrency, outputCode)

	var warnings []dto.FieldWarning
	for _, w := range earnings.ValidateInputs(map[earnings.Field]*float64{
		earnings.FieldHourlyRate:  rate,
		earnings.FieldHoursWorked: hours,
		earnings.FieldPlatformFee: fee,
		earnings.FieldTax:         tax,
	}) {
		warnings = append(warnings, dto.FieldWarning{Field: string(w.Field), Message: w.Message})
	}

	exchangeRate := snapshot.Rates.ConversionRate(inputCode, outputCode)

	metrics.Calculations.WithLabelValues(strconv.FormatBool(result.IsValid), string(outputCode)).Inc()
	s.LogDebug(ctx, "Calculated take-home pay",
		slog.String("input_currency", string(inputCode)),
		slog.String("output_currency", string(outputCode)),
		slog.Bool("valid", result.IsValid),
		slog.Int("warnings", len(warnings)),
		slog.Bool("fallback_rates", snapshot.UsingFallback()),
	)

	return &dto.CalculateResponse{
		InputCurrency:  string(inputCode),
		OutputCurrency: string(outputCode),
		ExchangeRate:   exchangeRate,
		ExchangeLabel:  dto.ConversionLabel(inputCode, outputCode, exchangeRate),
		Result:         result,
		BaseResult:     base,
		Display:        dto.ToCalculationDisplay(result, outputCode),
		Warnings:       warnings,
		Rates:          dto.ToRateStatus(snapshot),
	}, nil
}

// resolveCurrency maps an optional code to a supported currency, defaulting
// to the base currency.
func resolveCurrency(raw string) (domain.CurrencyCode, error) {
	if raw == "" {
		return domain.BaseCurrency, nil
	}
	code, ok := domain.ParseCurrencyCode(raw)
	if !ok {
		return "", fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, raw)
	}
	return code, nil
}

var _ portssvc.CalculatorSvcFacade = (*calculatorService)(nil)
