package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/cli"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/utils/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCalculation(t *testing.T) {
	resp := &dto.CalculateResponse{
		InputCurrency:  "USD",
		OutputCurrency: "USD",
		ExchangeLabel:  "1 USD = 1.0000 USD",
		Result:         domain.CalculationResult{IsValid: true},
		Display: dto.CalculationDisplay{
			GrossIncome: "$2,000.00",
			FeeAmount:   "$400.00",
			TaxAmount:   "$400.00",
			NetPay:      "$1,200.00",
		},
		Warnings: []dto.FieldWarning{{Field: "hoursWorked", Message: "Maximum 744 hours per month"}},
		Rates:    dto.RateStatus{Error: "Using fallback rates"},
	}

	var buf bytes.Buffer
	require.NoError(t, cli.WriteCalculation(&buf, resp, cli.NewPalette(false)))

	out := buf.String()
	assert.Contains(t, out, "Take-home pay")
	assert.Contains(t, out, "$1,200.00")
	assert.Contains(t, out, "1 USD = 1.0000 USD")
	assert.Contains(t, out, "Using fallback rates")
	assert.Contains(t, out, "warning hoursWorked: Maximum 744 hours per month")
	assert.NotContains(t, out, "Enter a value")
}

func TestWriteCalculation_Invalid(t *testing.T) {
	resp := &dto.CalculateResponse{
		OutputCurrency: "EUR",
		Result:         domain.InvalidResult(),
		Display:        dto.ToCalculationDisplay(domain.InvalidResult(), domain.EUR),
	}

	var buf bytes.Buffer
	require.NoError(t, cli.WriteCalculation(&buf, resp, cli.Palette{}))

	assert.Contains(t, buf.String(), dto.PlaceholderAmount)
	assert.Contains(t, buf.String(), "Enter a value for every field")
	assert.Contains(t, buf.String(), "Using built-in rates")
}

func TestWriteCompletion(t *testing.T) {
	report := completion.ScoreProfile(&domain.Profile{PersonalInfo: &domain.PersonalInfo{FirstName: "Alex"}})
	reported := 50
	resp := &dto.ProfileCompletionResponse{
		Percentage:         report.Percentage,
		Status:             report.Status,
		StatusMessage:      completion.StatusMessage(report.Status),
		Requirements:       report.Requirements,
		ReportedCompletion: &reported,
		Drift:              true,
	}

	var buf bytes.Buffer
	require.NoError(t, cli.WriteCompletion(&buf, resp, cli.NewPalette(false)))

	out := buf.String()
	assert.Contains(t, out, "Profile completion: 10% [BLOCKED] Complete 80% to unlock proposal generation.")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "drift backend reports 50%, computed 10%")
}

func TestWriteRates(t *testing.T) {
	updated := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	snapshot := domain.RateSnapshot{Base: domain.USD, Rates: domain.FallbackRates(), LastUpdated: &updated}

	var buf bytes.Buffer
	require.NoError(t, cli.WriteRates(&buf, dto.ToExchangeRatesResponse(snapshot), cli.NewPalette(false)))

	out := buf.String()
	assert.Contains(t, out, "Indian Rupee")
	assert.Contains(t, out, "83.5000")
	assert.Contains(t, out, "Live rates updated 2025-01-15 12:00:00 UTC")
	assert.Less(t, strings.Index(out, "AED"), strings.Index(out, "ZAR"))
}

func TestPalette_StatusLabel(t *testing.T) {
	p := cli.NewPalette(false)
	assert.Equal(t, "COMPLETE", p.StatusLabel(domain.CompletionComplete))
	assert.Equal(t, "READY", p.StatusLabel(domain.CompletionReady))
	assert.Equal(t, "BLOCKED", p.StatusLabel(domain.CompletionBlocked))
}

func TestReadProfile(t *testing.T) {
	profile, err := cli.ReadProfile(strings.NewReader(`{
		"personalInfo": {"firstName": "Alex"},
		"professionalInfo": {"skills": ["Go"], "profileCompletion": 40, "extra": true}
	}`))
	require.NoError(t, err)
	require.NotNil(t, profile.ProfessionalInfo)
	assert.Equal(t, "Alex", profile.PersonalInfo.FirstName)
	assert.Equal(t, []string{"Go"}, profile.ProfessionalInfo.Skills)
	require.NotNil(t, profile.ProfessionalInfo.ProfileCompletion)
	assert.Equal(t, 40, *profile.ProfessionalInfo.ProfileCompletion)
}

func TestReadProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"personalInfo":`},
		{name: "skills not strings", body: `{"professionalInfo": {"skills": [1, 2]}}`},
		{name: "completion out of range", body: `{"professionalInfo": {"profileCompletion": 140}}`},
		{name: "top level array", body: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ReadProfile(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
