package earnings

import (
	"math"

	"github.com/SscSPs/takehome_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateTakeHomePay computes gross income, platform fee, tax and net pay.
//
//	gross   = hourlyRate × hoursWorked
//	fee     = gross × feePercent/100
//	tax     = (gross − fee) × taxPercent/100
//	net     = gross − fee − tax
//
// Tax is levied on post-fee income. Each amount is rounded to 2 decimals
// (half away from zero) on its own; intermediate values are exact. Any
// non-finite or negative input yields domain.InvalidResult. Percentages above
// 100 are accepted and computed as given.
func CalculateTakeHomePay(in domain.CalculationInput) domain.CalculationResult {
	for _, v := range []float64{in.HourlyRate, in.HoursWorked, in.PlatformFeePercent, in.TaxPercent} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return domain.InvalidResult()
		}
	}

	rate := decimal.NewFromFloat(in.HourlyRate)
	hours := decimal.NewFromFloat(in.HoursWorked)
	feePct := decimal.NewFromFloat(in.PlatformFeePercent).Shift(-2)
	taxPct := decimal.NewFromFloat(in.TaxPercent).Shift(-2)

	gross := rate.Mul(hours)
	fee := gross.Mul(feePct)
	taxable := gross.Sub(fee)
	tax := taxable.Mul(taxPct)
	net := gross.Sub(fee).Sub(tax)

	return domain.CalculationResult{
		GrossIncome: gross.Round(2),
		FeeAmount:   fee.Round(2),
		TaxAmount:   tax.Round(2),
		NetPay:      net.Round(2),
		IsValid:     true,
	}
}
