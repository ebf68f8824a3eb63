package earnings_test

import (
	"strconv"
	"testing"

	"github.com/SscSPs/takehome_app/internal/utils/earnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "  \t ", want: nil},
		{name: "garbage", input: "abc", want: nil},
		{name: "trailing garbage", input: "12abc", want: ptr(12)},
		{name: "percent suffix", input: "20%", want: ptr(20)},
		{name: "unit suffix", input: "50/hr", want: ptr(50)},
		{name: "thousands separator stops the number", input: "1,000", want: ptr(1)},
		{name: "hex reads the leading zero", input: "0x10", want: ptr(0)},
		{name: "bare fraction", input: ".5", want: ptr(0.5)},
		{name: "trailing dot", input: "5.", want: ptr(5)},
		{name: "dangling exponent", input: "3e", want: ptr(3)},
		{name: "negative with suffix clamps", input: "-7kg", want: ptr(0)},
		{name: "sign only", input: "-", want: nil},
		{name: "dot only", input: ".", want: nil},
		{name: "leading garbage", input: "$20", want: nil},
		{name: "infinity", input: "Inf", want: nil},
		{name: "nan", input: "NaN", want: nil},
		{name: "overflow", input: "1e400", want: nil},
		{name: "integer", input: "50", want: ptr(50)},
		{name: "decimal with spaces", input: "  42.75 ", want: ptr(42.75)},
		{name: "zero", input: "0", want: ptr(0)},
		{name: "negative clamps to zero", input: "-12.5", want: ptr(0)},
		{name: "negative zero", input: "-0", want: ptr(0)},
		{name: "exponent", input: "1.5e2", want: ptr(150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := earnings.ParseNumericInput(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseNumericInput_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "0.1", "19.99", "123456.789", "3.3333333333333335", "1e-7", "744"} {
		first := earnings.ParseNumericInput(s)
		require.NotNil(t, first, s)

		second := earnings.ParseNumericInput(strconv.FormatFloat(*first, 'g', -1, 64))
		require.NotNil(t, second, s)
		assert.Equal(t, *first, *second, s)
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		field earnings.Field
		value float64
		want  string
	}{
		{earnings.FieldHourlyRate, 50, ""},
		{earnings.FieldHourlyRate, 10000, ""},
		{earnings.FieldHourlyRate, 10000.01, "Hourly rate seems too high"},
		{earnings.FieldHoursWorked, 744, ""},
		{earnings.FieldHoursWorked, 745, "Maximum 744 hours per month"},
		{earnings.FieldPlatformFee, 100, ""},
		{earnings.FieldPlatformFee, 101, "Platform fee cannot exceed 100%"},
		{earnings.FieldTax, -1, "Tax must be positive"},
		{earnings.FieldTax, 150, "Tax cannot exceed 100%"},
		{earnings.Field("bogus"), 1, "Invalid value"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.want, earnings.ValidateField(tt.field, tt.value))
		})
	}
}

func TestValidateInputs(t *testing.T) {
	warnings := earnings.ValidateInputs(map[earnings.Field]*float64{
		earnings.FieldHourlyRate:  ptr(20000),
		earnings.FieldHoursWorked: nil,
		earnings.FieldPlatformFee: ptr(20),
		earnings.FieldTax:         ptr(120),
	})

	require.Len(t, warnings, 2)
	assert.Equal(t, earnings.FieldHourlyRate, warnings[0].Field)
	assert.Equal(t, earnings.FieldTax, warnings[1].Field)
}

func ptr(v float64) *float64 {
	return &v
}
