package earnings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Field identifies one of the calculator inputs.
type Field string

const (
	FieldHourlyRate  Field = "hourlyRate"
	FieldHoursWorked Field = "hoursWorked"
	FieldPlatformFee Field = "platformFee"
	FieldTax         Field = "tax"
)

// MaxHoursPerMonth is the number of hours in a 31-day month.
const MaxHoursPerMonth = 744

type fieldBounds struct {
	tag      string
	minError string
	maxError string
}

var bounds = map[Field]fieldBounds{
	FieldHourlyRate:  {tag: "min=0,max=10000", minError: "Hourly rate must be positive", maxError: "Hourly rate seems too high"},
	FieldHoursWorked: {tag: fmt.Sprintf("min=0,max=%d", MaxHoursPerMonth), minError: "Hours worked must be positive", maxError: "Maximum 744 hours per month"},
	FieldPlatformFee: {tag: "min=0,max=100", minError: "Platform fee must be positive", maxError: "Platform fee cannot exceed 100%"},
	FieldTax:         {tag: "min=0,max=100", minError: "Tax must be positive", maxError: "Tax cannot exceed 100%"},
}

var validate = validator.New()

// ValidateField checks value against the form bounds of field and returns a
// user-facing message, or "" when the value is acceptable. Bounds are advisory:
// the calculator itself accepts any finite non-negative input.
func ValidateField(field Field, value float64) string {
	b, ok := bounds[field]
	if !ok {
		return "Invalid value"
	}

	err := validate.Var(value, b.tag)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "min":
			return b.minError
		case "max":
			return b.maxError
		}
	}
	return "Invalid value"
}

// FieldWarning pairs a field with the message produced by ValidateField.
type FieldWarning struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidateInputs runs ValidateField over every parsed input; nil values are skipped.
func ValidateInputs(values map[Field]*float64) []FieldWarning {
	var warnings []FieldWarning
	for _, f := range []Field{FieldHourlyRate, FieldHoursWorked, FieldPlatformFee, FieldTax} {
		v := values[f]
		if v == nil {
			continue
		}
		if msg := ValidateField(f, *v); msg != "" {
			warnings = append(warnings, FieldWarning{Field: f, Message: msg})
		}
	}
	return warnings
}
