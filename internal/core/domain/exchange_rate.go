package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable maps a currency code to units of that currency per 1 BaseCurrency.
// Tables are replaced wholesale, never mutated after construction.
type RateTable map[CurrencyCode]decimal.Decimal

var one = decimal.NewFromInt(1)

// Rate resolves code to its rate. Codes that are absent or carry a
// non-positive rate resolve to 1.
func (t RateTable) Rate(code CurrencyCode) decimal.Decimal {
	if code == BaseCurrency {
		return one
	}
	r, ok := t[code]
	if !ok || !r.IsPositive() {
		return one
	}
	return r
}

// ConversionRate is the multiplier turning an amount in from into an amount in to.
func (t RateTable) ConversionRate(from, to CurrencyCode) decimal.Decimal {
	if from == to {
		return one
	}
	return t.Rate(to).Div(t.Rate(from))
}

// Convert converts amount from one currency to another using this table.
func (t RateTable) Convert(amount decimal.Decimal, from, to CurrencyCode) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Mul(t.Rate(to)).Div(t.Rate(from))
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Equal reports whether both tables hold the same codes with equal rates.
func (t RateTable) Equal(other RateTable) bool {
	if len(t) != len(other) {
		return false
	}
	for k, v := range t {
		o, ok := other[k]
		if !ok || !o.Equal(v) {
			return false
		}
	}
	return true
}

// RateSnapshot is the consumer view of the exchange rate provider state.
type RateSnapshot struct {
	Base        CurrencyCode `json:"base"`
	Rates       RateTable    `json:"rates"`
	Loading     bool         `json:"loading"`
	Error       string       `json:"error,omitempty"`
	LastUpdated *time.Time   `json:"lastUpdated,omitempty"`
}

// UsingFallback reports whether the snapshot carries the static rates because
// the last fetch failed.
func (s RateSnapshot) UsingFallback() bool {
	return s.Error != ""
}
