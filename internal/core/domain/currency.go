package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is a 3-letter code from the closed set of supported currencies.
type CurrencyCode string

const (
	AED CurrencyCode = "AED"
	ARS CurrencyCode = "ARS"
	AUD CurrencyCode = "AUD"
	BDT CurrencyCode = "BDT"
	BRL CurrencyCode = "BRL"
	CAD CurrencyCode = "CAD"
	CHF CurrencyCode = "CHF"
	CLP CurrencyCode = "CLP"
	CNY CurrencyCode = "CNY"
	COP CurrencyCode = "COP"
	CZK CurrencyCode = "CZK"
	DKK CurrencyCode = "DKK"
	EGP CurrencyCode = "EGP"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	HKD CurrencyCode = "HKD"
	HUF CurrencyCode = "HUF"
	IDR CurrencyCode = "IDR"
	INR CurrencyCode = "INR"
	JPY CurrencyCode = "JPY"
	KES CurrencyCode = "KES"
	KRW CurrencyCode = "KRW"
	MXN CurrencyCode = "MXN"
	MYR CurrencyCode = "MYR"
	NGN CurrencyCode = "NGN"
	NOK CurrencyCode = "NOK"
	NZD CurrencyCode = "NZD"
	PHP CurrencyCode = "PHP"
	PKR CurrencyCode = "PKR"
	PLN CurrencyCode = "PLN"
	RUB CurrencyCode = "RUB"
	SAR CurrencyCode = "SAR"
	SEK CurrencyCode = "SEK"
	SGD CurrencyCode = "SGD"
	THB CurrencyCode = "THB"
	TRY CurrencyCode = "TRY"
	USD CurrencyCode = "USD"
	VND CurrencyCode = "VND"
	ZAR CurrencyCode = "ZAR"
)

// BaseCurrency is the unit every rate is expressed against.
const BaseCurrency = USD

// Currency describes a supported currency.
type Currency struct {
	Code         CurrencyCode    `json:"code"`
	Symbol       string          `json:"symbol"` // not unique, several currencies use "$"
	Name         string          `json:"name"`
	FallbackRate decimal.Decimal `json:"fallbackRate"` // units per 1 BaseCurrency
}

func currency(code CurrencyCode, symbol, name, rate string) Currency {
	return Currency{Code: code, Symbol: symbol, Name: name, FallbackRate: decimal.RequireFromString(rate)}
}

// currencies is sorted A-Z by code.
var currencies = []Currency{
	currency(AED, "د.إ", "UAE Dirham", "3.67"),
	currency(ARS, "$", "Argentine Peso", "815"),
	currency(AUD, "A$", "Australian Dollar", "1.53"),
	currency(BDT, "৳", "Bangladeshi Taka", "110"),
	currency(BRL, "R$", "Brazilian Real", "4.95"),
	currency(CAD, "C$", "Canadian Dollar", "1.36"),
	currency(CHF, "Fr", "Swiss Franc", "0.88"),
	currency(CLP, "$", "Chilean Peso", "890"),
	currency(CNY, "¥", "Chinese Yuan", "7.24"),
	currency(COP, "$", "Colombian Peso", "3950"),
	currency(CZK, "Kč", "Czech Koruna", "22.8"),
	currency(DKK, "kr", "Danish Krone", "6.88"),
	currency(EGP, "£", "Egyptian Pound", "30.9"),
	currency(EUR, "€", "Euro", "0.92"),
	currency(GBP, "£", "British Pound", "0.79"),
	currency(HKD, "HK$", "Hong Kong Dollar", "7.82"),
	currency(HUF, "Ft", "Hungarian Forint", "355"),
	currency(IDR, "Rp", "Indonesian Rupiah", "15700"),
	currency(INR, "₹", "Indian Rupee", "83.5"),
	currency(JPY, "¥", "Japanese Yen", "149.5"),
	currency(KES, "KSh", "Kenyan Shilling", "153"),
	currency(KRW, "₩", "South Korean Won", "1320"),
	currency(MXN, "$", "Mexican Peso", "17.2"),
	currency(MYR, "RM", "Malaysian Ringgit", "4.72"),
	currency(NGN, "₦", "Nigerian Naira", "790"),
	currency(NOK, "kr", "Norwegian Krone", "10.7"),
	currency(NZD, "NZ$", "New Zealand Dollar", "1.64"),
	currency(PHP, "₱", "Philippine Peso", "55.8"),
	currency(PKR, "Rs", "Pakistani Rupee", "278"),
	currency(PLN, "zł", "Polish Zloty", "3.98"),
	currency(RUB, "₽", "Russian Ruble", "92"),
	currency(SAR, "﷼", "Saudi Riyal", "3.75"),
	currency(SEK, "kr", "Swedish Krona", "10.4"),
	currency(SGD, "S$", "Singapore Dollar", "1.34"),
	currency(THB, "฿", "Thai Baht", "35.2"),
	currency(TRY, "₺", "Turkish Lira", "29.5"),
	currency(USD, "$", "US Dollar", "1"),
	currency(VND, "₫", "Vietnamese Dong", "24500"),
	currency(ZAR, "R", "South African Rand", "18.5"),
}

var currencyIndex = func() map[CurrencyCode]int {
	idx := make(map[CurrencyCode]int, len(currencies))
	for i, c := range currencies {
		idx[c.Code] = i
	}
	return idx
}()

// Currencies returns a copy of the supported currency table.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// LookupCurrency returns the descriptor for code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	i, ok := currencyIndex[code]
	if !ok {
		return Currency{}, false
	}
	return currencies[i], true
}

// ParseCurrencyCode normalises raw input (case, surrounding whitespace) and
// reports whether it names a supported currency.
func ParseCurrencyCode(raw string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := currencyIndex[code]
	return code, ok
}

// Symbol returns the display glyph for code, "$" when unknown.
func (c CurrencyCode) Symbol() string {
	if cur, ok := LookupCurrency(c); ok {
		return cur.Symbol
	}
	return "$"
}

// FallbackRates builds the static rate snapshot from the currency table.
func FallbackRates() RateTable {
	rates := make(RateTable, len(currencies))
	for _, c := range currencies {
		rates[c.Code] = c.FallbackRate
	}
	return rates
}
