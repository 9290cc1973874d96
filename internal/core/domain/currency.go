package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is one of the supported ISO currency codes.
type Currency string

const (
	GEL Currency = "GEL"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// BaseCurrency is the currency all financial summaries are expressed in.
const BaseCurrency = GEL

var supportedCurrencies = map[Currency]struct{}{
	GEL: {},
	USD: {},
	EUR: {},
}

// ParseCurrency normalizes a code and reports whether it is supported.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	_, ok := supportedCurrencies[c]
	return c, ok
}

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// SupportedCurrencies returns the closed set of currencies in a stable order.
func SupportedCurrencies() []Currency {
	return []Currency{GEL, USD, EUR}
}

// Money is an immutable amount in a currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// PriceLine is the priced unit attached to line items and payments. RateToBase is the
// snapshot rate captured when the line was authored; nil means it must be resolved.
type PriceLine struct {
	Amount        decimal.Decimal  `json:"amount"`
	Currency      Currency         `json:"currency"`
	RateToBase    *decimal.Decimal `json:"rateToBase,omitempty"`
	EffectiveDate time.Time        `json:"effectiveDate"`
}

// NewPriceLine builds a PriceLine. Lines already in the base currency always carry rate 1.
func NewPriceLine(amount decimal.Decimal, currency Currency, rateToBase *decimal.Decimal, effectiveDate time.Time) PriceLine {
	if currency == BaseCurrency {
		one := decimal.NewFromInt(1)
		rateToBase = &one
	}
	return PriceLine{
		Amount:        amount,
		Currency:      currency,
		RateToBase:    rateToBase,
		EffectiveDate: TruncateToDate(effectiveDate),
	}
}

// Money returns the line's amount and currency.
func (p PriceLine) Money() Money {
	return NewMoney(p.Amount, p.Currency)
}

// PriceInBase returns amount × rateToBase. ok is false when the line has no snapshot rate.
func (p PriceLine) PriceInBase() (decimal.Decimal, bool) {
	if p.Currency == BaseCurrency {
		return p.Amount, true
	}
	if p.RateToBase == nil {
		return decimal.Zero, false
	}
	return p.Amount.Mul(*p.RateToBase), true
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
