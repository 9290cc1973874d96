package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts 1 unit of FromCurrency into Rate units of ToCurrency,
// applicable from DateEffective until a newer record for the same pair exists.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrency   Currency        `json:"fromCurrency"`
	ToCurrency     Currency        `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	AuditFields
}

// ExchangeRateFilter narrows exchange rate listings.
type ExchangeRateFilter struct {
	FromCurrency *Currency
	ToCurrency   *Currency
	AsOf         *time.Time
	Limit        int
	Offset       int
}

// EffectiveRate is the outcome of resolving a pair on a date.
type EffectiveRate struct {
	FromCurrency  Currency        `json:"fromCurrency"`
	ToCurrency    Currency        `json:"toCurrency"`
	Rate          decimal.Decimal `json:"rate"`
	RequestedDate time.Time       `json:"requestedDate"`
	RecordDate    time.Time       `json:"recordDate"`
	Inverted      bool            `json:"inverted"`
}
