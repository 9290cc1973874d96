package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns present on every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// PriceColumns is the inline price stored on line item and payment rows.
type PriceColumns struct {
	Amount        decimal.Decimal     `db:"amount"`
	Currency      string              `db:"currency"`
	RateToBase    decimal.NullDecimal `db:"rate_to_base"`
	EffectiveDate time.Time           `db:"effective_date"`
}
