package mapping

import (
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelPrice flattens a PriceLine into its row columns.
func ToModelPrice(p domain.PriceLine) models.PriceColumns {
	cols := models.PriceColumns{
		Amount:        p.Amount,
		Currency:      string(p.Currency),
		EffectiveDate: p.EffectiveDate,
	}
	if p.RateToBase != nil {
		cols.RateToBase = decimal.NewNullDecimal(*p.RateToBase)
	}
	return cols
}

// ToDomainPrice rebuilds a PriceLine from its row columns.
func ToDomainPrice(m models.PriceColumns) domain.PriceLine {
	var rate *decimal.Decimal
	if m.RateToBase.Valid {
		r := m.RateToBase.Decimal
		rate = &r
	}
	return domain.NewPriceLine(m.Amount, domain.Currency(m.Currency), rate, m.EffectiveDate)
}
