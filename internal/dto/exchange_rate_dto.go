package dto

import (
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating or updating an exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrency  string          `json:"fromCurrency" binding:"required,currency" example:"USD"`
	ToCurrency    string          `json:"toCurrency" binding:"required,currency" example:"GEL"`
	Rate          decimal.Decimal `json:"rate" swaggertype:"string" example:"2.70"`
	DateEffective time.Time       `json:"dateEffective" binding:"required"`
}

// ListExchangeRatesParams defines query parameters for listing exchange rates.
type ListExchangeRatesParams struct {
	FromCurrency *string    `form:"from" binding:"omitempty,currency"`
	ToCurrency   *string    `form:"to" binding:"omitempty,currency"`
	AsOf         *time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1"`
	Limit        int        `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset       int        `form:"offset,default=0" binding:"omitempty,min=0"`
}

// EffectiveRateParams selects the pair and date to resolve.
type EffectiveRateParams struct {
	FromCurrency string    `form:"from" binding:"required,currency"`
	ToCurrency   string    `form:"to" binding:"required,currency"`
	Date         time.Time `form:"date" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate" swaggertype:"string"`
	DateEffective  time.Time       `json:"dateEffective"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// EffectiveRateResponse is the rate applied to a pair on a date.
type EffectiveRateResponse struct {
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	Rate          decimal.Decimal `json:"rate" swaggertype:"string"`
	RequestedDate time.Time       `json:"requestedDate"`
	RecordDate    time.Time       `json:"recordDate"`
	Inverted      bool            `json:"inverted"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		FromCurrency:   string(rate.FromCurrency),
		ToCurrency:     string(rate.ToCurrency),
		Rate:           rate.Rate,
		DateEffective:  rate.DateEffective,
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToEffectiveRateResponse converts a domain.EffectiveRate to its DTO
func ToEffectiveRateResponse(r *domain.EffectiveRate) EffectiveRateResponse {
	return EffectiveRateResponse{
		FromCurrency:  string(r.FromCurrency),
		ToCurrency:    string(r.ToCurrency),
		Rate:          r.Rate,
		RequestedDate: r.RequestedDate,
		RecordDate:    r.RecordDate,
		Inverted:      r.Inverted,
	}
}
