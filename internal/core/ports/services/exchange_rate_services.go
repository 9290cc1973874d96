package services

import (
	"context"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateResolver converts between currencies as of a date.
type ExchangeRateResolver interface {
	// ResolveRate returns the multiplier that converts 1 unit of from into to on date.
	ResolveRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error)

	// Convert expresses amount of from in to on date.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, date time.Time) (decimal.Decimal, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	GetExchangeRateByID(ctx context.Context, actor domain.Actor, rateID string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context, actor domain.Actor, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error)

	// GetEffectiveRate resolves a pair on a date and reports which record was applied.
	GetEffectiveRate(ctx context.Context, actor domain.Actor, from, to domain.Currency, date time.Time) (*domain.EffectiveRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate stores a rate, replacing the value of an existing record for the same pair and date.
	CreateExchangeRate(ctx context.Context, actor domain.Actor, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	DeleteExchangeRate(ctx context.Context, actor domain.Actor, rateID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateResolver
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
