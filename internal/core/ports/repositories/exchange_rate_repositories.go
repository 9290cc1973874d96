package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves a single exchange rate record.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindLatestExchangeRate returns the newest from→to record effective on or before asOf.
	// Only the direct direction is searched. Returns apperrors.ErrNotFound when nothing applies.
	FindLatestExchangeRate(ctx context.Context, from, to domain.Currency, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves exchange rates matching the filter, newest first.
	ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate or, when the (from, to, date) triple exists,
	// updates its value. The stored record is returned.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes a rate record.
	DeleteExchangeRate(ctx context.Context, rateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
