package repositories

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// BankReader defines read operations for the agency's receiving banks
type BankReader interface {
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	FindBanks(ctx context.Context, limit, offset int) ([]domain.Bank, error)
}

// BankWriter defines write operations for banks
type BankWriter interface {
	SaveBank(ctx context.Context, bank domain.Bank) error
	UpdateBank(ctx context.Context, bank domain.Bank) error
	DeleteBank(ctx context.Context, bankID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
