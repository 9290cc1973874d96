package services

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/dto"
)

// DirectorySvcFacade exposes the customer and supplier directory. Orders create and
// reuse entries implicitly; the management calls below curate them directly.
type DirectorySvcFacade interface {
	GetParty(ctx context.Context, actor domain.Actor, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Party, error)
	CreateParty(ctx context.Context, actor domain.Actor, req dto.PartyRequest) (*domain.Party, error)
	// DeleteParty fails with apperrors.ErrConflict while an order references the party.
	DeleteParty(ctx context.Context, actor domain.Actor, partyID string) error

	GetSupplier(ctx context.Context, actor domain.Actor, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, actor domain.Actor, req dto.SupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, actor domain.Actor, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error)
	// DeleteSupplier fails with apperrors.ErrConflict while a tour references the supplier.
	DeleteSupplier(ctx context.Context, actor domain.Actor, supplierID string) error
}

// BankSvcFacade manages the banks payments are received into.
type BankSvcFacade interface {
	CreateBank(ctx context.Context, actor domain.Actor, req dto.BankRequest) (*domain.Bank, error)
	GetBank(ctx context.Context, actor domain.Actor, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Bank, error)
	UpdateBank(ctx context.Context, actor domain.Actor, bankID string, req dto.BankRequest) (*domain.Bank, error)
	DeleteBank(ctx context.Context, actor domain.Actor, bankID string) error
}
