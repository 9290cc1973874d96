package repositories

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// PartyReader defines read operations for customers
type PartyReader interface {
	// FindPartyByID retrieves a party by ID.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindMatchingParty returns the stored party with the same natural key as p,
	// or apperrors.ErrNotFound.
	FindMatchingParty(ctx context.Context, p domain.Party) (*domain.Party, error)

	// FindParties retrieves a page of parties ordered by creation time.
	FindParties(ctx context.Context, limit, offset int) ([]domain.Party, error)

	// IsPartyReferencedElsewhere reports whether an order other than orderID points at the party.
	IsPartyReferencedElsewhere(ctx context.Context, partyID, orderID string) (bool, error)
}

// PartyWriter defines write operations for customers
type PartyWriter interface {
	SaveParty(ctx context.Context, p domain.Party) error
	UpdateParty(ctx context.Context, p domain.Party) error

	// DeletePartyIfUnreferenced removes the party when no order points at it.
	// The boolean reports whether a row was deleted.
	DeletePartyIfUnreferenced(ctx context.Context, partyID string) (bool, error)
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}

// SupplierReader defines read operations for suppliers
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// FindMatchingSupplier returns the stored supplier with the same name and contact email,
	// or apperrors.ErrNotFound.
	FindMatchingSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error)

	FindSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for suppliers
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, s domain.Supplier) error
	UpdateSupplier(ctx context.Context, s domain.Supplier) error

	// DeleteSupplierIfUnreferenced removes the supplier when no tour points at it.
	// The boolean reports whether a row was deleted.
	DeleteSupplierIfUnreferenced(ctx context.Context, supplierID string) (bool, error)
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
