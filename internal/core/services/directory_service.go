package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/policy"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/google/uuid"
)

type directoryService struct {
	BaseService
	partyRepo    portsrepo.PartyRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewDirectoryService creates the customer and supplier directory.
func NewDirectoryService(partyRepo portsrepo.PartyRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.DirectorySvcFacade {
	return &directoryService{partyRepo: partyRepo, supplierRepo: supplierRepo}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) GetParty(ctx context.Context, actor domain.Actor, partyID string) (*domain.Party, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("party not found")
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

func (s *directoryService) ListParties(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Party, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	parties, err := s.partyRepo.FindParties(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

// CreateParty registers a customer ahead of any order. A customer with the same
// natural key already on file is a duplicate.
func (s *directoryService) CreateParty(ctx context.Context, actor domain.Actor, req dto.PartyRequest) (*domain.Party, error) {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	party, err := buildParty(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.partyRepo.FindMatchingParty(ctx, party)
	switch {
	case err == nil:
		return nil, fmt.Errorf("party %s already exists as %s: %w", party.DisplayName(), existing.PartyID, apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up party: %w", err)
	}

	party.PartyID = uuid.NewString()
	party.AuditFields = domain.NewAuditFields(actor.UserID, s.Now())
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to create party")
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID))
	return &party, nil
}

func (s *directoryService) DeleteParty(ctx context.Context, actor domain.Actor, partyID string) error {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return err
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("party not found")
		}
		return fmt.Errorf("failed to get party: %w", err)
	}

	removed, err := s.partyRepo.DeletePartyIfUnreferenced(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if !removed {
		return apperrors.NewConflictError("party " + partyID + " is still the customer of an order")
	}

	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID))
	return nil
}

func (s *directoryService) GetSupplier(ctx context.Context, actor domain.Actor, supplierID string) (*domain.Supplier, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("supplier not found")
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

func (s *directoryService) ListSuppliers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Supplier, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	suppliers, err := s.supplierRepo.FindSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *directoryService) CreateSupplier(ctx context.Context, actor domain.Actor, req dto.SupplierRequest) (*domain.Supplier, error) {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	supplier, err := buildSupplier(req)
	if err != nil {
		return nil, err
	}

	_, err = s.supplierRepo.FindMatchingSupplier(ctx, supplier)
	switch {
	case err == nil:
		return nil, fmt.Errorf("supplier %s: %w", supplier.Name, apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up supplier: %w", err)
	}

	supplier.SupplierID = uuid.NewString()
	supplier.AuditFields = domain.NewAuditFields(actor.UserID, s.Now())
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to create supplier")
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// UpdateSupplier replaces name and contacts. Renaming onto another supplier's
// name and contact email is a duplicate.
func (s *directoryService) UpdateSupplier(ctx context.Context, actor domain.Actor, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	desired, err := buildSupplier(req)
	if err != nil {
		return nil, err
	}
	stored, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("supplier not found")
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	if !stored.SameIdentity(desired) {
		other, err := s.supplierRepo.FindMatchingSupplier(ctx, desired)
		switch {
		case err == nil && other.SupplierID != stored.SupplierID:
			return nil, fmt.Errorf("supplier %s: %w", desired.Name, apperrors.ErrDuplicate)
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to look up supplier: %w", err)
		}
	}

	stored.Name = desired.Name
	stored.ContactEmail = desired.ContactEmail
	stored.Phone = desired.Phone
	stored.Touch(actor.UserID, s.Now())
	if err := s.supplierRepo.UpdateSupplier(ctx, *stored); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return stored, nil
}

func (s *directoryService) DeleteSupplier(ctx context.Context, actor domain.Actor, supplierID string) error {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return err
	}
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("supplier not found")
		}
		return fmt.Errorf("failed to get supplier: %w", err)
	}

	removed, err := s.supplierRepo.DeleteSupplierIfUnreferenced(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if !removed {
		return apperrors.NewConflictError("supplier " + supplierID + " still supplies a tour")
	}

	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}

