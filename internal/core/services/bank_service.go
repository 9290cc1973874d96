package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/policy"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/google/uuid"
)

type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryFacade
}

// NewBankService creates a new bank service
func NewBankService(bankRepo portsrepo.BankRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, actor domain.Actor, req dto.BankRequest) (*domain.Bank, error) {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	bank, err := buildBank(req)
	if err != nil {
		return nil, err
	}

	bank.BankID = uuid.NewString()
	bank.AuditFields = domain.NewAuditFields(actor.UserID, s.Now())
	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to create bank")
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	s.LogInfo(ctx, "Bank created", slog.String("bank_id", bank.BankID))
	return &bank, nil
}

func (s *bankService) GetBank(ctx context.Context, actor domain.Actor, bankID string) (*domain.Bank, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("bank not found")
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Bank, error) {
	if err := policy.Authorize(actor, policy.OpViewDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	banks, err := s.bankRepo.FindBanks(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}

func (s *bankService) UpdateBank(ctx context.Context, actor domain.Actor, bankID string, req dto.BankRequest) (*domain.Bank, error) {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return nil, err
	}
	desired, err := buildBank(req)
	if err != nil {
		return nil, err
	}
	stored, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("bank not found")
		}
		return nil, fmt.Errorf("failed to get bank: %w", err)
	}

	stored.Name = desired.Name
	stored.Swift = desired.Swift
	stored.AccountNumber = desired.AccountNumber
	stored.Touch(actor.UserID, s.Now())
	if err := s.bankRepo.UpdateBank(ctx, *stored); err != nil {
		s.LogError(ctx, err, "Failed to update bank", slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to update bank: %w", err)
	}
	return stored, nil
}

// DeleteBank removes the bank. Payments keep the bank name they were recorded with.
func (s *bankService) DeleteBank(ctx context.Context, actor domain.Actor, bankID string) error {
	if err := policy.Authorize(actor, policy.OpManageDirectory, policy.Target{}); err != nil {
		return err
	}
	if err := s.bankRepo.DeleteBank(ctx, bankID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("bank not found")
		}
		s.LogError(ctx, err, "Failed to delete bank", slog.String("bank_id", bankID))
		return fmt.Errorf("failed to delete bank: %w", err)
	}
	s.LogInfo(ctx, "Bank deleted", slog.String("bank_id", bankID))
	return nil
}

func buildBank(req dto.BankRequest) (domain.Bank, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Bank{}, validationf("bank name is required")
	}
	bank := domain.Bank{Name: name, AccountNumber: trimmed(req.AccountNumber)}
	if swift := trimmed(req.Swift); swift != nil {
		code := strings.ToUpper(*swift)
		if len(code) != 8 && len(code) != 11 {
			return domain.Bank{}, validationf("SWIFT code must have 8 or 11 characters")
		}
		bank.Swift = &code
	}
	return bank, nil
}
