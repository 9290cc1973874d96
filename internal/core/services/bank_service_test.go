package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBankService(t *testing.T) {
	ctx := context.Background()
	employee := domain.Actor{UserID: "emp-1", Role: domain.RoleEmployee}
	supervisor := domain.Actor{UserID: "boss-1", Role: domain.RoleSupervisor}

	t.Run("CreateBank normalizes and stores", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("SaveBank", mock.Anything, mock.MatchedBy(func(b domain.Bank) bool {
			return b.BankID != "" && b.Name == "Bank of Georgia" && b.Swift != nil && *b.Swift == "BAGAGE22" &&
				b.AccountNumber == nil && b.CreatedBy == "boss-1"
		})).Return(nil).Once()

		got, err := svc.CreateBank(ctx, supervisor, dto.BankRequest{Name: " Bank of Georgia ", Swift: strPtr("bagage22"), AccountNumber: strPtr("  ")})

		require.NoError(t, err)
		assert.Equal(t, "BAGAGE22", *got.Swift)
		banks.AssertExpectations(t)
	})

	t.Run("CreateBank rejects a malformed SWIFT code", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)

		_, err := svc.CreateBank(ctx, supervisor, dto.BankRequest{Name: "TBC Bank", Swift: strPtr("TBCB")})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Empty(t, banks.Calls)
	})

	t.Run("CreateBank surfaces duplicates", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("SaveBank", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

		_, err := svc.CreateBank(ctx, supervisor, dto.BankRequest{Name: "TBC Bank"})

		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("employees may list but not manage", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("FindBanks", mock.Anything, 20, 0).Return([]domain.Bank{{BankID: "bank-1", Name: "TBC Bank"}}, nil).Once()

		listed, err := svc.ListBanks(ctx, employee, 0, 0)
		require.NoError(t, err)
		assert.Len(t, listed, 1)

		_, err = svc.CreateBank(ctx, employee, dto.BankRequest{Name: "TBC Bank"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		_, err = svc.UpdateBank(ctx, employee, "bank-1", dto.BankRequest{Name: "TBC Bank"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, svc.DeleteBank(ctx, employee, "bank-1"), apperrors.ErrUnauthorized)
		banks.AssertExpectations(t)
	})

	t.Run("UpdateBank replaces every field", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("FindBankByID", mock.Anything, "bank-1").
			Return(&domain.Bank{BankID: "bank-1", Name: "TBC", Swift: strPtr("TBCBGE22")}, nil).Once()
		banks.On("UpdateBank", mock.Anything, mock.MatchedBy(func(b domain.Bank) bool {
			return b.BankID == "bank-1" && b.Name == "TBC Bank" && b.Swift == nil &&
				b.AccountNumber != nil && *b.AccountNumber == "GE00TB0000000000000001" && b.LastUpdatedBy == "boss-1"
		})).Return(nil).Once()

		got, err := svc.UpdateBank(ctx, supervisor, "bank-1", dto.BankRequest{Name: "TBC Bank", AccountNumber: strPtr("GE00TB0000000000000001")})

		require.NoError(t, err)
		assert.Nil(t, got.Swift)
		banks.AssertExpectations(t)
	})

	t.Run("UpdateBank of an unknown id is not found", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("FindBankByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

		_, err := svc.UpdateBank(ctx, supervisor, "missing", dto.BankRequest{Name: "TBC Bank"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("DeleteBank", func(t *testing.T) {
		banks := new(MockBankRepository)
		svc := services.NewBankService(banks)
		banks.On("DeleteBank", mock.Anything, "bank-1").Return(nil).Once()
		banks.On("DeleteBank", mock.Anything, "missing").Return(apperrors.NewNotFoundError("bank with ID missing not found")).Once()

		require.NoError(t, svc.DeleteBank(ctx, supervisor, "bank-1"))
		assert.ErrorIs(t, svc.DeleteBank(ctx, supervisor, "missing"), apperrors.ErrNotFound)
	})
}
