package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, actor domain.Actor, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListOrdersResponse), args.Error(1)
}

func (m *MockOrderService) GetFinancialSummary(ctx context.Context, actor domain.Actor, orderID string) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, actor, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, actor domain.Actor, req dto.OrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) EditOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.EditOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ChangeStatus(ctx context.Context, actor domain.Actor, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, actor domain.Actor, orderID string) error {
	args := m.Called(ctx, actor, orderID)
	return args.Error(0)
}

func (m *MockOrderService) UpdateAccountingComment(ctx context.Context, actor domain.Actor, orderID string, req dto.UpdateAccountingCommentRequest) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) AddPayment(ctx context.Context, actor domain.Actor, orderID string, req dto.PaymentRequest) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) RemovePayment(ctx context.Context, actor domain.Actor, orderID string, paymentID string) (*domain.Order, error) {
	args := m.Called(ctx, actor, orderID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ResolveRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, actor domain.Actor, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, actor, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, actor domain.Actor, params dto.ListExchangeRatesParams) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetEffectiveRate(ctx context.Context, actor domain.Actor, from, to domain.Currency, date time.Time) (*domain.EffectiveRate, error) {
	args := m.Called(ctx, actor, from, to, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EffectiveRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, actor domain.Actor, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) DeleteExchangeRate(ctx context.Context, actor domain.Actor, rateID string) error {
	args := m.Called(ctx, actor, rateID)
	return args.Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) EnsureSupervisor(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) GetParty(ctx context.Context, actor domain.Actor, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, actor, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockDirectoryService) ListParties(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockDirectoryService) CreateParty(ctx context.Context, actor domain.Actor, req dto.PartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockDirectoryService) DeleteParty(ctx context.Context, actor domain.Actor, partyID string) error {
	args := m.Called(ctx, actor, partyID)
	return args.Error(0)
}

func (m *MockDirectoryService) GetSupplier(ctx context.Context, actor domain.Actor, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, actor, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockDirectoryService) ListSuppliers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockDirectoryService) CreateSupplier(ctx context.Context, actor domain.Actor, req dto.SupplierRequest) (*domain.Supplier, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockDirectoryService) UpdateSupplier(ctx context.Context, actor domain.Actor, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	args := m.Called(ctx, actor, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockDirectoryService) DeleteSupplier(ctx context.Context, actor domain.Actor, supplierID string) error {
	args := m.Called(ctx, actor, supplierID)
	return args.Error(0)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) CreateBank(ctx context.Context, actor domain.Actor, req dto.BankRequest) (*domain.Bank, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) GetBank(ctx context.Context, actor domain.Actor, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, actor, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) ListBanks(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Bank, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankService) UpdateBank(ctx context.Context, actor domain.Actor, bankID string, req dto.BankRequest) (*domain.Bank, error) {
	args := m.Called(ctx, actor, bankID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) DeleteBank(ctx context.Context, actor domain.Actor, bankID string) error {
	args := m.Called(ctx, actor, bankID)
	return args.Error(0)
}

var _ portssvc.BankSvcFacade = (*MockBankService)(nil)
