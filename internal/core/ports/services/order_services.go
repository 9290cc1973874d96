package services

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/dto"
)

// OrderReaderSvc defines read operations on orders
type OrderReaderSvc interface {
	// GetOrder returns the full order graph.
	GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)

	// ListOrders returns a page of orders visible to the actor.
	ListOrders(ctx context.Context, actor domain.Actor, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error)

	// GetFinancialSummary derives profit, payments and cash flow of an order in the base currency.
	GetFinancialSummary(ctx context.Context, actor domain.Actor, orderID string) (*domain.FinancialSummary, error)
}

// OrderWriterSvc defines the aggregate lifecycle operations
type OrderWriterSvc interface {
	// CreateOrder builds a new OPEN order from the complete payload.
	CreateOrder(ctx context.Context, actor domain.Actor, req dto.OrderRequest) (*domain.Order, error)

	// EditOrder replaces the whole order with the submitted state.
	EditOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.EditOrderRequest) (*domain.Order, error)

	// ChangeStatus closes an order, or reopens it when status is OPEN.
	ChangeStatus(ctx context.Context, actor domain.Actor, orderID string, status domain.OrderStatus) (*domain.Order, error)

	// DeleteOrder removes the order and everything it owns.
	DeleteOrder(ctx context.Context, actor domain.Actor, orderID string) error

	// UpdateAccountingComment replaces the accounting note and its metadata.
	UpdateAccountingComment(ctx context.Context, actor domain.Actor, orderID string, req dto.UpdateAccountingCommentRequest) (*domain.Order, error)
}

// OrderPaymentSvc defines single-payment operations
type OrderPaymentSvc interface {
	AddPayment(ctx context.Context, actor domain.Actor, orderID string, req dto.PaymentRequest) (*domain.Order, error)
	RemovePayment(ctx context.Context, actor domain.Actor, orderID string, paymentID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderPaymentSvc
}
