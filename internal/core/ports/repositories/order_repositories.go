package repositories

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// OrderReader defines read operations for the order aggregate
type OrderReader interface {
	// FindOrderByID loads the complete graph: party, tour with supplier, line items,
	// passengers and payments.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders returns order headers with their party, newest first.
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
}

// OrderWriter defines write operations for the order aggregate
type OrderWriter interface {
	// SaveOrder inserts a new order with its tour, line items, passengers and payments.
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrderHeader writes the order row when its stored version equals
	// expectedVersion and stores order.Version. Returns apperrors.ErrConflict otherwise.
	UpdateOrderHeader(ctx context.Context, order domain.Order, expectedVersion int64) error

	// ReplaceTour updates the tour row and rebuilds its line items and passengers.
	ReplaceTour(ctx context.Context, tour domain.Tour) error

	// ReplacePayments deletes every payment of the order and inserts the given ones.
	ReplacePayments(ctx context.Context, orderID string, payments []domain.Payment) error

	SavePayment(ctx context.Context, payment domain.Payment) error
	DeletePayment(ctx context.Context, orderID, paymentID string) error

	// DeleteOrder removes the order together with its tour, line items and payments.
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

// OrderNumberRepository hands out per-year order sequence numbers.
type OrderNumberRepository interface {
	// NextOrderSequence atomically increments and returns the counter for year.
	NextOrderSequence(ctx context.Context, year int) (int64, error)
}
