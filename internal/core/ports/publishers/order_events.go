package publishers

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// OrderEventPublisher delivers committed order changes to downstream consumers.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}
