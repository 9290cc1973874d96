package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a single database transaction.
// Repositories called with the context passed to fn take part in that transaction.
type TransactionManager interface {
	// Do commits when fn returns nil and rolls back otherwise.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
