package pgsql

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderNumberRepository struct {
	BaseRepository
}

func newPgxOrderNumberRepository(db *pgxpool.Pool) portsrepo.OrderNumberRepository {
	return &PgxOrderNumberRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.OrderNumberRepository = (*PgxOrderNumberRepository)(nil)

// NextOrderSequence bumps the per-year counter. The row lock taken by the upsert
// serialises concurrent creators until their transaction ends.
func (r *PgxOrderNumberRepository) NextOrderSequence(ctx context.Context, year int) (int64, error) {
	query := `
		INSERT INTO order_sequences (year, last_value) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = order_sequences.last_value + 1
		RETURNING last_value;`
	var seq int64
	if err := r.conn(ctx).QueryRow(ctx, query, year).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate order number", err)
	}
	return seq, nil
}
