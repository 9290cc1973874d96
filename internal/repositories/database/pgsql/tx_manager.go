package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction started by PgxTxManager.Do, if any.
func ExtractTx(ctx context.Context) pgx.Tx {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type PgxTxManager struct {
	BaseRepository
}

func newPgxTxManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &PgxTxManager{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// Do runs fn in a transaction. A nested call joins the outer transaction.
func (m *PgxTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(context.WithoutCancel(ctx), tx) // no-op after commit

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}
