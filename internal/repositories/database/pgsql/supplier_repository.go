package pgsql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/SscSPs/tour_orders_app/internal/models"
	"github.com/SscSPs/tour_orders_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

var supplierColumns = []string{
	"supplier_id", "name", "contact_email", "phone",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID, &m.Name, &m.ContactEmail, &m.Phone,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query, args := r.qb.Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"supplier_id": supplierID}).
		MustSql()

	m, err := scanSupplier(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("supplier with ID " + supplierID + " not found")
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	s := mapping.ToDomainSupplier(m)
	return &s, nil
}

func (r *PgxSupplierRepository) FindMatchingSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	// sq.Eq renders a nil value as IS NULL
	var email any
	if s.ContactEmail != nil {
		email = *s.ContactEmail
	}
	query, args := r.qb.Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"name": s.Name, "contact_email": email}).
		OrderBy("created_at").
		Limit(1).
		MustSql()

	m, err := scanSupplier(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up supplier: %w", err)
	}

	found := mapping.ToDomainSupplier(m)
	return &found, nil
}

func (r *PgxSupplierRepository) FindSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query, args := r.qb.Select(supplierColumns...).
		From("suppliers").
		OrderBy("name", "supplier_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, s domain.Supplier) error {
	m := mapping.ToModelSupplier(s)
	query, args := r.qb.Insert("suppliers").
		Columns(supplierColumns...).
		Values(
			m.SupplierID, m.Name, m.ContactEmail, m.Phone,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).
		MustSql()

	if _, err := r.conn(ctx).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, s domain.Supplier) error {
	m := mapping.ToModelSupplier(s)
	query, args := r.qb.Update("suppliers").
		Set("name", m.Name).
		Set("contact_email", m.ContactEmail).
		Set("phone", m.Phone).
		Set("last_updated_at", m.LastUpdatedAt).
		Set("last_updated_by", m.LastUpdatedBy).
		Where(sq.Eq{"supplier_id": m.SupplierID}).
		MustSql()

	cmdTag, err := r.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("supplier %s: %w", m.SupplierID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplierIfUnreferenced(ctx context.Context, supplierID string) (bool, error) {
	query := `
		DELETE FROM suppliers s
		WHERE s.supplier_id = $1
		  AND NOT EXISTS (SELECT 1 FROM tours t WHERE t.supplier_id = s.supplier_id);`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, supplierID)
	if err != nil {
		return false, fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
