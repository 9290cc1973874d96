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

type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(db *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

var bankColumns = []string{
	"bank_id", "name", "swift", "account_number",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func scanBank(row pgx.Row) (models.Bank, error) {
	var m models.Bank
	err := row.Scan(
		&m.BankID, &m.Name, &m.Swift, &m.AccountNumber,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query, args := r.qb.Select(bankColumns...).
		From("banks").
		Where(sq.Eq{"bank_id": bankID}).
		MustSql()

	m, err := scanBank(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank with ID " + bankID + " not found")
		}
		return nil, fmt.Errorf("failed to find bank by ID %s: %w", bankID, err)
	}

	b := mapping.ToDomainBank(m)
	return &b, nil
}

func (r *PgxBankRepository) FindBanks(ctx context.Context, limit, offset int) ([]domain.Bank, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query, args := r.qb.Select(bankColumns...).
		From("banks").
		OrderBy("name", "bank_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		m, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		banks = append(banks, mapping.ToDomainBank(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", rows.Err())
	}
	return banks, nil
}

func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query, args := r.qb.Insert("banks").
		Columns(bankColumns...).
		Values(
			m.BankID, m.Name, m.Swift, m.AccountNumber,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).
		MustSql()

	if _, err := r.conn(ctx).Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank %s: %w", m.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bank: %w", err)
	}
	return nil
}

func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query, args := r.qb.Update("banks").
		Set("name", m.Name).
		Set("swift", m.Swift).
		Set("account_number", m.AccountNumber).
		Set("last_updated_at", m.LastUpdatedAt).
		Set("last_updated_by", m.LastUpdatedBy).
		Where(sq.Eq{"bank_id": m.BankID}).
		MustSql()

	cmdTag, err := r.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank %s: %w", m.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update bank: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank with ID " + m.BankID + " not found")
	}
	return nil
}

func (r *PgxBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, `DELETE FROM banks WHERE bank_id = $1;`, bankID)
	if err != nil {
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank with ID " + bankID + " not found")
	}
	return nil
}
