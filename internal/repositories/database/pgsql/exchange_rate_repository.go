package pgsql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	"github.com/SscSPs/tour_orders_app/internal/models"
	"github.com/SscSPs/tour_orders_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

var exchangeRateColumns = []string{
	"exchange_rate_id", "from_currency", "to_currency", "rate", "date_effective",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrency, &m.ToCurrency,
		&m.Rate, &m.DateEffective, &m.CreatedAt,
		&m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query, args := r.qb.Select(exchangeRateColumns...).
		From("exchange_rates").
		Where(sq.Eq{"exchange_rate_id": rateID}).
		MustSql()

	m, err := scanExchangeRate(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get exchange rate by ID", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}

// FindLatestExchangeRate returns the newest from→to record effective on or before asOf.
func (r *PgxExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, from, to domain.Currency, asOf time.Time) (*domain.ExchangeRate, error) {
	query, args := r.qb.Select(exchangeRateColumns...).
		From("exchange_rates").
		Where(sq.Eq{"from_currency": string(from), "to_currency": string(to)}).
		Where(sq.LtOrEq{"date_effective": domain.TruncateToDate(asOf)}).
		OrderBy("date_effective DESC").
		Limit(1).
		MustSql()

	m, err := scanExchangeRate(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate " + string(from) + "->" + string(to) + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(m)
	return &domainRate, nil
}

// ListExchangeRates retrieves exchange rates with optional filtering.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error) {
	builder := r.qb.Select(exchangeRateColumns...).From("exchange_rates")
	if filter.FromCurrency != nil {
		builder = builder.Where(sq.Eq{"from_currency": string(*filter.FromCurrency)})
	}
	if filter.ToCurrency != nil {
		builder = builder.Where(sq.Eq{"to_currency": string(*filter.ToCurrency)})
	}
	if filter.AsOf != nil {
		builder = builder.Where(sq.LtOrEq{"date_effective": domain.TruncateToDate(*filter.AsOf)})
	}
	builder = builder.OrderBy("date_effective DESC", "from_currency", "to_currency")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build exchange rate query", err)
	}

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	return rates, nil
}

// SaveExchangeRate inserts a rate, overwriting the value of an existing record for
// the same pair and date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if rate.FromCurrency == rate.ToCurrency {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	m := mapping.ToModelExchangeRate(rate)
	m.DateEffective = domain.TruncateToDate(m.DateEffective)

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency, to_currency, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency, to_currency, date_effective) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING exchange_rate_id, from_currency, to_currency, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by;`

	saved, err := scanExchangeRate(r.conn(ctx).QueryRow(ctx, query,
		m.ExchangeRateID, m.FromCurrency, m.ToCurrency,
		m.Rate, m.DateEffective, m.CreatedAt,
		m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(saved)
	return &domainRate, nil
}

// DeleteExchangeRate removes a rate record.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, `DELETE FROM exchange_rates WHERE exchange_rate_id = $1;`, rateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete exchange rate", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
	}
	return nil
}
