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

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(db *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

var partyColumns = []string{
	"party_id", "kind", "email", "phone",
	"first_name", "last_name", "birth_date",
	"company_name", "registration_number", "contact_person",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID, &m.Kind, &m.Email, &m.Phone,
		&m.FirstName, &m.LastName, &m.BirthDate,
		&m.CompanyName, &m.RegistrationNumber, &m.ContactPerson,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query, args := r.qb.Select(partyColumns...).
		From("parties").
		Where(sq.Eq{"party_id": partyID}).
		MustSql()

	m, err := scanParty(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("party with ID " + partyID + " not found")
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}

	p := mapping.ToDomainParty(m)
	return &p, nil
}

// FindMatchingParty looks a customer up by natural key. Companies without a
// registration number never match.
func (r *PgxPartyRepository) FindMatchingParty(ctx context.Context, p domain.Party) (*domain.Party, error) {
	builder := r.qb.Select(partyColumns...).
		From("parties").
		Where(sq.Eq{"kind": string(p.Kind)})

	switch {
	case p.IsPerson():
		builder = builder.
			Where(sq.Eq{"first_name": p.Person.FirstName, "last_name": p.Person.LastName})
		if p.Person.BirthDate != nil {
			builder = builder.Where(sq.Eq{"birth_date": domain.TruncateToDate(*p.Person.BirthDate)})
		} else {
			builder = builder.Where(sq.Eq{"birth_date": nil})
		}
	case p.IsCompany() && p.Company.RegistrationNumber != nil && *p.Company.RegistrationNumber != "":
		builder = builder.Where(sq.Eq{"registration_number": *p.Company.RegistrationNumber})
	default:
		return nil, apperrors.ErrNotFound
	}

	query, args, err := builder.OrderBy("created_at").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build party lookup: %w", err)
	}

	m, err := scanParty(r.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up party: %w", err)
	}

	found := mapping.ToDomainParty(m)
	return &found, nil
}

func (r *PgxPartyRepository) FindParties(ctx context.Context, limit, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query, args := r.qb.Select(partyColumns...).
		From("parties").
		OrderBy("created_at DESC", "party_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, mapping.ToDomainParty(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", rows.Err())
	}
	return parties, nil
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, p domain.Party) error {
	m := mapping.ToModelParty(p)
	query, args := r.qb.Insert("parties").
		Columns(partyColumns...).
		Values(
			m.PartyID, m.Kind, m.Email, m.Phone,
			m.FirstName, m.LastName, m.BirthDate,
			m.CompanyName, m.RegistrationNumber, m.ContactPerson,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).
		MustSql()

	if _, err := r.conn(ctx).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, p domain.Party) error {
	m := mapping.ToModelParty(p)
	query, args := r.qb.Update("parties").
		SetMap(map[string]any{
			"email":               m.Email,
			"phone":               m.Phone,
			"first_name":          m.FirstName,
			"last_name":           m.LastName,
			"birth_date":          m.BirthDate,
			"company_name":        m.CompanyName,
			"registration_number": m.RegistrationNumber,
			"contact_person":      m.ContactPerson,
			"last_updated_at":     m.LastUpdatedAt,
			"last_updated_by":     m.LastUpdatedBy,
		}).
		Where(sq.Eq{"party_id": m.PartyID}).
		MustSql()

	cmdTag, err := r.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update party: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("party %s: %w", m.PartyID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPartyRepository) IsPartyReferencedElsewhere(ctx context.Context, partyID, orderID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE party_id = $1 AND order_id <> $2);`
	var referenced bool
	if err := r.conn(ctx).QueryRow(ctx, query, partyID, orderID).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check references of party %s: %w", partyID, err)
	}
	return referenced, nil
}

func (r *PgxPartyRepository) DeletePartyIfUnreferenced(ctx context.Context, partyID string) (bool, error) {
	query := `
		DELETE FROM parties p
		WHERE p.party_id = $1
		  AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.party_id = p.party_id);`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, partyID)
	if err != nil {
		return false, fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
