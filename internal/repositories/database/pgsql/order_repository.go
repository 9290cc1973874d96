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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: newBaseRepository(db)}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

var orderColumns = []string{
	"o.order_id", "o.order_number", "o.status", "o.party_id", "o.tour_id", "o.source",
	"o.sell_price_in_base", "o.created_by_id", "o.created_by_email",
	"o.accounting_comment", "o.accounting_comment_updated_at",
	"o.accounting_comment_updated_by_id", "o.accounting_comment_updated_by_email",
	"o.bank_name", "o.account_holder_full_name", "o.iban", "o.account_number", "o.swift", "o.bank_comment",
	"o.version", "o.created_at", "o.created_by", "o.last_updated_at", "o.last_updated_by",
}

func orderScanTargets(m *models.Order) []any {
	return []any{
		&m.OrderID, &m.OrderNumber, &m.Status, &m.PartyID, &m.TourID, &m.Source,
		&m.SellPriceInBase, &m.CreatedByID, &m.CreatedByEmail,
		&m.AccountingComment, &m.AccountingCommentUpdatedAt,
		&m.AccountingCommentUpdatedByID, &m.AccountingCommentUpdatedByEmail,
		&m.BankName, &m.AccountHolderFullName, &m.IBAN, &m.AccountNumber, &m.SWIFT, &m.BankComment,
		&m.Version, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

func partyScanTargets(m *models.Party) []any {
	return []any{
		&m.PartyID, &m.Kind, &m.Email, &m.Phone,
		&m.FirstName, &m.LastName, &m.BirthDate,
		&m.CompanyName, &m.RegistrationNumber, &m.ContactPerson,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

func prefixed(prefix string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return out
}

// FindOrderByID loads the order with its party, tour, supplier, line items,
// passengers and payments.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	cols := append(append([]string{}, orderColumns...), prefixed("p", partyColumns)...)
	query, args := r.qb.Select(cols...).
		From("orders o").
		Join("parties p ON p.party_id = o.party_id").
		Where(sq.Eq{"o.order_id": orderID}).
		MustSql()

	var om models.Order
	var pm models.Party
	err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(append(orderScanTargets(&om), partyScanTargets(&pm)...)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("order with ID " + orderID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find order", err)
	}

	order := mapping.ToDomainOrder(om)
	party := mapping.ToDomainParty(pm)
	order.Party = &party

	tour, err := r.findTour(ctx, om.TourID)
	if err != nil {
		return nil, err
	}
	order.Tour = tour

	payments, err := r.findPayments(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Payments = payments

	return &order, nil
}

func (r *PgxOrderRepository) findTour(ctx context.Context, tourID string) (*domain.Tour, error) {
	cols := append([]string{
		"t.tour_id", "t.name", "t.start_date", "t.end_date", "t.passenger_count", "t.supplier_id",
	}, prefixed("s", supplierColumns)...)
	query, args := r.qb.Select(cols...).
		From("tours t").
		Join("suppliers s ON s.supplier_id = t.supplier_id").
		Where(sq.Eq{"t.tour_id": tourID}).
		MustSql()

	var tm models.Tour
	var sm models.Supplier
	err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(
		&tm.TourID, &tm.Name, &tm.StartDate, &tm.EndDate, &tm.PassengerCount, &tm.SupplierID,
		&sm.SupplierID, &sm.Name, &sm.ContactEmail, &sm.Phone,
		&sm.CreatedAt, &sm.CreatedBy, &sm.LastUpdatedAt, &sm.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(500, "tour "+tourID+" of order is missing", err)
		}
		return nil, apperrors.NewAppError(500, "failed to load tour", err)
	}

	tour := mapping.ToDomainTour(tm)
	supplier := mapping.ToDomainSupplier(sm)
	tour.Supplier = &supplier

	if tour.FlightSegments, err = r.findFlightSegments(ctx, tourID); err != nil {
		return nil, err
	}
	if tour.HotelStays, err = r.findHotelStays(ctx, tourID); err != nil {
		return nil, err
	}
	if tour.ExtraServices, err = r.findExtraServices(ctx, tourID); err != nil {
		return nil, err
	}
	if tour.Passengers, err = r.findPassengers(ctx, tourID); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *PgxOrderRepository) findFlightSegments(ctx context.Context, tourID string) ([]domain.FlightSegment, error) {
	query := `
		SELECT flight_segment_id, tour_id, position, from_location, to_location, flight_date, pnr,
		       amount, currency, rate_to_base, effective_date
		FROM flight_segments
		WHERE tour_id = $1
		ORDER BY position;`
	rows, err := r.conn(ctx).Query(ctx, query, tourID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load flight segments", err)
	}
	defer rows.Close()

	out := []domain.FlightSegment{}
	for rows.Next() {
		var m models.FlightSegment
		if err := rows.Scan(
			&m.FlightSegmentID, &m.TourID, &m.Position, &m.FromLocation, &m.ToLocation, &m.FlightDate, &m.PNR,
			&m.Amount, &m.Currency, &m.RateToBase, &m.EffectiveDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan flight segment", err)
		}
		out = append(out, mapping.ToDomainFlightSegment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating flight segments", err)
	}
	return out, nil
}

func (r *PgxOrderRepository) findHotelStays(ctx context.Context, tourID string) ([]domain.HotelStay, error) {
	query := `
		SELECT hotel_stay_id, tour_id, position, hotel_name, check_in, check_out, confirmation_number,
		       amount, currency, rate_to_base, effective_date
		FROM hotel_stays
		WHERE tour_id = $1
		ORDER BY position;`
	rows, err := r.conn(ctx).Query(ctx, query, tourID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load hotel stays", err)
	}
	defer rows.Close()

	out := []domain.HotelStay{}
	for rows.Next() {
		var m models.HotelStay
		if err := rows.Scan(
			&m.HotelStayID, &m.TourID, &m.Position, &m.HotelName, &m.CheckIn, &m.CheckOut, &m.ConfirmationNumber,
			&m.Amount, &m.Currency, &m.RateToBase, &m.EffectiveDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan hotel stay", err)
		}
		out = append(out, mapping.ToDomainHotelStay(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating hotel stays", err)
	}
	return out, nil
}

func (r *PgxOrderRepository) findExtraServices(ctx context.Context, tourID string) ([]domain.ExtraService, error) {
	query := `
		SELECT extra_service_id, tour_id, position, description,
		       amount, currency, rate_to_base, effective_date
		FROM extra_services
		WHERE tour_id = $1
		ORDER BY position;`
	rows, err := r.conn(ctx).Query(ctx, query, tourID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load extra services", err)
	}
	defer rows.Close()

	out := []domain.ExtraService{}
	for rows.Next() {
		var m models.ExtraService
		if err := rows.Scan(
			&m.ExtraServiceID, &m.TourID, &m.Position, &m.Description,
			&m.Amount, &m.Currency, &m.RateToBase, &m.EffectiveDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan extra service", err)
		}
		out = append(out, mapping.ToDomainExtraService(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating extra services", err)
	}
	return out, nil
}

func (r *PgxOrderRepository) findPassengers(ctx context.Context, tourID string) ([]domain.Passenger, error) {
	query := `
		SELECT passenger_id, tour_id, position, first_name, last_name, birth_date, document_number, is_primary
		FROM passengers
		WHERE tour_id = $1
		ORDER BY position;`
	rows, err := r.conn(ctx).Query(ctx, query, tourID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load passengers", err)
	}
	defer rows.Close()

	out := []domain.Passenger{}
	for rows.Next() {
		var m models.Passenger
		if err := rows.Scan(
			&m.PassengerID, &m.TourID, &m.Position, &m.FirstName, &m.LastName, &m.BirthDate, &m.DocumentNumber, &m.IsPrimary,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan passenger", err)
		}
		out = append(out, mapping.ToDomainPassenger(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating passengers", err)
	}
	return out, nil
}

func (r *PgxOrderRepository) findPayments(ctx context.Context, orderID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, order_id, bank_name, paid_date, reference, created_at, created_by,
		       amount, currency, rate_to_base, effective_date
		FROM payments
		WHERE order_id = $1
		ORDER BY paid_date, created_at;`
	rows, err := r.conn(ctx).Query(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load payments", err)
	}
	defer rows.Close()

	out := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.OrderID, &m.BankName, &m.PaidDate, &m.Reference, &m.CreatedAt, &m.CreatedBy,
			&m.Amount, &m.Currency, &m.RateToBase, &m.EffectiveDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment", err)
		}
		out = append(out, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payments", err)
	}
	return out, nil
}

// ListOrders returns headers with their party, newest first, using a keyset cursor.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	cols := append(append([]string{}, orderColumns...), prefixed("p", partyColumns)...)
	builder := r.qb.Select(cols...).
		From("orders o").
		Join("parties p ON p.party_id = o.party_id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": string(*filter.Status)})
	}
	if filter.PartyID != nil {
		builder = builder.Where(sq.Eq{"o.party_id": *filter.PartyID})
	}
	if filter.CreatedByID != nil {
		builder = builder.Where(sq.Eq{"o.created_by_id": *filter.CreatedByID})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"o.created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.Lt{"o.created_at": *filter.CreatedTo})
	}
	if filter.OrderNumberPrefix != nil && *filter.OrderNumberPrefix != "" {
		builder = builder.Where(sq.ILike{"o.order_number": *filter.OrderNumberPrefix + "%"})
	}
	if filter.CursorCreatedAt != nil && filter.CursorOrderID != nil {
		builder = builder.Where(sq.Expr("(o.created_at, o.order_id) < (?, ?)", *filter.CursorCreatedAt, *filter.CursorOrderID))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	builder = builder.OrderBy("o.created_at DESC", "o.order_id DESC").Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build order list query", err)
	}

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list orders", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var om models.Order
		var pm models.Party
		if err := rows.Scan(append(orderScanTargets(&om), partyScanTargets(&pm)...)...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order", err)
		}
		order := mapping.ToDomainOrder(om)
		party := mapping.ToDomainParty(pm)
		order.Party = &party
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating orders", err)
	}
	return orders, nil
}

// SaveOrder inserts the tour, its children, the order row and its payments.
// It expects to run inside a transaction started by the caller.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	if order.Tour == nil {
		return apperrors.NewAppError(500, "order "+order.OrderID+" has no tour", nil)
	}
	q := r.conn(ctx)

	tm := mapping.ToModelTour(*order.Tour)
	_, err := q.Exec(ctx, `
		INSERT INTO tours (tour_id, name, start_date, end_date, passenger_count, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		tm.TourID, tm.Name, tm.StartDate, tm.EndDate, tm.PassengerCount, tm.SupplierID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tour", err)
	}

	if err := r.insertTourChildren(ctx, *order.Tour); err != nil {
		return err
	}

	m := mapping.ToModelOrder(order)
	query, args := r.qb.Insert("orders").
		Columns(unprefixed(orderColumns)...).
		Values(
			m.OrderID, m.OrderNumber, m.Status, m.PartyID, m.TourID, m.Source,
			m.SellPriceInBase, m.CreatedByID, m.CreatedByEmail,
			m.AccountingComment, m.AccountingCommentUpdatedAt,
			m.AccountingCommentUpdatedByID, m.AccountingCommentUpdatedByEmail,
			m.BankName, m.AccountHolderFullName, m.IBAN, m.AccountNumber, m.SWIFT, m.BankComment,
			m.Version, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).
		MustSql()
	if _, err := q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("order number " + m.OrderNumber + " already taken")
		}
		return apperrors.NewAppError(500, "failed to insert order", err)
	}

	return r.insertPayments(ctx, order.Payments)
}

// UpdateOrderHeader writes the order row guarded by the version column.
func (r *PgxOrderRepository) UpdateOrderHeader(ctx context.Context, order domain.Order, expectedVersion int64) error {
	m := mapping.ToModelOrder(order)
	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"status":                              m.Status,
			"party_id":                            m.PartyID,
			"source":                              m.Source,
			"sell_price_in_base":                  m.SellPriceInBase,
			"accounting_comment":                  m.AccountingComment,
			"accounting_comment_updated_at":       m.AccountingCommentUpdatedAt,
			"accounting_comment_updated_by_id":    m.AccountingCommentUpdatedByID,
			"accounting_comment_updated_by_email": m.AccountingCommentUpdatedByEmail,
			"bank_name":                           m.BankName,
			"account_holder_full_name":            m.AccountHolderFullName,
			"iban":                                m.IBAN,
			"account_number":                      m.AccountNumber,
			"swift":                               m.SWIFT,
			"bank_comment":                        m.BankComment,
			"version":                             m.Version,
			"last_updated_at":                     m.LastUpdatedAt,
			"last_updated_by":                     m.LastUpdatedBy,
		}).
		Where(sq.Eq{"order_id": m.OrderID, "version": expectedVersion}).
		MustSql()

	cmdTag, err := r.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update order", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, m.OrderID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check order existence", err)
		}
		if !exists {
			return apperrors.NewNotFoundError("order with ID " + m.OrderID + " not found")
		}
		return apperrors.NewConflictError(fmt.Sprintf("order %s was modified concurrently (expected version %d)", m.OrderNumber, expectedVersion))
	}
	return nil
}

// ReplaceTour updates the tour scalars and rebuilds every child collection.
func (r *PgxOrderRepository) ReplaceTour(ctx context.Context, tour domain.Tour) error {
	q := r.conn(ctx)
	tm := mapping.ToModelTour(tour)
	cmdTag, err := q.Exec(ctx, `
		UPDATE tours SET name = $2, start_date = $3, end_date = $4, passenger_count = $5, supplier_id = $6
		WHERE tour_id = $1;`,
		tm.TourID, tm.Name, tm.StartDate, tm.EndDate, tm.PassengerCount, tm.SupplierID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tour", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tour with ID " + tm.TourID + " not found")
	}

	batch := &pgx.Batch{}
	for _, table := range []string{"flight_segments", "hotel_stays", "extra_services", "passengers"} {
		batch.Queue(`DELETE FROM `+table+` WHERE tour_id = $1;`, tm.TourID)
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to clear tour details", err)
	}

	return r.insertTourChildren(ctx, tour)
}

func (r *PgxOrderRepository) insertTourChildren(ctx context.Context, tour domain.Tour) error {
	batch := &pgx.Batch{}
	for i, f := range tour.FlightSegments {
		f.TourID = tour.TourID
		m := mapping.ToModelFlightSegment(f, i)
		batch.Queue(`
			INSERT INTO flight_segments (flight_segment_id, tour_id, position, from_location, to_location, flight_date, pnr,
				amount, currency, rate_to_base, effective_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.FlightSegmentID, m.TourID, m.Position, m.FromLocation, m.ToLocation, m.FlightDate, m.PNR,
			m.Amount, m.Currency, m.RateToBase, m.EffectiveDate,
		)
	}
	for i, h := range tour.HotelStays {
		h.TourID = tour.TourID
		m := mapping.ToModelHotelStay(h, i)
		batch.Queue(`
			INSERT INTO hotel_stays (hotel_stay_id, tour_id, position, hotel_name, check_in, check_out, confirmation_number,
				amount, currency, rate_to_base, effective_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.HotelStayID, m.TourID, m.Position, m.HotelName, m.CheckIn, m.CheckOut, m.ConfirmationNumber,
			m.Amount, m.Currency, m.RateToBase, m.EffectiveDate,
		)
	}
	for i, e := range tour.ExtraServices {
		e.TourID = tour.TourID
		m := mapping.ToModelExtraService(e, i)
		batch.Queue(`
			INSERT INTO extra_services (extra_service_id, tour_id, position, description,
				amount, currency, rate_to_base, effective_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.ExtraServiceID, m.TourID, m.Position, m.Description,
			m.Amount, m.Currency, m.RateToBase, m.EffectiveDate,
		)
	}
	for i, p := range tour.Passengers {
		p.TourID = tour.TourID
		m := mapping.ToModelPassenger(p, i)
		batch.Queue(`
			INSERT INTO passengers (passenger_id, tour_id, position, first_name, last_name, birth_date, document_number, is_primary)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.PassengerID, m.TourID, m.Position, m.FirstName, m.LastName, m.BirthDate, m.DocumentNumber, m.IsPrimary,
		)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := r.conn(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert tour details for tour "+tour.TourID, err)
	}
	return nil
}

// ReplacePayments swaps the payment set of an order.
func (r *PgxOrderRepository) ReplacePayments(ctx context.Context, orderID string, payments []domain.Payment) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM payments WHERE order_id = $1;`, orderID); err != nil {
		return apperrors.NewAppError(500, "failed to clear payments", err)
	}
	return r.insertPayments(ctx, payments)
}

func (r *PgxOrderRepository) insertPayments(ctx context.Context, payments []domain.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range payments {
		queuePaymentInsert(batch, mapping.ToModelPayment(p))
	}
	if err := r.conn(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert payments", err)
	}
	return nil
}

func queuePaymentInsert(batch *pgx.Batch, m models.Payment) {
	batch.Queue(`
		INSERT INTO payments (payment_id, order_id, bank_name, paid_date, reference, created_at, created_by,
			amount, currency, rate_to_base, effective_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.PaymentID, m.OrderID, m.BankName, m.PaidDate, m.Reference, m.CreatedAt, m.CreatedBy,
		m.Amount, m.Currency, m.RateToBase, m.EffectiveDate,
	)
}

func (r *PgxOrderRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return r.insertPayments(ctx, []domain.Payment{payment})
}

func (r *PgxOrderRepository) DeletePayment(ctx context.Context, orderID, paymentID string) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, `DELETE FROM payments WHERE order_id = $1 AND payment_id = $2;`, orderID, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment with ID " + paymentID + " not found")
	}
	return nil
}

// DeleteOrder removes the order row, its payments and its tour. Line items and
// passengers go with the tour through ON DELETE CASCADE.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	q := r.conn(ctx)
	var tourID string
	err := q.QueryRow(ctx, `DELETE FROM orders WHERE order_id = $1 RETURNING tour_id;`, orderID).Scan(&tourID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("order with ID " + orderID + " not found")
		}
		return apperrors.NewAppError(500, "failed to delete order", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM tours WHERE tour_id = $1;`, tourID); err != nil {
		return apperrors.NewAppError(500, "failed to delete tour of order", err)
	}
	return nil
}

func unprefixed(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c[2:]
	}
	return out
}
