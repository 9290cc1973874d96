package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/SscSPs/tour_orders_app/internal/core/policy"
	"github.com/SscSPs/tour_orders_app/internal/core/ports/publishers"
	portsrepo "github.com/SscSPs/tour_orders_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/SscSPs/tour_orders_app/internal/utils/accounting"
	"github.com/SscSPs/tour_orders_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultOrderPageSize  = 20
	defaultPublishTimeout = 5 * time.Second
)

// orderService implements the OrderSvcFacade interface
type orderService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	orderRepo    portsrepo.OrderRepositoryFacade
	numberRepo   portsrepo.OrderNumberRepository
	partyRepo    portsrepo.PartyRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	rates        portssvc.ExchangeRateResolver
	publisher    publishers.OrderEventPublisher

	publishTimeout time.Duration
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderEventPublisher publishes committed order changes through p.
func WithOrderEventPublisher(p publishers.OrderEventPublisher) OrderServiceOption {
	return func(s *orderService) {
		s.publisher = p
	}
}

// WithPublishTimeout bounds how long a request waits for the broker after its change committed.
func WithPublishTimeout(d time.Duration) OrderServiceOption {
	return func(s *orderService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates the order aggregate service.
func NewOrderService(repos portsrepo.RepositoryProvider, rates portssvc.ExchangeRateResolver, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		txManager:    repos.TxManager,
		orderRepo:    repos.OrderRepo,
		numberRepo:   repos.OrderNumberRepo,
		partyRepo:    repos.PartyRepo,
		supplierRepo: repos.SupplierRepo,
		rates:        rates,

		publishTimeout: defaultPublishTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder builds a new OPEN order, reusing the customer and supplier when their
// natural keys already exist.
func (s *orderService) CreateOrder(ctx context.Context, actor domain.Actor, req dto.OrderRequest) (*domain.Order, error) {
	if err := policy.Authorize(actor, policy.OpCreateOrder, policy.Target{}); err != nil {
		return nil, err
	}

	now := s.Now()
	draft, err := s.buildDraft(ctx, req, actor, now)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderID:         uuid.NewString(),
		Status:          domain.OrderStatusOpen,
		Source:          draft.source,
		SellPriceInBase: draft.sellPrice,
		CreatedByID:     actor.UserID,
		CreatedByEmail:  actor.Email,
		BankRequisites:  draft.bankRequisites,
		Version:         1,
		AuditFields:     domain.NewAuditFields(actor.UserID, now),
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		party, err := s.resolveParty(txCtx, draft.party, actor, now)
		if err != nil {
			return err
		}
		supplier, err := s.resolveSupplier(txCtx, draft.supplier, actor, now)
		if err != nil {
			return err
		}
		number, err := s.nextOrderNumber(txCtx, now)
		if err != nil {
			return err
		}

		tour := draft.tour
		tour.SupplierID = supplier.SupplierID
		tour.Supplier = supplier

		order.OrderNumber = number
		order.PartyID = party.PartyID
		order.Party = party
		order.TourID = tour.TourID
		order.Tour = &tour
		order.Payments = paymentsFor(order.OrderID, draft.payments)

		return s.orderRepo.SaveOrder(txCtx, order)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create order", slog.String("user_id", actor.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_number", order.OrderNumber))
	s.publish(ctx, domain.OrderEventCreated, order, actor)
	return &order, nil
}

// EditOrder replaces the whole order with the submitted state. Tour children and payments
// are rebuilt from scratch and the order row is written only if its version is unchanged.
func (s *orderService) EditOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.EditOrderRequest) (*domain.Order, error) {
	now := s.Now()
	var updated domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.OpEditOrder, policy.OrderTarget(*current)); err != nil {
			return err
		}
		// the payload is only validated and priced for actors allowed to edit
		draft, err := s.buildDraft(txCtx, req.OrderRequest, actor, now)
		if err != nil {
			return err
		}
		if req.ExpectedVersion != nil && *req.ExpectedVersion != current.Version {
			return apperrors.NewConflictError(fmt.Sprintf("order %s was modified: expected version %d, found %d",
				current.OrderNumber, *req.ExpectedVersion, current.Version))
		}
		if current.Tour == nil {
			return fmt.Errorf("%w: order %s has no tour", apperrors.ErrInternal, orderID)
		}

		party, err := s.reconcileParty(txCtx, current.OrderID, current.Party, draft.party, actor, now)
		if err != nil {
			return err
		}
		supplier, err := s.resolveSupplier(txCtx, draft.supplier, actor, now)
		if err != nil {
			return err
		}

		tour := *current.Tour
		tour.ReplaceDetails(draft.tour)
		tour.SupplierID = supplier.SupplierID
		tour.Supplier = supplier
		s.rebuildChildren(txCtx, &tour, draft.tour)
		if err := s.orderRepo.ReplaceTour(txCtx, tour); err != nil {
			return fmt.Errorf("failed to rebuild tour: %w", err)
		}

		payments := paymentsFor(current.OrderID, draft.payments)
		if err := s.orderRepo.ReplacePayments(txCtx, current.OrderID, payments); err != nil {
			return fmt.Errorf("failed to rebuild payments: %w", err)
		}

		updated = *current
		updated.Source = draft.source
		updated.SellPriceInBase = draft.sellPrice
		updated.BankRequisites = draft.bankRequisites
		updated.PartyID = party.PartyID
		updated.Party = party
		updated.Tour = &tour
		updated.Payments = payments
		if err := s.commitHeader(txCtx, &updated, current.Version, actor, now); err != nil {
			return err
		}

		if current.PartyID != party.PartyID {
			return s.collectParty(txCtx, current.PartyID)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to edit order", slog.String("order_id", orderID))
		return nil, err
	}

	s.LogInfo(ctx, "Order edited",
		slog.String("order_id", updated.OrderID),
		slog.Int64("version", updated.Version))
	s.publish(ctx, domain.OrderEventEdited, updated, actor)
	return &updated, nil
}

// rebuildChildren installs desired's children on tour and logs the teardown plan.
func (s *orderService) rebuildChildren(ctx context.Context, tour *domain.Tour, desired domain.Tour) {
	removedFlights, addedFlights := domain.ReconcileChildren(tour.FlightSegments, desired.FlightSegments)
	removedHotels, addedHotels := domain.ReconcileChildren(tour.HotelStays, desired.HotelStays)
	removedExtras, addedExtras := domain.ReconcileChildren(tour.ExtraServices, desired.ExtraServices)
	removedPassengers, addedPassengers := domain.ReconcileChildren(tour.Passengers, desired.Passengers)

	tour.FlightSegments = addedFlights
	tour.HotelStays = addedHotels
	tour.ExtraServices = addedExtras
	tour.Passengers = addedPassengers
	attachTour(tour)

	s.LogDebug(ctx, "Rebuilding tour children",
		slog.String("tour_id", tour.TourID),
		slog.Int("flights_removed", len(removedFlights)),
		slog.Int("flights_added", len(addedFlights)),
		slog.Int("hotels_removed", len(removedHotels)),
		slog.Int("hotels_added", len(addedHotels)),
		slog.Int("extras_removed", len(removedExtras)),
		slog.Int("extras_added", len(addedExtras)),
		slog.Int("passengers_removed", len(removedPassengers)),
		slog.Int("passengers_added", len(addedPassengers)))
}

// ChangeStatus closes an OPEN order or, when status is OPEN, reopens a CLOSED one.
func (s *orderService) ChangeStatus(ctx context.Context, actor domain.Actor, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	op := policy.OpCloseOrder
	switch status {
	case domain.OrderStatusClosed:
	case domain.OrderStatusOpen:
		op = policy.OpReopenOrder
	default:
		return nil, validationf("unknown order status %q", status)
	}

	now := s.Now()
	var updated domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, op, policy.OrderTarget(*current)); err != nil {
			return err
		}
		if current.Status == status {
			return validationf("order %s is already %s", current.OrderNumber, status)
		}

		updated = *current
		updated.Status = status
		return s.commitHeader(txCtx, &updated, current.Version, actor, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to change order status",
			slog.String("order_id", orderID),
			slog.String("status", string(status)))
		return nil, err
	}

	s.LogInfo(ctx, "Order status changed",
		slog.String("order_id", updated.OrderID),
		slog.String("status", string(updated.Status)))
	s.publish(ctx, domain.OrderEventStatusChanged, updated, actor)
	return &updated, nil
}

// DeleteOrder removes the order with its tour, line items and payments. The customer is
// removed too when no other order references it.
func (s *orderService) DeleteOrder(ctx context.Context, actor domain.Actor, orderID string) error {
	var deleted domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.OpDeleteOrder, policy.OrderTarget(*current)); err != nil {
			return err
		}
		if err := s.orderRepo.DeleteOrder(txCtx, current.OrderID); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		deleted = *current
		return s.collectParty(txCtx, current.PartyID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete order", slog.String("order_id", orderID))
		return err
	}

	s.LogInfo(ctx, "Order deleted",
		slog.String("order_id", deleted.OrderID),
		slog.String("order_number", deleted.OrderNumber))
	s.publish(ctx, domain.OrderEventDeleted, deleted, actor)
	return nil
}

// UpdateAccountingComment replaces the accounting note of an order.
func (s *orderService) UpdateAccountingComment(ctx context.Context, actor domain.Actor, orderID string, req dto.UpdateAccountingCommentRequest) (*domain.Order, error) {
	now := s.Now()
	var updated domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.OpUpdateAccountingComment, policy.OrderTarget(*current)); err != nil {
			return err
		}

		updated = *current
		updated.Comment = &domain.AccountingComment{
			Text:           req.Comment,
			UpdatedAt:      now,
			UpdatedByID:    actor.UserID,
			UpdatedByEmail: actor.Email,
		}
		return s.commitHeader(txCtx, &updated, current.Version, actor, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update accounting comment", slog.String("order_id", orderID))
		return nil, err
	}
	return &updated, nil
}

// AddPayment records a customer installment.
func (s *orderService) AddPayment(ctx context.Context, actor domain.Actor, orderID string, req dto.PaymentRequest) (*domain.Order, error) {
	now := s.Now()
	var (
		updated domain.Order
		payment domain.Payment
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.OpManagePayments, policy.OrderTarget(*current)); err != nil {
			return err
		}
		payment, err = s.buildPayment(txCtx, req, actor, now)
		if err != nil {
			return err
		}

		payment.OrderID = current.OrderID
		if err := s.orderRepo.SavePayment(txCtx, payment); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}

		updated = *current
		updated.Payments = append(append([]domain.Payment(nil), current.Payments...), payment)
		return s.commitHeader(txCtx, &updated, current.Version, actor, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add payment", slog.String("order_id", orderID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment added",
		slog.String("order_id", orderID),
		slog.String("payment_id", payment.PaymentID))
	s.publish(ctx, domain.OrderEventPaymentAdded, updated, actor)
	return &updated, nil
}

// RemovePayment deletes one installment of an order.
func (s *orderService) RemovePayment(ctx context.Context, actor domain.Actor, orderID string, paymentID string) (*domain.Order, error) {
	now := s.Now()
	var updated domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.findOrder(txCtx, orderID)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, policy.OpManagePayments, policy.OrderTarget(*current)); err != nil {
			return err
		}
		idx := current.FindPayment(paymentID)
		if idx < 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("payment %s not found on order %s", paymentID, current.OrderNumber))
		}
		if err := s.orderRepo.DeletePayment(txCtx, current.OrderID, paymentID); err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}

		updated = *current
		remaining := make([]domain.Payment, 0, len(current.Payments)-1)
		remaining = append(remaining, current.Payments[:idx]...)
		updated.Payments = append(remaining, current.Payments[idx+1:]...)
		return s.commitHeader(txCtx, &updated, current.Version, actor, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove payment",
			slog.String("order_id", orderID),
			slog.String("payment_id", paymentID))
		return nil, err
	}

	s.publish(ctx, domain.OrderEventPaymentRemoved, updated, actor)
	return &updated, nil
}

// GetOrder returns the full order graph.
func (s *orderService) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.OpViewOrder, policy.OrderTarget(*order)); err != nil {
		return nil, err
	}
	return order, nil
}

// GetFinancialSummary derives the order's figures in the base currency from its current state.
func (s *orderService) GetFinancialSummary(ctx context.Context, actor domain.Actor, orderID string) (*domain.FinancialSummary, error) {
	order, err := s.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	summary, err := accounting.Summarize(ctx, *order, s.rates)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize order", slog.String("order_id", orderID))
		return nil, err
	}
	return &summary, nil
}

// ListOrders returns a page of orders visible to the actor, newest first.
func (s *orderService) ListOrders(ctx context.Context, actor domain.Actor, params dto.ListOrdersParams) (*dto.ListOrdersResponse, error) {
	filter := domain.OrderFilter{
		PartyID:           params.PartyID,
		CreatedByID:       params.CreatedByID,
		CreatedFrom:       params.CreatedFrom,
		CreatedTo:         params.CreatedTo,
		OrderNumberPrefix: params.OrderNumberPrefix,
	}
	if params.Status != nil {
		status, ok := domain.ParseOrderStatus(*params.Status)
		if !ok {
			return nil, validationf("unknown order status %q", *params.Status)
		}
		filter.Status = &status
	}
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, lastID, err := pagination.DecodeOrderCursor(*params.NextToken)
		if err != nil {
			return nil, validationf("invalid next token")
		}
		filter.CursorCreatedAt = &createdAt
		filter.CursorOrderID = &lastID
	}

	filter, err := policy.ScopeOrderFilter(actor, filter)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	// One extra row tells whether another page exists.
	filter.Limit = limit + 1

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var nextToken *string
	if len(orders) > limit {
		orders = orders[:limit]
		last := orders[len(orders)-1]
		token := pagination.EncodeOrderCursor(last.CreatedAt, last.OrderID)
		nextToken = &token
	}

	resp := dto.ToListOrdersResponse(orders, nextToken)
	return &resp, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	return order, nil
}

// commitHeader bumps the version and writes the order row on expectedVersion.
func (s *orderService) commitHeader(ctx context.Context, order *domain.Order, expectedVersion int64, actor domain.Actor, now time.Time) error {
	order.Version = expectedVersion + 1
	order.Touch(actor.UserID, now)
	if err := s.orderRepo.UpdateOrderHeader(ctx, *order, expectedVersion); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}
	return nil
}

func (s *orderService) nextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	year := now.Year()
	seq, err := s.numberRepo.NextOrderSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to allocate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%04d", year, seq), nil
}

// resolveParty reuses the stored customer with the same natural key, refreshing its
// contact details, or creates a new one.
func (s *orderService) resolveParty(ctx context.Context, desired domain.Party, actor domain.Actor, now time.Time) (*domain.Party, error) {
	existing, err := s.partyRepo.FindMatchingParty(ctx, desired)
	switch {
	case err == nil:
		return s.updateParty(ctx, *existing, desired, actor, now)
	case errors.Is(err, apperrors.ErrNotFound):
		return s.createParty(ctx, desired, actor, now)
	default:
		return nil, fmt.Errorf("failed to look up party: %w", err)
	}
}

// reconcileParty decides which customer an edited order points at. Another stored party
// with the desired natural key wins. Otherwise a party of the same kind is updated in
// place unless another order references it; a shared party or a change of kind gets a
// new party so the other orders keep their customer as recorded.
func (s *orderService) reconcileParty(ctx context.Context, orderID string, current *domain.Party, desired domain.Party, actor domain.Actor, now time.Time) (*domain.Party, error) {
	match, err := s.partyRepo.FindMatchingParty(ctx, desired)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up party: %w", err)
	}

	switch {
	case match != nil:
		return s.updateParty(ctx, *match, desired, actor, now)
	case current != nil && current.Kind == desired.Kind:
		shared, err := s.partyRepo.IsPartyReferencedElsewhere(ctx, current.PartyID, orderID)
		if err != nil {
			return nil, fmt.Errorf("failed to check references of party %s: %w", current.PartyID, err)
		}
		if shared {
			s.LogDebug(ctx, "Party is shared with other orders, creating a new one",
				slog.String("party_id", current.PartyID),
				slog.String("order_id", orderID))
			return s.createParty(ctx, desired, actor, now)
		}
		return s.updateParty(ctx, *current, desired, actor, now)
	default:
		return s.createParty(ctx, desired, actor, now)
	}
}

func (s *orderService) updateParty(ctx context.Context, stored, desired domain.Party, actor domain.Actor, now time.Time) (*domain.Party, error) {
	stored.ApplyDetails(desired)
	stored.Touch(actor.UserID, now)
	if err := s.partyRepo.UpdateParty(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to update party %s: %w", stored.PartyID, err)
	}
	return &stored, nil
}

func (s *orderService) createParty(ctx context.Context, desired domain.Party, actor domain.Actor, now time.Time) (*domain.Party, error) {
	desired.PartyID = uuid.NewString()
	desired.AuditFields = domain.NewAuditFields(actor.UserID, now)
	if err := s.partyRepo.SaveParty(ctx, desired); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}
	return &desired, nil
}

// collectParty removes a customer no order references any more.
func (s *orderService) collectParty(ctx context.Context, partyID string) error {
	removed, err := s.partyRepo.DeletePartyIfUnreferenced(ctx, partyID)
	if err != nil {
		return fmt.Errorf("failed to remove unreferenced party %s: %w", partyID, err)
	}
	if removed {
		s.LogDebug(ctx, "Removed unreferenced party", slog.String("party_id", partyID))
	}
	return nil
}

// resolveSupplier reuses the supplier with the same name and contact email or creates one.
func (s *orderService) resolveSupplier(ctx context.Context, desired domain.Supplier, actor domain.Actor, now time.Time) (*domain.Supplier, error) {
	existing, err := s.supplierRepo.FindMatchingSupplier(ctx, desired)
	switch {
	case err == nil:
		if desired.Phone != nil && (existing.Phone == nil || *existing.Phone != *desired.Phone) {
			existing.Phone = desired.Phone
			existing.Touch(actor.UserID, now)
			if err := s.supplierRepo.UpdateSupplier(ctx, *existing); err != nil {
				return nil, fmt.Errorf("failed to update supplier %s: %w", existing.SupplierID, err)
			}
		}
		return existing, nil
	case errors.Is(err, apperrors.ErrNotFound):
		desired.SupplierID = uuid.NewString()
		desired.AuditFields = domain.NewAuditFields(actor.UserID, now)
		if err := s.supplierRepo.SaveSupplier(ctx, desired); err != nil {
			return nil, fmt.Errorf("failed to create supplier: %w", err)
		}
		return &desired, nil
	default:
		return nil, fmt.Errorf("failed to look up supplier: %w", err)
	}
}

// publish emits an event for a committed change. Delivery failures never fail the operation.
func (s *orderService) publish(ctx context.Context, eventType domain.OrderEventType, order domain.Order, actor domain.Actor) {
	if s.publisher == nil {
		return
	}
	event := domain.NewOrderEvent(eventType, order, actor, s.Now())

	// the change is committed, so a cancelled request must not abort delivery
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishOrderEvent(pubCtx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish order event",
			slog.String("order_id", order.OrderID),
			slog.String("event_type", string(eventType)))
	}
}
