// Package policy decides whether an actor may perform an operation.
// Every rule lives in one table so the full role matrix can be read in one place.
package policy

import (
	"fmt"

	"github.com/SscSPs/tour_orders_app/internal/apperrors"
	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// Operation identifies a guarded action.
type Operation string

const (
	OpCreateOrder             Operation = "create order"
	OpEditOrder               Operation = "edit order"
	OpCloseOrder              Operation = "close order"
	OpReopenOrder             Operation = "reopen order"
	OpManagePayments          Operation = "manage payments"
	OpDeleteOrder             Operation = "delete order"
	OpViewOrder               Operation = "view order"
	OpUpdateAccountingComment Operation = "update accounting comment"
	OpViewExchangeRates       Operation = "view exchange rates"
	OpManageExchangeRates     Operation = "manage exchange rates"
	OpViewDirectory           Operation = "view directory"
	OpManageDirectory         Operation = "manage directory"
	OpManageUsers             Operation = "manage users"
)

// Access is the outcome of a matrix cell.
type Access int

const (
	Denied Access = iota
	Allowed
	OwnOnly
)

// Target describes the order an operation touches. The zero value means no order.
type Target struct {
	OwnerID string
	Status  domain.OrderStatus
}

// OrderTarget builds the Target for an existing order.
func OrderTarget(o domain.Order) Target {
	return Target{OwnerID: o.CreatedByID, Status: o.Status}
}

type rule struct {
	open   map[domain.Role]Access
	closed map[domain.Role]Access // nil: same as open
}

var (
	everyone = map[domain.Role]Access{
		domain.RoleEmployee:   Allowed,
		domain.RoleAccountant: Allowed,
		domain.RoleSupervisor: Allowed,
	}
	finance = map[domain.Role]Access{
		domain.RoleAccountant: Allowed,
		domain.RoleSupervisor: Allowed,
	}
	supervisorOnly = map[domain.Role]Access{
		domain.RoleSupervisor: Allowed,
	}
)

var matrix = map[Operation]rule{
	OpCreateOrder: {open: map[domain.Role]Access{
		domain.RoleEmployee:   Allowed,
		domain.RoleSupervisor: Allowed,
	}},
	OpEditOrder: {
		open: map[domain.Role]Access{
			domain.RoleEmployee:   OwnOnly,
			domain.RoleAccountant: Allowed,
			domain.RoleSupervisor: Allowed,
		},
		closed: finance,
	},
	OpCloseOrder:     {open: finance},
	OpReopenOrder:    {open: supervisorOnly},
	OpManagePayments: {open: finance},
	OpDeleteOrder:    {open: finance},
	OpViewOrder: {open: map[domain.Role]Access{
		domain.RoleEmployee:   OwnOnly,
		domain.RoleAccountant: Allowed,
		domain.RoleSupervisor: Allowed,
	}},
	OpUpdateAccountingComment: {open: finance},
	OpViewExchangeRates:       {open: everyone},
	OpManageExchangeRates:     {open: finance},
	OpViewDirectory:           {open: everyone},
	OpManageDirectory:         {open: finance},
	OpManageUsers:             {open: supervisorOnly},
}

// Lookup returns the raw matrix cell for op, role and order status.
func Lookup(op Operation, role domain.Role, status domain.OrderStatus) Access {
	r, ok := matrix[op]
	if !ok {
		return Denied
	}
	cells := r.open
	if status == domain.OrderStatusClosed && r.closed != nil {
		cells = r.closed
	}
	return cells[role]
}

// Authorize returns nil when actor may perform op on target, otherwise an error
// wrapping apperrors.ErrUnauthorized.
func Authorize(actor domain.Actor, op Operation, target Target) error {
	if actor.UserID == "" {
		return fmt.Errorf("%w: anonymous actor may not %s", apperrors.ErrUnauthorized, op)
	}
	switch Lookup(op, actor.Role, target.Status) {
	case Allowed:
		return nil
	case OwnOnly:
		if target.OwnerID != "" && target.OwnerID == actor.UserID {
			return nil
		}
		return fmt.Errorf("%w: %s may only %s for their own orders", apperrors.ErrUnauthorized, roleName(actor.Role), op)
	default:
		if target.Status == domain.OrderStatusClosed {
			return fmt.Errorf("%w: %s may not %s while the order is closed", apperrors.ErrUnauthorized, roleName(actor.Role), op)
		}
		return fmt.Errorf("%w: %s may not %s", apperrors.ErrUnauthorized, roleName(actor.Role), op)
	}
}

// ScopeOrderFilter restricts a listing to what actor may see.
func ScopeOrderFilter(actor domain.Actor, filter domain.OrderFilter) (domain.OrderFilter, error) {
	if actor.UserID == "" {
		return filter, fmt.Errorf("%w: anonymous actor may not %s", apperrors.ErrUnauthorized, OpViewOrder)
	}
	switch Lookup(OpViewOrder, actor.Role, domain.OrderStatusOpen) {
	case Allowed:
		return filter, nil
	case OwnOnly:
		owner := actor.UserID
		filter.CreatedByID = &owner
		return filter, nil
	default:
		return filter, fmt.Errorf("%w: %s may not %s", apperrors.ErrUnauthorized, roleName(actor.Role), OpViewOrder)
	}
}

func roleName(r domain.Role) string {
	if r == "" {
		return "unknown role"
	}
	return string(r)
}
