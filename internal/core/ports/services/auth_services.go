package services

import (
	"context"
	"time"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT carrying the user's id, email and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
