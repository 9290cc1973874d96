package middleware

import (
	"context"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and actorKey hold the authenticated identity in the request context.
const (
	userIDKey = contextKey("userID")
	actorKey  = contextKey("actor")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetActorFromContext retrieves the authenticated actor from the Gin context.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	return ActorFromCtx(c.Request.Context())
}

// ActorFromCtx retrieves the authenticated actor from a standard context.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok && actor.UserID != ""
}

// WithActor stores the actor, and its user ID, in ctx.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, actorKey, actor)
}
