// Package identity carries the authenticated caller through the request as an
// explicit value instead of ambient session state. Every service operation
// receives an Actor and decides with it.
package identity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jdcastellanos/granja/internal/domain/models"
)

// Actor is the authenticated identity attached to a request.
type Actor struct {
	UserID primitive.ObjectID
	Name   string
	Role   models.Role
}

// Authenticated reports whether the actor carries a real user identity.
func (a Actor) Authenticated() bool {
	return !a.UserID.IsZero()
}

// Is reports whether the actor holds any of the given roles.
func (a Actor) Is(roles ...models.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

type ctxKey struct{}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext extracts the actor placed by the auth middleware.
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}
