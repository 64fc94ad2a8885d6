package auth

import (
	"context"
	"errors"
)

// RoleReviewer is carried by tokens issued to the review team.
const RoleReviewer = "reviewer"

var ErrUnauthenticated = errors.New("not authenticated")

// User is the current actor as asserted by the identity provider.
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
}

type contextKey struct{}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user, or ErrUnauthenticated when the request carries none.
func FromContext(ctx context.Context) (User, error) {
	u, ok := ctx.Value(contextKey{}).(User)
	if !ok || u.ID == "" {
		return User{}, ErrUnauthenticated
	}

	return u, nil
}
