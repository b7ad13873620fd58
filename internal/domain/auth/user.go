// Package auth contains the principal and authenticator types shared by
// the protected web services and the HTTP basic authentication layer.
package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned when an operation requires a user but none is attached to the context
var ErrUnauthenticated = errors.New("no authenticated user")

// User is the principal resolved from a successful authentication.
type User struct {
	Name string
}

// Credentials are the username and password extracted from a request.
type Credentials struct {
	Username string
	Password string
}

// Authenticator resolves credentials to a user. A nil user with a nil
// error means the credentials were rejected.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials Credentials) (*User, error)
}

type userKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user attached by WithUser.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey{}).(*User)
	return user, ok && user != nil
}
