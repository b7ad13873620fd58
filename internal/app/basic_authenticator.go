package app

import (
	"context"
	"crypto/subtle"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// basicAuthenticator accepts any username as long as the shared password matches
type basicAuthenticator struct {
	password []byte
	logger   logger.Logger
}

// NewBasicAuthenticator creates an authenticator checking against the configured shared password
func NewBasicAuthenticator(password string, logger logger.Logger) (auth.Authenticator, error) {
	return &basicAuthenticator{
		password: []byte(password),
		logger:   logger,
	}, nil
}

// Authenticate returns a user named after the supplied username when the password matches
func (a *basicAuthenticator) Authenticate(_ context.Context, credentials auth.Credentials) (*auth.User, error) {
	if credentials.Username == "" {
		return nil, nil
	}
	if subtle.ConstantTimeCompare([]byte(credentials.Password), a.password) != 1 {
		a.logger.Warn("Rejected credentials for user ", credentials.Username)
		return nil, nil
	}
	return &auth.User{Name: credentials.Username}, nil
}
