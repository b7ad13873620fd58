package soap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
)

// BasicAuthentication resolves HTTP basic credentials through an Authenticator
type BasicAuthentication struct {
	authenticator auth.Authenticator
	realm         string
}

// NewBasicAuthentication creates a BasicAuthentication challenging clients with realm
func NewBasicAuthentication(authenticator auth.Authenticator, realm string) *BasicAuthentication {
	return &BasicAuthentication{authenticator: authenticator, realm: realm}
}

// Realm returns the protection space announced in WWW-Authenticate
func (b *BasicAuthentication) Realm() string {
	return b.realm
}

func (b *BasicAuthentication) challenge() string {
	return fmt.Sprintf("Basic realm=%q", b.realm)
}

// authenticate returns nil without error when the request carries no or bad credentials.
// Authenticators may reject credentials either way: a nil user or auth.ErrUnauthenticated.
func (b *BasicAuthentication) authenticate(ctx context.Context, r *http.Request) (*auth.User, error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return nil, nil
	}
	user, err := b.authenticator.Authenticate(ctx, auth.Credentials{Username: username, Password: password})
	if errors.Is(err, auth.ErrUnauthenticated) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate %s: %w", username, err)
	}
	return user, nil
}

// PrincipalFromContext returns the user authenticated for the current SOAP request
func PrincipalFromContext(ctx context.Context) (*auth.User, bool) {
	return auth.UserFromContext(ctx)
}
