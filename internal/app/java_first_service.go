package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// javaFirstService implements the echo.JavaFirstService interface.
// It is published behind basic authentication and expects the
// authenticated user in the request context.
type javaFirstService struct {
	logger logger.Logger
}

// NewJavaFirstService creates a new javaFirstService instance
func NewJavaFirstService(logger logger.Logger) (echo.JavaFirstService, error) {
	return &javaFirstService{logger: logger}, nil
}

// Echo returns in followed by the name of the authenticated user
func (s *javaFirstService) Echo(ctx context.Context, in string) (string, error) {
	if strings.TrimSpace(in) == "" {
		return "", echo.ErrInvalidParameter
	}

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return "", auth.ErrUnauthenticated
	}

	s.logger.Info("JavaFirstService echo invoked by ", user.Name)
	return fmt.Sprintf("%s; principal: %s", in, user.Name), nil
}
