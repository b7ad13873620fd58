package app

import (
	"context"
	"strings"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// wsdlFirstService implements the echo.WsdlFirstService interface
type wsdlFirstService struct {
	logger logger.Logger
}

// NewWsdlFirstService creates a new wsdlFirstService instance
func NewWsdlFirstService(logger logger.Logger) (echo.WsdlFirstService, error) {
	return &wsdlFirstService{logger: logger}, nil
}

// Echo returns value unchanged, blank values are rejected
func (s *wsdlFirstService) Echo(_ context.Context, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", echo.ErrInvalidParameter
	}
	return value, nil
}

// NonBlockingEcho behaves like Echo. Clients call it asynchronously; the
// server side is an ordinary request/response operation.
func (s *wsdlFirstService) NonBlockingEcho(ctx context.Context, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return "", echo.ErrInvalidParameter
	}
	s.logger.Debug("WsdlFirstService non-blocking echo: ", value)
	return value, nil
}
