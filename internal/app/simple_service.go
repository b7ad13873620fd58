package app

import (
	"context"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// simpleService implements the echo.SimpleService interface
type simpleService struct {
	logger logger.Logger
}

// NewSimpleService creates a new simpleService instance
func NewSimpleService(logger logger.Logger) (echo.SimpleService, error) {
	return &simpleService{logger: logger}, nil
}

// Echo returns input unchanged
func (s *simpleService) Echo(_ context.Context, input string) (string, error) {
	s.logger.Debug("SimpleService echo: ", input)
	return input, nil
}
