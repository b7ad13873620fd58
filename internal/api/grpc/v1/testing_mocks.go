//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/stretchr/testify/mock"
)

// MockSimpleService is a mock implementation of echo.SimpleService
type MockSimpleService struct {
	mock.Mock
}

func (m *MockSimpleService) Echo(ctx context.Context, input string) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockPersonService is a mock implementation of people.PersonService
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) GetPersons(ctx context.Context) ([]*people.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*people.Person), args.Error(1)
}

func (m *MockPersonService) GetPerson(ctx context.Context, id int64) (*people.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.Person), args.Error(1)
}

func (m *MockPersonService) CreatePerson(ctx context.Context, person *people.Person) (*people.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.Person), args.Error(1)
}
