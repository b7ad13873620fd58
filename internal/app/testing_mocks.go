//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/stretchr/testify/mock"
)

// MockPersonRepository is a mock implementation of people.PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(ctx context.Context, person *people.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) GetByID(ctx context.Context, id int64) (*people.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*people.Person), args.Error(1)
}

func (m *MockPersonRepository) List(ctx context.Context) ([]*people.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*people.Person), args.Error(1)
}
