//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/stretchr/testify/mock"
)

// MockWsdlFirstClient is a mock implementation of echo.WsdlFirstAsyncService
type MockWsdlFirstClient struct {
	mock.Mock
}

func (m *MockWsdlFirstClient) Echo(ctx context.Context, value string) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}

func (m *MockWsdlFirstClient) NonBlockingEcho(ctx context.Context, value string) (string, error) {
	args := m.Called(ctx, value)
	return args.String(0), args.Error(1)
}

func (m *MockWsdlFirstClient) NonBlockingEchoAsync(ctx context.Context, value string) <-chan echo.Result {
	args := m.Called(ctx, value)
	results := make(chan echo.Result, 1)
	results <- echo.Result{Value: args.String(0), Err: args.Error(1)}
	close(results)
	return results
}

// MockJavaFirstClient is a mock implementation of echo.JavaFirstService
type MockJavaFirstClient struct {
	mock.Mock
}

func (m *MockJavaFirstClient) Echo(ctx context.Context, in string) (string, error) {
	args := m.Called(ctx, in)
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
