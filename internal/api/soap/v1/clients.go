package v1

import (
	"context"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
)

// SimpleClient calls SimpleService
type SimpleClient struct {
	client *soap.Client
}

// NewSimpleClient creates a SimpleClient on client
func NewSimpleClient(client *soap.Client) *SimpleClient {
	return &SimpleClient{client: client}
}

// Echo calls SimpleService.echo
func (c *SimpleClient) Echo(ctx context.Context, input string) (string, error) {
	var resp SimpleEchoResponse
	if err := c.client.Call(ctx, &SimpleEcho{Input: input}, &resp); err != nil {
		return "", clientError(err)
	}
	return resp.Return, nil
}

// JavaFirstClient calls JavaFirstService. Credentials are configured on the soap.Client.
type JavaFirstClient struct {
	client *soap.Client
}

// NewJavaFirstClient creates a JavaFirstClient on client
func NewJavaFirstClient(client *soap.Client) *JavaFirstClient {
	return &JavaFirstClient{client: client}
}

// Echo calls JavaFirstService.echo
func (c *JavaFirstClient) Echo(ctx context.Context, in string) (string, error) {
	var resp JavaFirstEchoResponse
	if err := c.client.Call(ctx, &JavaFirstEcho{In: in}, &resp); err != nil {
		return "", clientError(err)
	}
	return resp.Return, nil
}

// WsdlFirstClient calls WsdlFirstService and implements echo.WsdlFirstAsyncService
type WsdlFirstClient struct {
	client *soap.Client
}

// NewWsdlFirstClient creates a WsdlFirstClient on client
func NewWsdlFirstClient(client *soap.Client) *WsdlFirstClient {
	return &WsdlFirstClient{client: client}
}

// Echo calls WsdlFirstService.Echo
func (c *WsdlFirstClient) Echo(ctx context.Context, value string) (string, error) {
	var resp WsdlFirstEchoResponse
	if err := c.client.Call(ctx, &WsdlFirstEcho{Value: value}, &resp); err != nil {
		return "", clientError(err)
	}
	return resp.Value, nil
}

// NonBlockingEcho calls WsdlFirstService.NonBlockingEcho and waits for the result
func (c *WsdlFirstClient) NonBlockingEcho(ctx context.Context, value string) (string, error) {
	result := <-c.NonBlockingEchoAsync(ctx, value)
	return result.Value, result.Err
}

// NonBlockingEchoAsync calls WsdlFirstService.NonBlockingEcho on a separate goroutine
func (c *WsdlFirstClient) NonBlockingEchoAsync(ctx context.Context, value string) <-chan echo.Result {
	results := make(chan echo.Result, 1)
	pending := soap.CallAsync[NonBlockingEchoResponse](ctx, c.client, &NonBlockingEcho{Value: value})

	go func() {
		defer close(results)
		result := <-pending
		if result.Err != nil {
			results <- echo.Result{Err: clientError(result.Err)}
			return
		}
		results <- echo.Result{Value: result.Response.Value}
	}()
	return results
}

// PersonClient calls HibernateExampleService and implements people.PersonService
type PersonClient struct {
	client *soap.Client
}

// NewPersonClient creates a PersonClient on client
func NewPersonClient(client *soap.Client) *PersonClient {
	return &PersonClient{client: client}
}

// GetPersons calls getPersons
func (c *PersonClient) GetPersons(ctx context.Context) ([]*people.Person, error) {
	var resp GetPersonsResponse
	if err := c.client.Call(ctx, &GetPersons{}, &resp); err != nil {
		return nil, clientError(err)
	}
	persons := make([]*people.Person, 0, len(resp.Persons))
	for i := range resp.Persons {
		persons = append(persons, resp.Persons[i].toDomain())
	}
	return persons, nil
}

// GetPerson calls getPerson
func (c *PersonClient) GetPerson(ctx context.Context, id int64) (*people.Person, error) {
	var resp GetPersonResponse
	if err := c.client.Call(ctx, &GetPerson{ID: id}, &resp); err != nil {
		return nil, clientError(err)
	}
	return resp.Person.toDomain(), nil
}

// CreatePerson calls createPerson
func (c *PersonClient) CreatePerson(ctx context.Context, person *people.Person) (*people.Person, error) {
	var resp CreatePersonResponse
	if err := c.client.Call(ctx, &CreatePerson{Person: personFromDomain(person)}, &resp); err != nil {
		return nil, clientError(err)
	}
	return resp.Person.toDomain(), nil
}

var (
	_ echo.SimpleService         = (*SimpleClient)(nil)
	_ echo.JavaFirstService      = (*JavaFirstClient)(nil)
	_ echo.WsdlFirstAsyncService = (*WsdlFirstClient)(nil)
	_ people.PersonService       = (*PersonClient)(nil)
)
