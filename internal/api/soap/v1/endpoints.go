package v1

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
)

// Paths of the endpoints relative to the bundle base path
const (
	SimplePath    = "/simple"
	JavaFirstPath = "/javafirst"
	WsdlFirstPath = "/wsdlfirst"
	HibernatePath = "/hibernate"
)

//go:embed wsdl/WsdlFirstService.wsdl
var wsdlFirstDocument []byte

// NewSimpleEndpoint publishes SimpleService without any security
func NewSimpleEndpoint(service echo.SimpleService) *soap.Endpoint {
	return soap.NewEndpoint(SimplePath, &soap.Service{
		Name:      "SimpleService",
		Namespace: SimpleServiceNamespace,
		Operations: []soap.Operation{
			soap.NewOperation("echo", func(ctx context.Context, req *SimpleEcho) (*SimpleEchoResponse, error) {
				out, err := service.Echo(ctx, req.Input)
				if err != nil {
					return nil, err
				}
				return &SimpleEchoResponse{Return: out}, nil
			}),
		},
	})
}

// NewJavaFirstEndpoint publishes JavaFirstService behind basic authentication
func NewJavaFirstEndpoint(service echo.JavaFirstService, authentication *soap.BasicAuthentication) *soap.Endpoint {
	return soap.NewEndpoint(JavaFirstPath, &soap.Service{
		Name:      "JavaFirstService",
		Namespace: JavaFirstServiceNamespace,
		Operations: []soap.Operation{
			soap.NewOperation("echo", func(ctx context.Context, req *JavaFirstEcho) (*JavaFirstEchoResponse, error) {
				out, err := service.Echo(ctx, req.In)
				if err != nil {
					return nil, javaFirstFault(err)
				}
				return &JavaFirstEchoResponse{Return: out}, nil
			}),
		},
	}, soap.WithAuthentication(authentication))
}

// NewWsdlFirstEndpoint publishes WsdlFirstService from its WSDL document with
// logging interceptors and the server side handler
func NewWsdlFirstEndpoint(service echo.WsdlFirstService, log logger.Logger) *soap.Endpoint {
	return soap.NewEndpoint(WsdlFirstPath, &soap.Service{
		Name:      "WsdlFirstService",
		Namespace: WsdlFirstServiceNamespace,
		Document:  wsdlFirstDocument,
		Operations: []soap.Operation{
			soap.NewOperation("Echo", func(ctx context.Context, req *WsdlFirstEcho) (*WsdlFirstEchoResponse, error) {
				out, err := service.Echo(ctx, req.Value)
				if err != nil {
					return nil, wsdlFirstFault(err)
				}
				return &WsdlFirstEchoResponse{Value: out}, nil
			}),
			soap.NewOperation("NonBlockingEcho", func(ctx context.Context, req *NonBlockingEcho) (*NonBlockingEchoResponse, error) {
				out, err := service.NonBlockingEcho(ctx, req.Value)
				if err != nil {
					return nil, wsdlFirstFault(err)
				}
				return &NonBlockingEchoResponse{Value: out}, nil
			}),
		},
	},
		soap.WithInInterceptors(soap.NewLoggingInInterceptor(log)),
		soap.WithOutInterceptors(soap.NewLoggingOutInterceptor(log)),
		soap.WithHandlers(NewWsdlFirstServiceHandler(log)),
	)
}

// NewHibernateEndpoint publishes the person operations. Every call runs in uow.
func NewHibernateEndpoint(service people.PersonService, uow soap.UnitOfWork) *soap.Endpoint {
	return soap.NewEndpoint(HibernatePath, &soap.Service{
		Name:      "HibernateExampleService",
		Namespace: HibernateServiceNamespace,
		Operations: []soap.Operation{
			soap.NewOperation("getPersons", func(ctx context.Context, _ *GetPersons) (*GetPersonsResponse, error) {
				persons, err := service.GetPersons(ctx)
				if err != nil {
					return nil, err
				}
				resp := &GetPersonsResponse{Persons: make([]Person, 0, len(persons))}
				for _, p := range persons {
					resp.Persons = append(resp.Persons, personFromDomain(p))
				}
				return resp, nil
			}),
			soap.NewOperation("getPerson", func(ctx context.Context, req *GetPerson) (*GetPersonResponse, error) {
				person, err := service.GetPerson(ctx, req.ID)
				if err != nil {
					return nil, personFault(err, req.ID)
				}
				return &GetPersonResponse{Person: personFromDomain(person)}, nil
			}),
			soap.NewOperation("createPerson", func(ctx context.Context, req *CreatePerson) (*CreatePersonResponse, error) {
				person, err := service.CreatePerson(ctx, req.Person.toDomain())
				if err != nil {
					return nil, personFault(err, req.Person.ID)
				}
				return &CreatePersonResponse{Person: personFromDomain(person)}, nil
			}),
		},
	}, soap.WithUnitOfWork(uow))
}

// Services groups what SetupEndpoints publishes
type Services struct {
	Simple         echo.SimpleService
	JavaFirst      echo.JavaFirstService
	WsdlFirst      echo.WsdlFirstService
	Persons        people.PersonService
	Authentication *soap.BasicAuthentication
	UnitOfWork     soap.UnitOfWork
}

// SetupEndpoints publishes all example endpoints on bundle
func SetupEndpoints(bundle *soap.Bundle, services Services, log logger.Logger) error {
	endpoints := []*soap.Endpoint{
		NewSimpleEndpoint(services.Simple),
		NewJavaFirstEndpoint(services.JavaFirst, services.Authentication),
		NewWsdlFirstEndpoint(services.WsdlFirst, log),
		NewHibernateEndpoint(services.Persons, services.UnitOfWork),
	}
	for _, endpoint := range endpoints {
		if err := bundle.PublishEndpoint(endpoint); err != nil {
			return fmt.Errorf("failed to set up %s: %w", endpoint.Path(), err)
		}
	}
	return nil
}
