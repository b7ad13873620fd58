package soap

import (
	"context"
	"fmt"
	"strings"
)

// UnitOfWork runs fn inside a transaction. Implementations pass the
// transaction on to fn through the returned context and commit when fn
// returns nil.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// Endpoint is a Service published at a path of the Bundle
type Endpoint struct {
	path            string
	service         *Service
	auth            *BasicAuthentication
	inInterceptors  []Interceptor
	outInterceptors []Interceptor
	handlers        []Interceptor
	unitOfWork      UnitOfWork
}

// EndpointOption configures an Endpoint
type EndpointOption func(*Endpoint)

// WithAuthentication protects the endpoint with HTTP basic authentication
func WithAuthentication(auth *BasicAuthentication) EndpointOption {
	return func(e *Endpoint) {
		e.auth = auth
	}
}

// WithInInterceptors appends interceptors run on every request before dispatch
func WithInInterceptors(interceptors ...Interceptor) EndpointOption {
	return func(e *Endpoint) {
		e.inInterceptors = append(e.inInterceptors, interceptors...)
	}
}

// WithOutInterceptors appends interceptors run on every response before it is written
func WithOutInterceptors(interceptors ...Interceptor) EndpointOption {
	return func(e *Endpoint) {
		e.outInterceptors = append(e.outInterceptors, interceptors...)
	}
}

// WithHandlers appends to the handler chain. Handlers see requests after the
// in-interceptors in order, and responses before the out-interceptors in
// reverse order.
func WithHandlers(handlers ...Interceptor) EndpointOption {
	return func(e *Endpoint) {
		e.handlers = append(e.handlers, handlers...)
	}
}

// WithUnitOfWork runs every operation of the endpoint inside uow
func WithUnitOfWork(uow UnitOfWork) EndpointOption {
	return func(e *Endpoint) {
		e.unitOfWork = uow
	}
}

// NewEndpoint creates an endpoint serving service at path, relative to the bundle base path
func NewEndpoint(path string, service *Service, opts ...EndpointOption) *Endpoint {
	e := &Endpoint{path: path, service: service}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the path relative to the bundle base path
func (e *Endpoint) Path() string {
	return e.path
}

// Service returns the published service
func (e *Endpoint) Service() *Service {
	return e.service
}

// Authenticated reports whether the endpoint requires basic authentication
func (e *Endpoint) Authenticated() bool {
	return e.auth != nil
}

func (e *Endpoint) validate() error {
	if !strings.HasPrefix(e.path, "/") || e.path == "/" || strings.HasSuffix(e.path, "/") ||
		strings.ContainsAny(e.path, "?#* ") || strings.Contains(e.path, "//") {
		return fmt.Errorf("invalid endpoint path %q", e.path)
	}
	if e.service == nil {
		return fmt.Errorf("endpoint %s has no service", e.path)
	}
	return e.service.Validate()
}

func (e *Endpoint) invoke(ctx context.Context, op *Operation, body *bodyReader) (interface{}, error) {
	var resp interface{}
	call := func(ctx context.Context) error {
		var err error
		resp, err = op.invoke(ctx, body)
		return err
	}

	run := call
	if e.unitOfWork != nil {
		run = func(ctx context.Context) error {
			return e.unitOfWork.Run(ctx, call)
		}
	}
	if err := run(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}
