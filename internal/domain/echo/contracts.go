package echo

import (
	"context"
	"errors"
)

// ErrInvalidParameter is returned by echo operations when the input is blank
var ErrInvalidParameter = errors.New("invalid parameter")

// SimpleService echoes its input unchanged.
type SimpleService interface {
	Echo(ctx context.Context, input string) (string, error)
}

// JavaFirstService echoes its input together with the name of the authenticated caller.
type JavaFirstService interface {
	Echo(ctx context.Context, in string) (string, error)
}

// WsdlFirstService implements the operations of WsdlFirstService.wsdl.
type WsdlFirstService interface {
	Echo(ctx context.Context, value string) (string, error)
	NonBlockingEcho(ctx context.Context, value string) (string, error)
}

// Result carries the outcome of an asynchronous echo call.
type Result struct {
	Value string
	Err   error
}

// WsdlFirstAsyncService extends WsdlFirstService with a non-blocking variant.
// The returned channel delivers exactly one Result and is then closed.
type WsdlFirstAsyncService interface {
	WsdlFirstService
	NonBlockingEchoAsync(ctx context.Context, value string) <-chan Result
}
