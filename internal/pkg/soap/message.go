package soap

import (
	"context"
	"net/http"
)

// Direction tells an interceptor whether a message is being received or sent
type Direction int

const (
	// Inbound messages are requests on the server side and responses on the client side
	Inbound Direction = iota
	// Outbound messages are responses on the server side and requests on the client side
	Outbound
)

func (d Direction) String() string {
	if d == Outbound {
		return "Outbound"
	}
	return "Inbound"
}

// Message is what interceptors and handlers see of an exchange. Body holds
// the complete envelope; an interceptor may replace it.
type Message struct {
	ID         string
	Direction  Direction
	Address    string
	Operation  string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Interceptor processes a message on its way in or out. Returning an error
// aborts the exchange; a *Fault error is sent back unchanged.
type Interceptor interface {
	HandleMessage(ctx context.Context, msg *Message) error
}

// InterceptorFunc adapts a function to the Interceptor interface
type InterceptorFunc func(ctx context.Context, msg *Message) error

// HandleMessage calls f(ctx, msg)
func (f InterceptorFunc) HandleMessage(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}

func runChain(ctx context.Context, chain []Interceptor, msg *Message) error {
	for _, interceptor := range chain {
		if err := interceptor.HandleMessage(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// runHandlers invokes chain in order and returns how many handlers accepted msg
func runHandlers(ctx context.Context, chain []Interceptor, msg *Message) (int, error) {
	for i, handler := range chain {
		if err := handler.HandleMessage(ctx, msg); err != nil {
			return i, err
		}
	}
	return len(chain), nil
}

// runChainReverse invokes handlers last to first, the order of an outbound JAX-WS handler chain
func runChainReverse(ctx context.Context, chain []Interceptor, msg *Message) error {
	for i := len(chain) - 1; i >= 0; i-- {
		if err := chain[i].HandleMessage(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}
