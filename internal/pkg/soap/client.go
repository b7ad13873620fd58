package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/google/uuid"
)

// ErrUnauthorized is returned when the endpoint rejects the client credentials
var ErrUnauthorized = errors.New("soap endpoint rejected the credentials")

// Client invokes the operations of one endpoint address
type Client struct {
	address         string
	httpClient      *http.Client
	username        string
	password        string
	basicAuth       bool
	handlers        []Interceptor
	inInterceptors  []Interceptor
	outInterceptors []Interceptor
	logger          logger.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds every call, including reading the response
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Transport: c.httpClient.Transport, Timeout: timeout}
	}
}

// WithBasicAuth sends username and password with every request
func WithBasicAuth(username, password string) ClientOption {
	return func(c *Client) {
		c.username, c.password, c.basicAuth = username, password, true
	}
}

// WithClientHandlers appends to the handler chain. Handlers see requests in
// order and responses in reverse order.
func WithClientHandlers(handlers ...Interceptor) ClientOption {
	return func(c *Client) {
		c.handlers = append(c.handlers, handlers...)
	}
}

// WithClientInInterceptors appends interceptors run on every response
func WithClientInInterceptors(interceptors ...Interceptor) ClientOption {
	return func(c *Client) {
		c.inInterceptors = append(c.inInterceptors, interceptors...)
	}
}

// WithClientOutInterceptors appends interceptors run on every request
func WithClientOutInterceptors(interceptors ...Interceptor) ClientOption {
	return func(c *Client) {
		c.outInterceptors = append(c.outInterceptors, interceptors...)
	}
}

func withClientLogger(log logger.Logger) ClientOption {
	return func(c *Client) {
		c.logger = log
	}
}

// NewClient creates a client posting to address
func NewClient(address string, opts ...ClientOption) *Client {
	c := &Client{
		address:    address,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the endpoint address
func (c *Client) Address() string {
	return c.address
}

// Call sends req as the body of a request envelope and decodes the response
// body element into resp. A fault answer is returned as *Fault.
func (c *Client) Call(ctx context.Context, req interface{}, resp interface{}) error {
	envelope, err := marshalEnvelope(req)
	if err != nil {
		return err
	}

	request := &Message{
		ID:        uuid.NewString(),
		Direction: Outbound,
		Address:   c.address,
		Operation: operationName(envelope),
		Header: http.Header{
			"Content-Type": []string{ContentType},
			"Soapaction":   []string{`""`},
		},
		Body: envelope,
	}
	if err := runChain(ctx, c.handlers, request); err != nil {
		return err
	}
	if err := runChain(ctx, c.outInterceptors, request); err != nil {
		return err
	}

	response, err := c.post(ctx, request)
	if err != nil {
		return err
	}

	if err := runChain(ctx, c.inInterceptors, response); err != nil {
		return err
	}
	if err := runChainReverse(ctx, c.handlers, response); err != nil {
		return err
	}

	return decodeResponse(response, resp)
}

func (c *Client) post(ctx context.Context, request *Message) (*Message, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(request.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", c.address, err)
	}
	httpReq.Header = request.Header.Clone()
	if c.basicAuth {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", c.address, err)
	}
	defer httpResp.Body.Close()

	body, err := readEnvelope(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", c.address, err)
	}

	if c.logger != nil {
		c.logger.Debug(fmt.Sprintf("SOAP call %s %s returned HTTP %d", c.address, request.Operation, httpResp.StatusCode))
	}

	return &Message{
		ID:         request.ID,
		Direction:  Inbound,
		Address:    c.address,
		Operation:  request.Operation,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

func decodeResponse(response *Message, resp interface{}) error {
	if response.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: HTTP %d from %s", ErrUnauthorized, response.StatusCode, response.Address)
	}

	body, err := openBody(response.Body)
	if err != nil {
		if response.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("unexpected HTTP %d from %s", response.StatusCode, response.Address)
		}
		return fmt.Errorf("invalid response from %s: %w", response.Address, err)
	}

	if body.isFault() {
		fault := &Fault{}
		if err := body.decode(fault); err != nil {
			return fmt.Errorf("failed to decode fault from %s: %w", response.Address, err)
		}
		return fault
	}

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected HTTP %d from %s", response.StatusCode, response.Address)
	}
	if resp == nil {
		return nil
	}
	if err := body.decode(resp); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", response.Address, err)
	}
	return nil
}

// AsyncResult is the outcome of CallAsync
type AsyncResult[Resp any] struct {
	Response *Resp
	Err      error
}

// CallAsync performs c.Call on a new goroutine. The returned channel
// delivers exactly one result and is then closed.
func CallAsync[Resp any](ctx context.Context, c *Client, req interface{}) <-chan AsyncResult[Resp] {
	results := make(chan AsyncResult[Resp], 1)
	go func() {
		defer close(results)
		resp := new(Resp)
		if err := c.Call(ctx, req, resp); err != nil {
			results <- AsyncResult[Resp]{Err: err}
			return
		}
		results <- AsyncResult[Resp]{Response: resp}
	}()
	return results
}
