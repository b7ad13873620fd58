package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var servicesPage = template.Must(template.New("services").Parse(`<!DOCTYPE html>
<html>
<head><title>SOAP services</title></head>
<body>
<h1>Available SOAP services:</h1>
<table>
{{- range .}}
<tr>
<td>{{.Name}}</td>
<td>Endpoint address: {{.Address}}<br/>WSDL: <a href="{{.Address}}?wsdl">{{.Namespace}}</a>{{if .Authenticated}}<br/>Basic authentication{{end}}</td>
</tr>
{{- end}}
</table>
</body>
</html>
`))

// Bundle publishes endpoints under a common base path
type Bundle struct {
	basePath string
	logger   logger.Logger
	metrics  *Metrics
	limiter  *rate.Limiter

	mu        sync.RWMutex
	endpoints map[string]*Endpoint
}

// BundleOption configures a Bundle
type BundleOption func(*Bundle)

// WithMetrics records request counters and latencies in m
func WithMetrics(m *Metrics) BundleOption {
	return func(b *Bundle) {
		b.metrics = m
	}
}

// NewBundle creates an empty bundle from settings. A positive request rate
// enables a token bucket shared by all endpoints.
func NewBundle(settings *config.SoapSettings, log logger.Logger, opts ...BundleOption) (*Bundle, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	b := &Bundle{
		basePath:  strings.TrimSuffix(settings.BasePath, "/"),
		logger:    log,
		endpoints: make(map[string]*Endpoint),
	}
	if settings.RequestsPerSecond > 0 {
		b.limiter = rate.NewLimiter(rate.Limit(settings.RequestsPerSecond), settings.Burst)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// BasePath returns the path all endpoints are mounted under
func (b *Bundle) BasePath() string {
	return b.basePath
}

// PublishEndpoint makes e reachable at the bundle base path followed by its path
func (b *Bundle) PublishEndpoint(e *Endpoint) error {
	if err := e.validate(); err != nil {
		return fmt.Errorf("failed to publish endpoint: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.endpoints[e.path]; exists {
		return fmt.Errorf("failed to publish endpoint: path %s is already in use", e.path)
	}
	b.endpoints[e.path] = e
	b.logger.Info(fmt.Sprintf("Published SOAP endpoint %s%s (%s)", b.basePath, e.path, e.service.Name))
	return nil
}

// Endpoints returns the published endpoints sorted by path
func (b *Bundle) Endpoints() []*Endpoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	endpoints := make([]*Endpoint, 0, len(b.endpoints))
	for _, e := range b.endpoints {
		endpoints = append(endpoints, e)
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].path < endpoints[j].path })
	return endpoints
}

// NewClient creates a client for address that logs through the bundle logger
func (b *Bundle) NewClient(address string, opts ...ClientOption) *Client {
	return NewClient(address, append([]ClientOption{withClientLogger(b.logger)}, opts...)...)
}

// RegisterRoutes mounts the bundle on router
func (b *Bundle) RegisterRoutes(router gin.IRouter) {
	route := b.basePath + "/*endpoint"
	router.GET(route, b.handleGet)
	router.POST(route, b.handlePost)
}

func (b *Bundle) lookup(path string) (*Endpoint, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.endpoints[path]
	return e, ok
}

func (b *Bundle) address(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s%s%s", scheme, r.Host, b.basePath, path)
}

func (b *Bundle) handleGet(ctx *gin.Context) {
	path := ctx.Param("endpoint")
	if path == "/" {
		b.listServices(ctx)
		return
	}

	endpoint, ok := b.lookup(path)
	if !ok {
		ctx.String(http.StatusNotFound, "No service was found.")
		return
	}

	if _, wsdl := ctx.GetQuery("wsdl"); !wsdl {
		ctx.Header("Allow", http.MethodPost)
		ctx.String(http.StatusMethodNotAllowed, "SOAP endpoints accept POST requests, append ?wsdl for the service description.")
		return
	}

	doc, err := endpoint.service.WSDL(b.address(ctx.Request, path))
	if err != nil {
		b.logger.Error(err.Error())
		ctx.String(http.StatusInternalServerError, "WSDL is not available.")
		return
	}
	ctx.Data(http.StatusOK, ContentType, doc)
}

func (b *Bundle) listServices(ctx *gin.Context) {
	type row struct {
		Name          string
		Namespace     string
		Address       string
		Authenticated bool
	}

	endpoints := b.Endpoints()
	rows := make([]row, 0, len(endpoints))
	for _, e := range endpoints {
		rows = append(rows, row{
			Name:          e.service.Name,
			Namespace:     e.service.Namespace,
			Address:       b.address(ctx.Request, e.path),
			Authenticated: e.Authenticated(),
		})
	}

	var buf bytes.Buffer
	if err := servicesPage.Execute(&buf, rows); err != nil {
		b.logger.Error(fmt.Sprintf("failed to render service list: %v", err))
		ctx.String(http.StatusInternalServerError, "Service list is not available.")
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (b *Bundle) handlePost(ctx *gin.Context) {
	started := time.Now()
	path := ctx.Param("endpoint")

	endpoint, ok := b.lookup(path)
	if !ok {
		ctx.String(http.StatusNotFound, "No service was found.")
		return
	}

	if b.limiter != nil && !b.limiter.Allow() {
		b.writeFault(ctx, http.StatusTooManyRequests, ServerFault("Too many requests, try again later.", nil))
		b.metrics.observe(path, "", OutcomeThrottled, time.Since(started))
		return
	}

	reqCtx := ctx.Request.Context()
	if endpoint.auth != nil {
		user, err := endpoint.auth.authenticate(reqCtx, ctx.Request)
		if err != nil {
			b.logger.Error(err.Error())
			b.writeFault(ctx, http.StatusInternalServerError, ServerFault("Authentication failed.", nil))
			b.metrics.observe(path, "", OutcomeFault, time.Since(started))
			return
		}
		if user == nil {
			ctx.Header("WWW-Authenticate", endpoint.auth.challenge())
			ctx.String(http.StatusUnauthorized, "Credentials are required to access this resource.")
			b.metrics.observe(path, "", OutcomeUnauthorized, time.Since(started))
			return
		}
		reqCtx = auth.WithUser(reqCtx, user)
	}

	body, err := readEnvelope(ctx.Request.Body)
	if errors.Is(err, ErrEnvelopeTooLarge) {
		b.writeFault(ctx, http.StatusRequestEntityTooLarge, ClientFault(fmt.Sprintf("Request envelope exceeds %d bytes.", maxEnvelopeSize), nil))
		b.metrics.observe(path, "", OutcomeFault, time.Since(started))
		return
	}
	if err != nil {
		b.writeFault(ctx, http.StatusBadRequest, ClientFault(fmt.Sprintf("Failed to read request: %v", err), nil))
		b.metrics.observe(path, "", OutcomeFault, time.Since(started))
		return
	}

	request := &Message{
		ID:        uuid.NewString(),
		Direction: Inbound,
		Address:   b.address(ctx.Request, path),
		Operation: operationName(body),
		Header:    ctx.Request.Header.Clone(),
		Body:      body,
	}

	response, operation := b.exchange(reqCtx, endpoint, request)
	for name, values := range response.Header {
		for _, value := range values {
			ctx.Writer.Header().Add(name, value)
		}
	}
	ctx.Data(response.StatusCode, ContentType, response.Body)

	outcome := OutcomeSuccess
	if response.StatusCode != http.StatusOK {
		outcome = OutcomeFault
	}
	b.metrics.observe(path, operation, outcome, time.Since(started))
}

// exchange runs the inbound chain, the operation and the outbound chain. It
// returns the message to write and the operation label for metrics, which is
// UnknownOperation unless the body element matched an operation of the service.
func (b *Bundle) exchange(ctx context.Context, endpoint *Endpoint, request *Message) (*Message, string) {
	response := &Message{
		ID:         request.ID,
		Direction:  Outbound,
		Address:    request.Address,
		Operation:  request.Operation,
		StatusCode: http.StatusOK,
		Header:     http.Header{},
	}

	result := b.dispatch(ctx, endpoint, request)
	response.Operation = request.Operation
	if result.err != nil {
		b.encodeFault(response, toFault(result.err))
	} else if body, err := marshalEnvelope(result.payload); err != nil {
		b.encodeFault(response, ServerFault(err.Error(), nil))
	} else {
		response.Body = body
	}

	// only handlers that accepted the request see the response
	if err := runChainReverse(ctx, endpoint.handlers[:result.handled], response); err != nil {
		b.encodeFault(response, toFault(err))
		return response, result.operation
	}
	if err := runChain(ctx, endpoint.outInterceptors, response); err != nil {
		b.encodeFault(response, toFault(err))
	}
	return response, result.operation
}

type dispatchResult struct {
	payload   interface{}
	operation string
	handled   int
	err       error
}

func (b *Bundle) dispatch(ctx context.Context, endpoint *Endpoint, request *Message) dispatchResult {
	result := dispatchResult{operation: UnknownOperation}

	if result.err = runChain(ctx, endpoint.inInterceptors, request); result.err != nil {
		return result
	}
	if result.handled, result.err = runHandlers(ctx, endpoint.handlers, request); result.err != nil {
		return result
	}

	body, err := openBody(request.Body)
	if err != nil {
		result.err = ClientFault(err.Error(), nil)
		return result
	}
	request.Operation = body.start.Name.Local

	op, ok := endpoint.service.operation(body.start.Name.Local)
	if !ok {
		result.err = endpoint.service.unknownOperation(body.start.Name)
		return result
	}
	result.operation = op.Name

	result.payload, result.err = endpoint.invoke(ctx, op, body)
	if result.err != nil {
		if fault := toFault(result.err); fault.IsServer() {
			b.logger.Error(fmt.Sprintf("Operation %s of %s failed: %v", op.Name, endpoint.service.Name, result.err))
		}
	}
	return result
}

func (b *Bundle) encodeFault(msg *Message, fault *Fault) {
	body, err := marshalFault(fault)
	if err != nil {
		b.logger.Error(fmt.Sprintf("failed to encode fault: %v", err))
		body = []byte(xmlFallbackFault)
	}
	msg.StatusCode = http.StatusInternalServerError
	msg.Body = body
}

func (b *Bundle) writeFault(ctx *gin.Context, status int, fault *Fault) {
	body, err := marshalFault(fault)
	if err != nil {
		b.logger.Error(fmt.Sprintf("failed to encode fault: %v", err))
		body = []byte(xmlFallbackFault)
	}
	ctx.Data(status, ContentType, body)
}

const xmlFallbackFault = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><soap:Fault><faultcode>soap:Server</faultcode><faultstring>Internal error</faultstring></soap:Fault></soap:Body></soap:Envelope>`
