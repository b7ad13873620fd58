//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveEcho(handlerFunc gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handlerFunc(c)
	return w
}

func TestEchoClientHandler_WsdlFirstEcho_Success(t *testing.T) {
	wsdlFirst := new(MockWsdlFirstClient)
	javaFirst := new(MockJavaFirstClient)
	handler := NewEchoClientHandler(wsdlFirst, javaFirst)

	wsdlFirst.On("Echo", mock.Anything, WsdlFirstEchoValue).Return(WsdlFirstEchoValue, nil)

	req, _ := http.NewRequest("GET", "/wsdlfirstclient", nil)
	w := serveEcho(handler.WsdlFirstEcho, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Echo response: 1234567890"}`, w.Body.String())
	wsdlFirst.AssertExpectations(t)
}

func TestEchoClientHandler_WsdlFirstEcho_Fault(t *testing.T) {
	wsdlFirst := new(MockWsdlFirstClient)
	handler := NewEchoClientHandler(wsdlFirst, new(MockJavaFirstClient))

	wsdlFirst.On("Echo", mock.Anything, WsdlFirstEchoValue).Return("", soap.ServerFault("Invalid parameter", nil))

	req, _ := http.NewRequest("GET", "/wsdlfirstclient", nil)
	w := serveEcho(handler.WsdlFirstEcho, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "WsdlFirstService returned a fault: Invalid parameter")
}

func TestEchoClientHandler_WsdlFirstNonBlockingEcho(t *testing.T) {
	wsdlFirst := new(MockWsdlFirstClient)
	handler := NewEchoClientHandler(wsdlFirst, new(MockJavaFirstClient))

	wsdlFirst.On("NonBlockingEchoAsync", mock.Anything, WsdlFirstEchoValue).Return(WsdlFirstEchoValue, nil).Once()
	wsdlFirst.On("NonBlockingEchoAsync", mock.Anything, WsdlFirstEchoValue).Return("", errors.New("connection refused")).Once()

	req, _ := http.NewRequest("GET", "/wsdlfirstclient/nonblocking", nil)
	w := serveEcho(handler.WsdlFirstNonBlockingEcho, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Echo response: 1234567890"}`, w.Body.String())

	w = serveEcho(handler.WsdlFirstNonBlockingEcho, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestEchoClientHandler_WsdlFirstNonBlockingEcho_Cancelled(t *testing.T) {
	blocking := &blockingWsdlFirstClient{MockWsdlFirstClient: new(MockWsdlFirstClient)}
	handler := NewEchoClientHandler(blocking, new(MockJavaFirstClient))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, _ := http.NewRequestWithContext(ctx, "GET", "/wsdlfirstclient/nonblocking", nil)
	w := serveEcho(handler.WsdlFirstNonBlockingEcho, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestEchoClientHandler_JavaFirstEcho(t *testing.T) {
	javaFirst := new(MockJavaFirstClient)
	handler := NewEchoClientHandler(new(MockWsdlFirstClient), javaFirst)

	javaFirst.On("Echo", mock.Anything, JavaFirstEchoValue).
		Return(JavaFirstEchoValue+"; principal: johndoe", nil).Once()
	javaFirst.On("Echo", mock.Anything, JavaFirstEchoValue).
		Return("", soap.ErrUnauthorized).Once()

	req, _ := http.NewRequest("GET", "/javafirstclient", nil)
	w := serveEcho(handler.JavaFirstEcho, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Echo response: Hello from the protected service!; principal: johndoe"}`, w.Body.String())

	w = serveEcho(handler.JavaFirstEcho, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "rejected the client credentials")
}

// blockingWsdlFirstClient never delivers a non-blocking result
type blockingWsdlFirstClient struct {
	*MockWsdlFirstClient
}

func (b *blockingWsdlFirstClient) NonBlockingEchoAsync(context.Context, string) <-chan echo.Result {
	return make(chan echo.Result)
}
