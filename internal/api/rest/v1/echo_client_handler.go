package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
	"github.com/gin-gonic/gin"
)

// Values sent by the client resources
const (
	WsdlFirstEchoValue = "1234567890"
	JavaFirstEchoValue = "Hello from the protected service!"
)

// EchoClientHandler exposes the SOAP echo clients over REST
type EchoClientHandler interface {
	WsdlFirstEcho(ctx *gin.Context)
	WsdlFirstNonBlockingEcho(ctx *gin.Context)
	JavaFirstEcho(ctx *gin.Context)
}

type echoClientHandler struct {
	wsdlFirstClient echo.WsdlFirstAsyncService
	javaFirstClient echo.JavaFirstService
}

// NewEchoClientHandler creates a new EchoClientHandler
func NewEchoClientHandler(wsdlFirstClient echo.WsdlFirstAsyncService, javaFirstClient echo.JavaFirstService) EchoClientHandler {
	return &echoClientHandler{
		wsdlFirstClient: wsdlFirstClient,
		javaFirstClient: javaFirstClient,
	}
}

// WsdlFirstEcho calls WsdlFirstService.Echo
// @Summary Echo through the WSDL first SOAP service
// @Tags Clients
// @Produce json
// @Success 200 {object} EchoResponse
// @Failure 502 {object} ErrorResponse
// @Router /wsdlfirstclient [get]
func (handler *echoClientHandler) WsdlFirstEcho(ctx *gin.Context) {
	value, err := handler.wsdlFirstClient.Echo(ctx.Request.Context(), WsdlFirstEchoValue)
	if err != nil {
		respondClientError(ctx, "WsdlFirstService", err)
		return
	}
	ctx.JSON(http.StatusOK, EchoResponse{Message: "Echo response: " + value})
}

// WsdlFirstNonBlockingEcho calls WsdlFirstService.NonBlockingEcho asynchronously
// @Summary Non-blocking echo through the WSDL first SOAP service
// @Tags Clients
// @Produce json
// @Success 200 {object} EchoResponse
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /wsdlfirstclient/nonblocking [get]
func (handler *echoClientHandler) WsdlFirstNonBlockingEcho(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	select {
	case result := <-handler.wsdlFirstClient.NonBlockingEchoAsync(reqCtx, WsdlFirstEchoValue):
		if result.Err != nil {
			respondClientError(ctx, "WsdlFirstService", result.Err)
			return
		}
		ctx.JSON(http.StatusOK, EchoResponse{Message: "Echo response: " + result.Value})
	case <-reqCtx.Done():
		ctx.JSON(http.StatusGatewayTimeout, ErrorResponse{Message: "request cancelled while waiting for WsdlFirstService"})
	}
}

// JavaFirstEcho calls JavaFirstService.echo with the configured credentials
// @Summary Echo through the protected java first SOAP service
// @Tags Clients
// @Produce json
// @Success 200 {object} EchoResponse
// @Failure 502 {object} ErrorResponse
// @Router /javafirstclient [get]
func (handler *echoClientHandler) JavaFirstEcho(ctx *gin.Context) {
	value, err := handler.javaFirstClient.Echo(ctx.Request.Context(), JavaFirstEchoValue)
	if err != nil {
		respondClientError(ctx, "JavaFirstService", err)
		return
	}
	ctx.JSON(http.StatusOK, EchoResponse{Message: "Echo response: " + value})
}

// respondClientError answers 502: the failure happened in the upstream SOAP service
func respondClientError(ctx *gin.Context, service string, err error) {
	var errorResponse ErrorResponse

	var fault *soap.Fault
	switch {
	case errors.As(err, &fault):
		errorResponse.Message = fmt.Sprintf("%s returned a fault: %s", service, fault.String)
	case errors.Is(err, soap.ErrUnauthorized):
		errorResponse.Message = fmt.Sprintf("%s rejected the client credentials", service)
	default:
		errorResponse.Message = fmt.Sprintf("error calling %s: %v", service, err)
	}
	ctx.JSON(http.StatusBadGateway, errorResponse)
}
