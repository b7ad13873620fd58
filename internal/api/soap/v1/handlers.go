package v1

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
)

type wsdlFirstServiceHandler struct {
	logger logger.Logger
}

// NewWsdlFirstServiceHandler logs every message passing the WsdlFirstService endpoint
func NewWsdlFirstServiceHandler(log logger.Logger) soap.Interceptor {
	return &wsdlFirstServiceHandler{logger: log}
}

func (h *wsdlFirstServiceHandler) HandleMessage(_ context.Context, msg *soap.Message) error {
	h.logger.Info(fmt.Sprintf("WsdlFirstServiceHandler: %s %s message %s", msg.Direction, msg.Operation, msg.ID))
	return nil
}

type wsdlFirstClientHandler struct {
	logger logger.Logger
}

// NewWsdlFirstClientHandler logs every message exchanged by a WsdlFirstClient
func NewWsdlFirstClientHandler(log logger.Logger) soap.Interceptor {
	return &wsdlFirstClientHandler{logger: log}
}

func (h *wsdlFirstClientHandler) HandleMessage(_ context.Context, msg *soap.Message) error {
	if msg.Direction == soap.Outbound {
		h.logger.Info(fmt.Sprintf("WsdlFirstClientHandler: sending %s to %s", msg.Operation, msg.Address))
		return nil
	}
	h.logger.Info(fmt.Sprintf("WsdlFirstClientHandler: received %s response, HTTP %d", msg.Operation, msg.StatusCode))
	return nil
}
