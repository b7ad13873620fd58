package v1

import (
	"fmt"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
)

// GatewayBasePath prefixes every gateway route
const GatewayBasePath = "/api/v1"

// NewGatewayMux creates a gateway mux forwarding to conn with every route registered
func NewGatewayMux(conn grpc.ClientConnInterface, opts ...runtime.ServeMuxOption) (*runtime.ServeMux, error) {
	gwmux := runtime.NewServeMux(opts...)

	if err := RegisterEchoGateway(gwmux, conn); err != nil {
		return nil, fmt.Errorf("failed to register echo gateway: %w", err)
	}
	if err := RegisterPersonGateway(gwmux, conn); err != nil {
		return nil, fmt.Errorf("failed to register person gateway: %w", err)
	}
	return gwmux, nil
}
