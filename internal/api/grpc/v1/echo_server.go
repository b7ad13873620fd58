package v1

import (
	"context"
	"net/http"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// EchoServiceName is the fully qualified gRPC service name
const EchoServiceName = "jaxws.example.v1.EchoService"

const echoMethod = "/" + EchoServiceName + "/Echo"

type echoServiceServer interface {
	Echo(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// EchoServer handles gRPC requests of the echo service
type EchoServer struct {
	simpleService echo.SimpleService
}

// NewEchoServer creates a new instance of EchoServer.
func NewEchoServer(simpleService echo.SimpleService) (*EchoServer, error) {
	return &EchoServer{simpleService: simpleService}, nil
}

// Echo returns the request value unchanged
func (s *EchoServer) Echo(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	out, err := s.simpleService.Echo(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(out), nil
}

func echoHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(echoServiceServer).Echo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: echoMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(echoServiceServer).Echo(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var echoServiceDesc = grpc.ServiceDesc{
	ServiceName: EchoServiceName,
	HandlerType: (*echoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Echo", Handler: echoHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jaxws/example/v1/echo.proto",
}

// RegisterEchoServer registers the echo gRPC service
func RegisterEchoServer(server grpc.ServiceRegistrar, echoServer *EchoServer) {
	server.RegisterService(&echoServiceDesc, echoServer)
}

// EchoClient calls the echo gRPC service
type EchoClient struct {
	cc grpc.ClientConnInterface
}

// NewEchoClient creates an EchoClient on cc
func NewEchoClient(cc grpc.ClientConnInterface) *EchoClient {
	return &EchoClient{cc: cc}
}

// Echo invokes EchoService/Echo
func (c *EchoClient) Echo(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, echoMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterEchoGateway registers GET /api/v1/echo/{value} on the gateway mux
func RegisterEchoGateway(gwmux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	client := NewEchoClient(conn)

	return gwmux.HandlePath(http.MethodGet, GatewayBasePath+"/echo/{value}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		ctx := r.Context()
		_, outbound := runtime.MarshalerForRequest(gwmux, r)

		resp, err := client.Echo(ctx, wrapperspb.String(pathParams["value"]))
		if err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, err)
			return
		}
		runtime.ForwardResponseMessage(ctx, gwmux, outbound, w, r, resp)
	})
}
