package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// PersonServiceName is the fully qualified gRPC service name
const PersonServiceName = "jaxws.example.v1.PersonService"

const (
	getPersonMethod    = "/" + PersonServiceName + "/GetPerson"
	createPersonMethod = "/" + PersonServiceName + "/CreatePerson"
	listPersonsMethod  = "/" + PersonServiceName + "/ListPersons"
)

// ListPersonsStream is the server side of the ListPersons stream
type ListPersonsStream interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type personServiceServer interface {
	GetPerson(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
	CreatePerson(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListPersons(req *emptypb.Empty, stream ListPersonsStream) error
}

// PersonServer handles gRPC requests of the person service
type PersonServer struct {
	personService people.PersonService
}

// NewPersonServer creates a new instance of PersonServer.
func NewPersonServer(personService people.PersonService) (*PersonServer, error) {
	return &PersonServer{personService: personService}, nil
}

// GetPerson retrieves a person by ID
func (s *PersonServer) GetPerson(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	person, err := s.personService.GetPerson(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return personToStruct(person)
}

// CreatePerson stores the person described by the fullName and jobTitle fields
func (s *PersonServer) CreatePerson(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	person, err := s.personService.CreatePerson(ctx, structToPerson(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return personToStruct(person)
}

// ListPersons streams every person
func (s *PersonServer) ListPersons(_ *emptypb.Empty, stream ListPersonsStream) error {
	persons, err := s.personService.GetPersons(stream.Context())
	if err != nil {
		return toStatus(err)
	}

	for _, person := range persons {
		msg, err := personToStruct(person)
		if err != nil {
			return err
		}
		if err := stream.Send(msg); err != nil {
			return fmt.Errorf("failed to send person %d: %w", person.ID, err)
		}
	}
	return nil
}

func personToStruct(p *people.Person) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"id":              p.ID,
		"fullName":        p.FullName,
		"jobTitle":        p.JobTitle,
		"dateTimeCreated": p.DateTimeCreated.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode person %d: %v", p.ID, err)
	}
	return msg, nil
}

func structToPerson(s *structpb.Struct) *people.Person {
	fields := s.GetFields()
	person := &people.Person{
		ID:       int64(fields["id"].GetNumberValue()),
		FullName: fields["fullName"].GetStringValue(),
		JobTitle: fields["jobTitle"].GetStringValue(),
	}
	if created, err := time.Parse(time.RFC3339Nano, fields["dateTimeCreated"].GetStringValue()); err == nil {
		person.DateTimeCreated = created
	}
	return person
}

func getPersonHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(personServiceServer).GetPerson(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getPersonMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(personServiceServer).GetPerson(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func createPersonHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(personServiceServer).CreatePerson(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createPersonMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(personServiceServer).CreatePerson(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type listPersonsServerStream struct {
	grpc.ServerStream
}

func (x *listPersonsServerStream) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

func listPersonsHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(personServiceServer).ListPersons(in, &listPersonsServerStream{stream})
}

var personServiceDesc = grpc.ServiceDesc{
	ServiceName: PersonServiceName,
	HandlerType: (*personServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPerson", Handler: getPersonHandler},
		{MethodName: "CreatePerson", Handler: createPersonHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListPersons", Handler: listPersonsHandler, ServerStreams: true},
	},
	Metadata: "jaxws/example/v1/person.proto",
}

// RegisterPersonServer registers the person gRPC service
func RegisterPersonServer(server grpc.ServiceRegistrar, personServer *PersonServer) {
	server.RegisterService(&personServiceDesc, personServer)
}

// PersonClient calls the person gRPC service
type PersonClient struct {
	cc grpc.ClientConnInterface
}

// NewPersonClient creates a PersonClient on cc
func NewPersonClient(cc grpc.ClientConnInterface) *PersonClient {
	return &PersonClient{cc: cc}
}

// GetPerson invokes PersonService/GetPerson
func (c *PersonClient) GetPerson(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getPersonMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePerson invokes PersonService/CreatePerson
func (c *PersonClient) CreatePerson(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, createPersonMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPersons invokes PersonService/ListPersons and collects the stream
func (c *PersonClient) ListPersons(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) ([]*structpb.Struct, error) {
	stream, err := c.cc.NewStream(ctx, &personServiceDesc.Streams[0], listPersonsMethod, opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	var persons []*structpb.Struct
	for {
		msg := new(structpb.Struct)
		err := stream.RecvMsg(msg)
		if errors.Is(err, io.EOF) {
			return persons, nil
		}
		if err != nil {
			return nil, err
		}
		persons = append(persons, msg)
	}
}

// RegisterPersonGateway registers the person routes on the gateway mux:
// GET /api/v1/people, GET /api/v1/people/{id} and POST /api/v1/people
func RegisterPersonGateway(gwmux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	client := NewPersonClient(conn)

	if err := gwmux.HandlePath(http.MethodGet, GatewayBasePath+"/people", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		ctx := r.Context()
		_, outbound := runtime.MarshalerForRequest(gwmux, r)

		persons, err := client.ListPersons(ctx, &emptypb.Empty{})
		if err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, err)
			return
		}
		list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(persons))}
		for _, person := range persons {
			list.Values = append(list.Values, structpb.NewStructValue(person))
		}
		runtime.ForwardResponseMessage(ctx, gwmux, outbound, w, r, list)
	}); err != nil {
		return fmt.Errorf("failed to register list persons route: %w", err)
	}

	if err := gwmux.HandlePath(http.MethodGet, GatewayBasePath+"/people/{id}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		ctx := r.Context()
		_, outbound := runtime.MarshalerForRequest(gwmux, r)

		id, err := strconv.ParseInt(pathParams["id"], 10, 64)
		if err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, status.Errorf(codes.InvalidArgument, "invalid person id %q", pathParams["id"]))
			return
		}
		person, err := client.GetPerson(ctx, wrapperspb.Int64(id))
		if err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, err)
			return
		}
		runtime.ForwardResponseMessage(ctx, gwmux, outbound, w, r, person)
	}); err != nil {
		return fmt.Errorf("failed to register get person route: %w", err)
	}

	if err := gwmux.HandlePath(http.MethodPost, GatewayBasePath+"/people", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		ctx := r.Context()
		inbound, outbound := runtime.MarshalerForRequest(gwmux, r)

		req := new(structpb.Struct)
		if err := inbound.NewDecoder(r.Body).Decode(req); err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, status.Errorf(codes.InvalidArgument, "invalid person data: %v", err))
			return
		}
		person, err := client.CreatePerson(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, gwmux, outbound, w, r, err)
			return
		}
		runtime.ForwardResponseMessage(ctx, gwmux, outbound, w, r, person)
	}); err != nil {
		return fmt.Errorf("failed to register create person route: %w", err)
	}

	return nil
}
