// Package v1 serves the echo and person services over gRPC.
//
// The services use protobuf well-known types as messages, so their service
// descriptors are declared here instead of being generated:
//
//	jaxws.example.v1.EchoService/Echo                 StringValue -> StringValue
//	jaxws.example.v1.PersonService/GetPerson          Int64Value  -> Struct
//	jaxws.example.v1.PersonService/CreatePerson       Struct      -> Struct
//	jaxws.example.v1.PersonService/ListPersons        Empty       -> stream Struct
//
// RegisterEchoGateway and RegisterPersonGateway expose the same calls as JSON
// over HTTP on a grpc-gateway ServeMux.
package v1
