package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// AddressPlaceholder is replaced by the endpoint address when a service's own WSDL is served
const AddressPlaceholder = "REPLACE_WITH_ACTUAL_URL"

// Service describes a web service: its name, target namespace and operations.
// Document is an optional hand-written WSDL; when empty one is generated from
// the operations.
type Service struct {
	Name       string
	Namespace  string
	Operations []Operation
	Document   []byte
}

// Operation is a single document/literal operation of a Service
type Operation struct {
	Name         string
	ResponseName string
	invoke       func(ctx context.Context, body *bodyReader) (interface{}, error)
}

// NewOperation binds fn to the request element name. The request body element
// is decoded into a new Req and the returned *Resp becomes the response body.
// A decoding failure is reported as a client fault.
func NewOperation[Req any, Resp any](name string, fn func(ctx context.Context, req *Req) (*Resp, error)) Operation {
	return Operation{
		Name:         name,
		ResponseName: elementName(reflect.TypeOf((*Resp)(nil)).Elem(), name+"Response"),
		invoke: func(ctx context.Context, body *bodyReader) (interface{}, error) {
			req := new(Req)
			if err := body.decode(req); err != nil {
				return nil, ClientFault(fmt.Sprintf("Unmarshalling Error: %v", err), nil)
			}
			resp, err := fn(ctx, req)
			if err != nil {
				return nil, err
			}
			return resp, nil
		},
	}
}

// elementName reads the local name from the XMLName tag of t
func elementName(t reflect.Type, fallback string) string {
	if t.Kind() != reflect.Struct {
		return fallback
	}
	field, ok := t.FieldByName("XMLName")
	if !ok {
		return fallback
	}
	tag := strings.Split(field.Tag.Get("xml"), ",")[0]
	if i := strings.LastIndex(tag, " "); i >= 0 {
		tag = tag[i+1:]
	}
	if tag == "" {
		return fallback
	}
	return tag
}

// Validate checks that the service can be published
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("service name is required")
	}
	if strings.TrimSpace(s.Namespace) == "" {
		return fmt.Errorf("service %s has no target namespace", s.Name)
	}
	if len(s.Operations) == 0 {
		return fmt.Errorf("service %s has no operations", s.Name)
	}

	seen := make(map[string]struct{}, len(s.Operations))
	for _, op := range s.Operations {
		if op.Name == "" || op.invoke == nil {
			return fmt.Errorf("service %s has an operation not created with NewOperation", s.Name)
		}
		if _, dup := seen[op.Name]; dup {
			return fmt.Errorf("service %s declares operation %s twice", s.Name, op.Name)
		}
		seen[op.Name] = struct{}{}
	}
	return nil
}

func (s *Service) operation(name string) (*Operation, bool) {
	for i := range s.Operations {
		if s.Operations[i].Name == name {
			return &s.Operations[i], true
		}
	}
	return nil, false
}

// unknownOperation builds the fault returned for an element no operation is bound to
func (s *Service) unknownOperation(name xml.Name) *Fault {
	return ClientFault(fmt.Sprintf("Unexpected wrapper element {%s}%s found. Expected one of the operations of %s.",
		name.Space, name.Local, s.Name), nil)
}
