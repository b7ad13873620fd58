package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// SOAP 1.1 fault codes
const (
	FaultCodeClient = "soap:Client"
	FaultCodeServer = "soap:Server"
)

// Fault is a SOAP 1.1 fault. It is returned as an error by operations and by
// Client.Call when the peer answers with a fault.
type Fault struct {
	Code   string       `xml:"faultcode"`
	String string       `xml:"faultstring"`
	Actor  string       `xml:"faultactor,omitempty"`
	Detail *FaultDetail `xml:"detail,omitempty"`
}

// FaultDetail holds the raw application specific fault detail
type FaultDetail struct {
	Content []byte `xml:",innerxml"`
}

// NewFault creates a fault. detail, when not nil, is XML encoded into the detail element.
func NewFault(code, message string, detail interface{}) *Fault {
	fault := &Fault{Code: code, String: message}
	if detail != nil {
		if content, err := xml.Marshal(detail); err == nil {
			fault.Detail = &FaultDetail{Content: content}
		}
	}
	return fault
}

// ClientFault reports a problem with the request
func ClientFault(message string, detail interface{}) *Fault {
	return NewFault(FaultCodeClient, message, detail)
}

// ServerFault reports a problem while processing an otherwise valid request
func ServerFault(message string, detail interface{}) *Fault {
	return NewFault(FaultCodeServer, message, detail)
}

// Error implements the error interface
func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// IsClient reports whether the fault code is Client, whatever the prefix
func (f *Fault) IsClient() bool {
	return localCode(f.Code) == "Client"
}

// IsServer reports whether the fault code is Server, whatever the prefix
func (f *Fault) IsServer() bool {
	return localCode(f.Code) == "Server"
}

// DecodeDetail unmarshals the detail element into v
func (f *Fault) DecodeDetail(v interface{}) error {
	if f.Detail == nil || len(strings.TrimSpace(string(f.Detail.Content))) == 0 {
		return errors.New("fault has no detail")
	}
	if err := xml.Unmarshal(f.Detail.Content, v); err != nil {
		return fmt.Errorf("failed to decode fault detail: %w", err)
	}
	return nil
}

func localCode(code string) string {
	if i := strings.LastIndex(code, ":"); i >= 0 {
		return code[i+1:]
	}
	return code
}

// toFault converts any error returned by an operation into a fault.
// Faults anywhere in the chain are kept as they are.
func toFault(err error) *Fault {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault
	}
	return ServerFault(err.Error(), nil)
}
