package v1

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/jaxws-example/internal/domain/auth"
	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
)

const invalidParameterMessage = "Invalid parameter"

func javaFirstFault(err error) error {
	switch {
	case errors.Is(err, echo.ErrInvalidParameter):
		return soap.ServerFault(invalidParameterMessage, &JavaFirstServiceException{Message: invalidParameterMessage})
	case errors.Is(err, auth.ErrUnauthenticated):
		return soap.ClientFault("Authentication required", nil)
	}
	return err
}

func wsdlFirstFault(err error) error {
	if errors.Is(err, echo.ErrInvalidParameter) {
		return soap.ServerFault(invalidParameterMessage, &WsdlFirstServiceFault{Message: invalidParameterMessage})
	}
	return err
}

func personFault(err error, id int64) error {
	switch {
	case errors.Is(err, people.ErrPersonNotFound):
		return soap.ClientFault(fmt.Sprintf("Person with id %d not found", id), &PersonNotFound{ID: id})
	case errors.Is(err, people.ErrInvalidPerson):
		return soap.ClientFault(err.Error(), nil)
	}
	return err
}

// clientError translates a fault of a known type back into the domain error
// it was raised for. The fault stays reachable through errors.As.
func clientError(err error) error {
	var fault *soap.Fault
	if !errors.As(err, &fault) {
		return err
	}

	var javaFirst JavaFirstServiceException
	if fault.DecodeDetail(&javaFirst) == nil {
		return fmt.Errorf("%w: %w", echo.ErrInvalidParameter, fault)
	}
	var wsdlFirst WsdlFirstServiceFault
	if fault.DecodeDetail(&wsdlFirst) == nil {
		return fmt.Errorf("%w: %w", echo.ErrInvalidParameter, fault)
	}
	var notFound PersonNotFound
	if fault.DecodeDetail(&notFound) == nil {
		return fmt.Errorf("%w: %w", people.ErrPersonNotFound, fault)
	}
	return err
}
