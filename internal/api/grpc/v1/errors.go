package v1

import (
	"errors"

	"github.com/MGTheTrain/jaxws-example/internal/domain/echo"
	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors to gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, people.ErrPersonNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, people.ErrInvalidPerson), errors.Is(err, echo.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}
