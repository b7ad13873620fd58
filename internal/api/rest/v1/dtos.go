package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message returned by the API
type InfoResponse struct {
	Message string `json:"message"`
}

// EchoResponse carries the answer of a SOAP echo call
type EchoResponse struct {
	Message string `json:"message"`
}

// CreatePersonRequest is the body of POST /people
type CreatePersonRequest struct {
	FullName string `json:"fullName" validate:"notblank,max=255"`
	JobTitle string `json:"jobTitle" validate:"notblank,max=255"`
}

// Validate checks the request fields
func (r *CreatePersonRequest) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(r); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// PersonResponse is the JSON form of a person
type PersonResponse struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	JobTitle        string    `json:"jobTitle"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newPersonResponse(p *people.Person) PersonResponse {
	return PersonResponse{
		ID:              p.ID,
		FullName:        p.FullName,
		JobTitle:        p.JobTitle,
		DateTimeCreated: p.DateTimeCreated,
	}
}
