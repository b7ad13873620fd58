package people

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrPersonNotFound is returned when no person exists for a given id
	ErrPersonNotFound = errors.New("person not found")

	// ErrInvalidPerson wraps every validation failure of a Person
	ErrInvalidPerson = errors.New("invalid person")
)

// Person entity
type Person struct {
	ID              int64     `validate:"gte=0"`
	FullName        string    `validate:"notblank,max=255"`
	JobTitle        string    `validate:"notblank,max=255"`
	DateTimeCreated time.Time
}

// Validate for validating Person struct
func (p *Person) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	err = validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidPerson, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
