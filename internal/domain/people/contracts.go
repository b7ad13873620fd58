package people

import (
	"context"
)

// PersonService defines the operations published by the person endpoint.
type PersonService interface {
	// GetPersons returns every stored person ordered by id.
	GetPersons(ctx context.Context) ([]*Person, error)

	// GetPerson returns the person with the given id or ErrPersonNotFound.
	GetPerson(ctx context.Context, id int64) (*Person, error)

	// CreatePerson validates and stores a new person and returns it with its generated id.
	CreatePerson(ctx context.Context, person *Person) (*Person, error)
}

// PersonRepository defines the interface for Person-related persistence operations
type PersonRepository interface {
	Create(ctx context.Context, person *Person) error
	GetByID(ctx context.Context, id int64) (*Person, error)
	List(ctx context.Context) ([]*Person, error)
}
