package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
)

// personService implements the people.PersonService interface
type personService struct {
	personRepo people.PersonRepository
	logger     logger.Logger
}

// NewPersonService creates a new personService instance
func NewPersonService(personRepo people.PersonRepository, logger logger.Logger) (people.PersonService, error) {
	return &personService{
		personRepo: personRepo,
		logger:     logger,
	}, nil
}

// GetPersons returns every stored person
func (s *personService) GetPersons(ctx context.Context) ([]*people.Person, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

// GetPerson returns the person with the given id
func (s *personService) GetPerson(ctx context.Context, id int64) (*people.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", id, err)
	}
	return person, nil
}

// CreatePerson stores a new person. Any id supplied by the caller is discarded.
func (s *personService) CreatePerson(ctx context.Context, person *people.Person) (*people.Person, error) {
	if person == nil {
		return nil, fmt.Errorf("%w: person must not be nil", people.ErrInvalidPerson)
	}

	created := &people.Person{
		FullName:        person.FullName,
		JobTitle:        person.JobTitle,
		DateTimeCreated: time.Now().UTC(),
	}
	if err := created.Validate(); err != nil {
		return nil, err
	}

	if err := s.personRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	s.logger.Info("Created person with id ", created.ID)
	return created, nil
}
