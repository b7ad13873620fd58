package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPersonRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPersonRepository creates a new GORM-based PersonRepository implementation
func NewGormPersonRepository(db *gorm.DB, logger logger.Logger) (people.PersonRepository, error) {
	return &gormPersonRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPersonRepository) Create(ctx context.Context, person *people.Person) error {
	if err := person.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PersonModel{}
	model.FromDomain(person)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	// hand the generated key back to the caller
	person.ID = model.ID

	r.logger.Info("Created person with id ", person.ID)
	return nil
}

func (r *gormPersonRepository) GetByID(ctx context.Context, id int64) (*people.Person, error) {
	var model models.PersonModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person with id %d: %w", id, people.ErrPersonNotFound)
		}
		return nil, fmt.Errorf("failed to fetch person: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPersonRepository) List(ctx context.Context) ([]*people.Person, error) {
	var modelList []*models.PersonModel
	if err := conn(ctx, r.db).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch persons: %w", err)
	}

	domainList := make([]*people.Person, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
