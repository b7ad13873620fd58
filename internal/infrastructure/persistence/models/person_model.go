package models

import (
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
)

// PersonModel is the GORM database model for persons (infrastructure concern)
type PersonModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	FullName        string    `gorm:"not null;type:varchar(255)"`
	JobTitle        string    `gorm:"not null;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PersonModel) TableName() string {
	return "people"
}

// ToDomain converts GORM model to domain entity
func (m *PersonModel) ToDomain() *people.Person {
	return &people.Person{
		ID:              m.ID,
		FullName:        m.FullName,
		JobTitle:        m.JobTitle,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PersonModel) FromDomain(p *people.Person) {
	m.ID = p.ID
	m.FullName = p.FullName
	m.JobTitle = p.JobTitle
	m.DateTimeCreated = p.DateTimeCreated
}
