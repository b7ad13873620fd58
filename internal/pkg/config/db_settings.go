package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings describes the relational store backing the person endpoint.
// For postgres, DSN points at the server and Name is the database that gets
// created on first connect. For sqlite, DSN is the file path (":memory:" when empty).
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType {
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for postgres")
		}
		if s.Name == "" {
			return fmt.Errorf("name is required for postgres")
		}
	}

	return nil
}
