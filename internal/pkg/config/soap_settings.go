package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultSoapBasePath is the path prefix under which all SOAP endpoints are published
const DefaultSoapBasePath = "/soap"

// SoapSettings configures the SOAP endpoint bundle
type SoapSettings struct {
	BasePath string `mapstructure:"base_path" validate:"required,startswith=/,ne=/"`
	// RequestsPerSecond of 0 disables rate limiting
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

// Validate checks that all fields in SoapSettings are valid
func (s *SoapSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for SoapSettings: %w", err)
	}
	if s.RequestsPerSecond > 0 && s.Burst < 1 {
		return fmt.Errorf("burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

// AuthSettings configures HTTP basic authentication of protected endpoints
type AuthSettings struct {
	Realm    string `mapstructure:"realm" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// ClientSettings configures the SOAP clients used by the REST resources
type ClientSettings struct {
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Username string        `mapstructure:"username" validate:"required"`
	Password string        `mapstructure:"password" validate:"required"`
}

// Validate checks that all fields in ClientSettings are valid
func (s *ClientSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for ClientSettings: %w", err)
	}
	return nil
}
