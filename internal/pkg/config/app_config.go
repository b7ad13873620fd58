package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. JAXWS_DATABASE_DSN
const EnvPrefix = "JAXWS"

// RestConfig is the configuration of the SOAP + REST application
type RestConfig struct {
	Port      string           `mapstructure:"port" validate:"required,numeric"`
	AdminPort string           `mapstructure:"admin_port" validate:"required,numeric,nefield=Port"`
	Database  DatabaseSettings `mapstructure:"database"`
	Logger    LoggerSettings   `mapstructure:"logger"`
	Soap      SoapSettings     `mapstructure:"soap"`
	Auth      AuthSettings     `mapstructure:"auth"`
	Client    ClientSettings   `mapstructure:"client"`
}

// Validate checks the top-level fields and every nested settings block
func (c *RestConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port", "AdminPort"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Soap.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Client.Validate()
}

// GrpcConfig is the configuration of the gRPC application and its HTTP gateway
type GrpcConfig struct {
	Port        string           `mapstructure:"port" validate:"required,numeric"`
	GatewayPort string           `mapstructure:"gateway_port" validate:"required,numeric,nefield=Port"`
	Database    DatabaseSettings `mapstructure:"database"`
	Logger      LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the top-level fields and every nested settings block
func (c *GrpcConfig) Validate() error {
	if err := validator.New().StructPartial(c, "Port", "GatewayPort"); err != nil {
		return fmt.Errorf("validation failed for GrpcConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// InitializeRestConfig loads, overrides from the environment and validates a RestConfig
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper(path)
	v.SetDefault("port", "8080")
	v.SetDefault("admin_port", "8081")
	v.SetDefault("soap.base_path", DefaultSoapBasePath)
	v.SetDefault("auth.realm", "TOP_SECRET")
	v.SetDefault("client.base_url", "http://localhost:8080"+DefaultSoapBasePath)
	v.SetDefault("client.timeout", 10*time.Second)
	// credentials are usually kept out of the file, so AutomaticEnv alone would never see them
	if err := bindEnv(v, "database.dsn", "auth.password", "client.username", "client.password"); err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return &cfg, nil
}

// InitializeGrpcConfig loads, overrides from the environment and validates a GrpcConfig
func InitializeGrpcConfig(path string) (*GrpcConfig, error) {
	v := newViper(path)
	v.SetDefault("port", "50051")
	v.SetDefault("gateway_port", "8090")
	if err := bindEnv(v, "database.dsn"); err != nil {
		return nil, err
	}

	var cfg GrpcConfig
	if err := load(v, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return &cfg, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindEnv makes keys absent from the config file visible to Unmarshal when
// their JAXWS_ variable is set
func bindEnv(v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func load(v *viper.Viper, out interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}
