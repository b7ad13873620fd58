//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restConfigYAML = `
port: "8080"
admin_port: "8081"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: info
  log_type: console
soap:
  base_path: /soap
  requests_per_second: 50
  burst: 10
auth:
  realm: TOP_SECRET
  password: secret
client:
  base_url: http://localhost:8080/soap
  timeout: 5s
  username: johndoe
  password: secret
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, restConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "8081", cfg.AdminPort)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "/soap", cfg.Soap.BasePath)
	assert.Equal(t, 50.0, cfg.Soap.RequestsPerSecond)
	assert.Equal(t, "TOP_SECRET", cfg.Auth.Realm)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "johndoe", cfg.Client.Username)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	minimal := `
database:
  type: sqlite
logger:
  log_level: debug
  log_type: console
auth:
  password: secret
client:
  username: johndoe
  password: secret
`
	cfg, err := InitializeRestConfig(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "8081", cfg.AdminPort)
	assert.Equal(t, DefaultSoapBasePath, cfg.Soap.BasePath)
	assert.Equal(t, "TOP_SECRET", cfg.Auth.Realm)
	assert.Equal(t, "http://localhost:8080/soap", cfg.Client.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("JAXWS_PORT", "9090")
	t.Setenv("JAXWS_AUTH_PASSWORD", "changeit")

	cfg, err := InitializeRestConfig(writeConfig(t, restConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "changeit", cfg.Auth.Password)
}

func TestInitializeRestConfig_CredentialsOnlyInEnv(t *testing.T) {
	withoutCredentials := `
database:
  type: sqlite
logger:
  log_level: info
  log_type: console
`
	t.Setenv("JAXWS_DATABASE_DSN", ":memory:")
	t.Setenv("JAXWS_AUTH_PASSWORD", "changeit")
	t.Setenv("JAXWS_CLIENT_USERNAME", "johndoe")
	t.Setenv("JAXWS_CLIENT_PASSWORD", "secret")

	cfg, err := InitializeRestConfig(writeConfig(t, withoutCredentials))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, "changeit", cfg.Auth.Password)
	assert.Equal(t, "johndoe", cfg.Client.Username)
	assert.Equal(t, "secret", cfg.Client.Password)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("same port for admin and application", func(t *testing.T) {
		content := restConfigYAML + "\n"
		path := writeConfig(t, content)
		t.Setenv("JAXWS_ADMIN_PORT", "8080")

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("rate limit without burst", func(t *testing.T) {
		t.Setenv("JAXWS_SOAP_BURST", "0")

		_, err := InitializeRestConfig(writeConfig(t, restConfigYAML))
		assert.Error(t, err)
	})
}

func TestInitializeGrpcConfig(t *testing.T) {
	content := `
port: "50051"
gateway_port: "8090"
database:
  type: sqlite
logger:
  log_level: info
  log_type: console
`
	cfg, err := InitializeGrpcConfig(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, "50051", cfg.Port)
	assert.Equal(t, "8090", cfg.GatewayPort)
}

func TestSoapSettingsValidation(t *testing.T) {
	tests := []struct {
		name      string
		settings  SoapSettings
		shouldErr bool
	}{
		{"default path", SoapSettings{BasePath: "/soap"}, false},
		{"relative path", SoapSettings{BasePath: "soap"}, true},
		{"root path", SoapSettings{BasePath: "/"}, true},
		{"negative rate", SoapSettings{BasePath: "/soap", RequestsPerSecond: -1}, true},
		{"rate with burst", SoapSettings{BasePath: "/soap", RequestsPerSecond: 5, Burst: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
