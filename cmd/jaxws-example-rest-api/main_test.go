//go:build integration
// +build integration

package main

import (
	"testing"
	"time"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/logger"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countCloseDB(t *testing.T) *int {
	t.Helper()
	closed := 0
	original := closeDB
	closeDB = func(db *gorm.DB, log logger.Logger) {
		closed++
		original(db, log)
	}
	t.Cleanup(func() { closeDB = original })
	return &closed
}

func testRestConfig() *config.RestConfig {
	return &config.RestConfig{
		Port:      "8080",
		AdminPort: "8081",
		Database:  config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"},
		Soap:      config.SoapSettings{BasePath: config.DefaultSoapBasePath},
		Auth:      config.AuthSettings{Realm: "TOP_SECRET", Password: "secret"},
		Client: config.ClientSettings{
			BaseURL:  "http://localhost:8080/soap",
			Timeout:  time.Second,
			Username: "johndoe",
			Password: "secret",
		},
	}
}

func TestInitializeDependencies(t *testing.T) {
	closed := countCloseDB(t)
	log := testutil.NewRecordingLogger()

	deps, err := initializeDependencies(testRestConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(deps.db, log) })

	assert.NotNil(t, deps.bundle)
	assert.NotEmpty(t, deps.bundle.Endpoints())
	assert.Zero(t, *closed)
}

func TestInitializeDependencies_ClosesDatabaseOnFailure(t *testing.T) {
	closed := countCloseDB(t)

	cfg := testRestConfig()
	cfg.Soap.BasePath = "/"

	deps, err := initializeDependencies(cfg, testutil.NewRecordingLogger())
	assert.ErrorContains(t, err, "failed to create SOAP bundle")
	assert.Nil(t, deps)
	assert.Equal(t, 1, *closed)
}
