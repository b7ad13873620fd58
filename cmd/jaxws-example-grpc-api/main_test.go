//go:build integration
// +build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

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

func TestInitializeGRPCServers(t *testing.T) {
	closed := countCloseDB(t)
	log := testutil.NewRecordingLogger()

	cfg := &config.GrpcConfig{Database: config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"}}
	servers, err := initializeGRPCServers(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(servers.db, log) })

	assert.NotNil(t, servers.db)
	assert.NotNil(t, servers.echo)
	assert.NotNil(t, servers.person)
	assert.Zero(t, *closed)
}

func TestInitializeGRPCServers_ClosesDatabaseOnFailure(t *testing.T) {
	closed := countCloseDB(t)

	// migrations cannot create tables in a read-only database
	path := filepath.Join(t.TempDir(), "readonly.db")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	cfg := &config.GrpcConfig{Database: config.DatabaseSettings{Type: config.SqliteDbType, DSN: "file:" + path + "?mode=ro"}}

	servers, err := initializeGRPCServers(cfg, testutil.NewRecordingLogger())
	assert.ErrorContains(t, err, "failed to migrate schema")
	assert.Nil(t, servers)
	assert.Equal(t, 1, *closed)
}
