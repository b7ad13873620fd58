//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/jaxws-example/internal/domain/people"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonPostgresRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	person := CreateTestPerson(t, "John Doe")
	require.NoError(t, ctx.PersonRepo.Create(context.Background(), person))

	fetched, err := ctx.PersonRepo.GetByID(context.Background(), person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.FullName, fetched.FullName)
}

func TestPersonPostgresRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	_, err := ctx.PersonRepo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, people.ErrPersonNotFound)
}
