package repository_test

import (
	"context"
	"testing"

	"ctchen222/exercise-tracker/internal/api/repository"
	"ctchen222/exercise-tracker/internal/api/repository/repotest"
	"ctchen222/exercise-tracker/internal/db"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func TestMongoRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, database, err := db.NewMongoClient(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	require.NoError(t, repository.EnsureMongoIndexes(ctx, database))

	repotest.Run(t, func(t *testing.T) (repository.UserRepository, repository.ExerciseRepository) {
		users := repository.NewMongoUserRepository(database)
		exercises := repository.NewMongoExerciseRepository(database)
		_, err := users.DeleteAllUsers(ctx)
		require.NoError(t, err)
		_, err = exercises.DeleteAllExercises(ctx)
		require.NoError(t, err)
		return users, exercises
	})
}
