package repository_test

import (
	"context"
	"testing"

	apirepository "ctchen222/exercise-tracker/internal/api/repository"
	"ctchen222/exercise-tracker/internal/api/repository/repotest"
	"ctchen222/exercise-tracker/internal/db"
	"ctchen222/exercise-tracker/internal/repository"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := db.NewRedisClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	repotest.Run(t, func(t *testing.T) (apirepository.UserRepository, apirepository.ExerciseRepository) {
		require.NoError(t, rdb.FlushDB(ctx).Err())
		return repository.NewUserRepository(rdb), repository.NewExerciseRepository(rdb)
	})
}
