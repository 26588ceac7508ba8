// Package repotest holds behavior tests shared by every repository backend.
package repotest

import (
	"context"
	"testing"

	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns empty repositories of one backend.
type Factory func(t *testing.T) (repository.UserRepository, repository.ExerciseRepository)

// Run exercises users and exercises against the backend built by newRepos.
func Run(t *testing.T, newRepos Factory) {
	t.Run("CreateAndGetUser", func(t *testing.T) { testCreateAndGetUser(t, newRepos) })
	t.Run("UnknownUser", func(t *testing.T) { testUnknownUser(t, newRepos) })
	t.Run("ListUsersInInsertionOrder", func(t *testing.T) { testListUsers(t, newRepos) })
	t.Run("DeleteAllUsers", func(t *testing.T) { testDeleteAllUsers(t, newRepos) })
	t.Run("FindExercisesByRange", func(t *testing.T) { testFindExercisesByRange(t, newRepos) })
	t.Run("FindExercisesLimit", func(t *testing.T) { testFindExercisesLimit(t, newRepos) })
	t.Run("ExercisesSurviveUserPurge", func(t *testing.T) { testExercisesSurviveUserPurge(t, newRepos) })
	t.Run("DeleteAllExercises", func(t *testing.T) { testDeleteAllExercises(t, newRepos) })
}

func createUser(t *testing.T, users repository.UserRepository, name string) models.User {
	t.Helper()
	u := models.User{Username: name}
	require.NoError(t, users.CreateUser(context.Background(), &u))
	require.NotEmpty(t, u.ID)
	return u
}

func createExercise(t *testing.T, exercises repository.ExerciseRepository, user models.User, desc, date string) models.Exercise {
	t.Helper()
	e := models.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: desc,
		Duration:    30,
		Date:        date,
	}
	require.NoError(t, exercises.CreateExercise(context.Background(), &e))
	require.NotEmpty(t, e.ID)
	return e
}

func descriptions(exercises []models.Exercise) []string {
	out := make([]string, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e.Description)
	}
	return out
}

func testCreateAndGetUser(t *testing.T, newRepos Factory) {
	users, _ := newRepos(t)
	ctx := context.Background()

	first := createUser(t, users, "fcc_test")
	second := createUser(t, users, "fcc_test")
	assert.NotEqual(t, first.ID, second.ID, "duplicate usernames get distinct ids")

	got, err := users.GetUserByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)
}

func testUnknownUser(t *testing.T, newRepos Factory) {
	users, _ := newRepos(t)

	for _, id := range []string{"", "does-not-exist", "000000000000000000000000"} {
		got, err := users.GetUserByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, got, "id %q", id)
	}
}

func testListUsers(t *testing.T, newRepos Factory) {
	users, _ := newRepos(t)
	ctx := context.Background()

	empty, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	want := []models.User{
		createUser(t, users, "alice"),
		createUser(t, users, "bob"),
		createUser(t, users, "carol"),
	}

	got, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func testDeleteAllUsers(t *testing.T, newRepos Factory) {
	users, _ := newRepos(t)
	ctx := context.Background()

	createUser(t, users, "alice")
	createUser(t, users, "bob")

	n, err := users.DeleteAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err = users.DeleteAllUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testFindExercisesByRange(t *testing.T, newRepos Factory) {
	users, exercises := newRepos(t)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	createExercise(t, exercises, alice, "before", "2022-12-31")
	createExercise(t, exercises, alice, "first day", "2023-01-01")
	createExercise(t, exercises, alice, "mid year", "2023-06-15")
	createExercise(t, exercises, alice, "last day", "2023-12-31")
	createExercise(t, exercises, alice, "after", "2024-01-01")
	createExercise(t, exercises, bob, "someone else", "2023-06-15")

	got, err := exercises.FindExercises(ctx, models.LogFilter{
		UserID: alice.ID,
		From:   "2023-01-01",
		To:     "2023-12-31",
		Limit:  500,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first day", "mid year", "last day"}, descriptions(got))
	for _, e := range got {
		assert.Equal(t, alice.ID, e.UserID)
		assert.Equal(t, "alice", e.Username)
		assert.Equal(t, 30, e.Duration)
	}

	none, err := exercises.FindExercises(ctx, models.LogFilter{
		UserID: "nobody",
		From:   "1970-01-01",
		To:     "2100-01-01",
		Limit:  500,
	})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func testFindExercisesLimit(t *testing.T, newRepos Factory) {
	users, exercises := newRepos(t)

	alice := createUser(t, users, "alice")
	for _, date := range []string{"2023-01-01", "2023-01-02", "2023-01-03", "2023-01-04"} {
		createExercise(t, exercises, alice, "run "+date, date)
	}

	got, err := exercises.FindExercises(context.Background(), models.LogFilter{
		UserID: alice.ID,
		From:   "1970-01-01",
		To:     "2023-12-31",
		Limit:  2,
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func testExercisesSurviveUserPurge(t *testing.T, newRepos Factory) {
	users, exercises := newRepos(t)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	createExercise(t, exercises, alice, "run", "2023-03-03")

	_, err := users.DeleteAllUsers(ctx)
	require.NoError(t, err)

	got, err := exercises.FindExercises(ctx, models.LogFilter{
		UserID: alice.ID,
		From:   "1970-01-01",
		To:     "2100-01-01",
		Limit:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, descriptions(got))
}

func testDeleteAllExercises(t *testing.T, newRepos Factory) {
	users, exercises := newRepos(t)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	createExercise(t, exercises, alice, "run", "2023-03-03")
	createExercise(t, exercises, alice, "swim", "2023-03-04")

	n, err := exercises.DeleteAllExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := exercises.FindExercises(ctx, models.LogFilter{
		UserID: alice.ID,
		From:   "1970-01-01",
		To:     "2100-01-01",
		Limit:  500,
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	// Users are untouched by an exercise purge.
	u, err := users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, u)
}
