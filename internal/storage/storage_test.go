package storage

import (
	"context"
	"testing"

	"ctchen222/exercise-tracker/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url         string
		wantBackend Backend
		wantAddr    string
		wantErr     bool
	}{
		{url: "mongodb://localhost:27017/fcc", wantBackend: BackendMongo, wantAddr: "mongodb://localhost:27017/fcc"},
		{url: "mongodb+srv://cluster.example.net/fcc", wantBackend: BackendMongo, wantAddr: "mongodb+srv://cluster.example.net/fcc"},
		{url: "redis://localhost:6379/0", wantBackend: BackendRedis, wantAddr: "redis://localhost:6379/0"},
		{url: "sqlite://data/tracker.db", wantBackend: BackendSQLite, wantAddr: "data/tracker.db"},
		{url: "sqlite://:memory:", wantBackend: BackendSQLite, wantAddr: ":memory:"},
		{url: "tracker.db", wantBackend: BackendSQLite, wantAddr: "tracker.db"},
		{url: "sqlite://", wantErr: true},
		{url: "postgres://localhost/db", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			backend, addr, err := ParseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, backend)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestOpen_SQLiteMemory(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendSQLite, store.Backend)
	require.NoError(t, store.Ping(ctx))

	user := models.User{Username: "fcc_test"}
	require.NoError(t, store.Users.CreateUser(ctx, &user))

	users, err := store.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/db")
	assert.Error(t, err)
}
