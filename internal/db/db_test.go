package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	pool, err := OpenSQLite(ctx, MemoryPath)
	require.NoError(t, err)
	defer pool.Close()

	var tables []string
	err = pool.SelectContext(ctx, &tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"exercises", "users"}, tables)

	// Running the schema again must be a no-op.
	assert.NoError(t, InitializeSchema(ctx, pool))
}

func TestOpenSQLite_File(t *testing.T) {
	path := t.TempDir() + "/tracker.db"
	pool, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, pool.Close())
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "http://localhost:6379")
	assert.Error(t, err)
}

func TestNewMongoClient_InvalidURI(t *testing.T) {
	_, _, err := NewMongoClient(context.Background(), "not-a-mongo-uri")
	assert.Error(t, err)
}
