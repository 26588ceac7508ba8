package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apirepository "ctchen222/exercise-tracker/internal/api/repository"
	"ctchen222/exercise-tracker/internal/db"
	"ctchen222/exercise-tracker/internal/repository"
)

// Backend names the kind of store behind a Store.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMongo  Backend = "mongo"
)

// Store is the process-wide handle to the user and exercise repositories.
// It is created once in main, shared by all handlers and closed on shutdown.
type Store struct {
	Backend   Backend
	Users     apirepository.UserRepository
	Exercises apirepository.ExerciseRepository

	ping  func(context.Context) error
	close func() error
}

// Ping checks that the underlying store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the connection to the underlying store.
func (s *Store) Close() error {
	return s.close()
}

// ParseURL splits a connection string into its backend and the address the
// backend's driver expects. A bare path selects SQLite.
func ParseURL(url string) (Backend, string, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return BackendMongo, url, nil
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return BackendRedis, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", url)
		}
		return BackendSQLite, path, nil
	case strings.Contains(url, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme in %q", url)
	case url == "":
		return "", "", fmt.Errorf("database url is empty")
	default:
		return BackendSQLite, url, nil
	}
}

// Open connects to the store named by url and wires its repositories.
func Open(ctx context.Context, url string) (*Store, error) {
	backend, addr, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	var store *Store
	switch backend {
	case BackendMongo:
		store, err = openMongo(ctx, addr)
	case BackendRedis:
		store, err = openRedis(ctx, addr)
	default:
		store, err = openSQLite(ctx, addr)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Store opened", "backend", backend)
	return store, nil
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	pool, err := db.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Store{
		Backend:   BackendSQLite,
		Users:     apirepository.NewUserRepository(pool),
		Exercises: apirepository.NewExerciseRepository(pool),
		ping:      pool.PingContext,
		close:     pool.Close,
	}, nil
}

func openRedis(ctx context.Context, url string) (*Store, error) {
	rdb, err := db.NewRedisClient(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Store{
		Backend:   BackendRedis,
		Users:     repository.NewUserRepository(rdb),
		Exercises: repository.NewExerciseRepository(rdb),
		ping:      func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		close:     rdb.Close,
	}, nil
}

func openMongo(ctx context.Context, uri string) (*Store, error) {
	client, database, err := db.NewMongoClient(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := apirepository.EnsureMongoIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &Store{
		Backend:   BackendMongo,
		Users:     apirepository.NewMongoUserRepository(database),
		Exercises: apirepository.NewMongoExerciseRepository(database),
		ping:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:     func() error { return client.Disconnect(context.Background()) },
	}, nil
}
