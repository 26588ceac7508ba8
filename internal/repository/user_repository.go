package repository

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	apirepository "ctchen222/exercise-tracker/internal/api/repository"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.redis")

const (
	// usersKey lists user ids in insertion order.
	usersKey      = "users"
	fieldUsername = "username"
)

func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

type redisUserRepository struct {
	rdb *redis.Client
}

// NewUserRepository creates a new Redis-based UserRepository. Each user is a
// hash at user:<id>, and the users list keeps their creation order.
func NewUserRepository(rdb *redis.Client) apirepository.UserRepository {
	return &redisUserRepository{rdb: rdb}
}

// CreateUser writes the user hash and appends its id to the users list.
func (r *redisUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.CreateUser")
	defer span.End()

	id := uuid.NewString()
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, userKey(id), fieldUsername, user.Username)
	pipe.RPush(ctx, usersKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fail(span, fmt.Errorf("failed to create user in redis: %w", err))
	}
	user.ID = id
	return nil
}

// GetUserByID returns nil when the user hash does not exist.
func (r *redisUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetUserByID")
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to get user from redis: %w", err))
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &models.User{ID: id, Username: data[fieldUsername]}, nil
}

// ListUsers reads the users list and fetches every hash in one pipeline.
func (r *redisUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.ListUsers")
	defer span.End()

	ids, err := r.rdb.LRange(ctx, usersKey, 0, -1).Result()
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to list user ids: %w", err))
	}

	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, userKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fail(span, fmt.Errorf("failed to load users: %w", err))
	}

	for i, cmd := range cmds {
		data := cmd.Val()
		if len(data) == 0 {
			continue
		}
		users = append(users, models.User{ID: ids[i], Username: data[fieldUsername]})
	}
	return users, nil
}

// DeleteAllUsers removes every user hash and the users list.
func (r *redisUserRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.DeleteAllUsers")
	defer span.End()

	ids, err := r.rdb.LRange(ctx, usersKey, 0, -1).Result()
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to list user ids: %w", err))
	}

	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, userKey(id))
	}

	pipe := r.rdb.TxPipeline()
	deleted := pipe.Del(ctx, keys...)
	pipe.Del(ctx, usersKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete users: %w", err))
	}
	return deleted.Val(), nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
