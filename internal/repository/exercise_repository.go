package repository

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	apirepository "ctchen222/exercise-tracker/internal/api/repository"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// exercisesKey is the set of every exercise id.
	exercisesKey = "exercises"
	// exerciseIndexesKey is the set of per-user date index keys.
	exerciseIndexesKey = "exercise:indexes"

	FieldUserID      = "user_id"
	FieldUsername    = "username"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldDate        = "date"
)

func exerciseKey(id string) string {
	return fmt.Sprintf("exercise:%s", id)
}

// userExercisesKey is a sorted set of one user's exercise ids scored by date.
func userExercisesKey(userID string) string {
	return fmt.Sprintf("user:%s:exercises", userID)
}

// dateScore turns YYYY-MM-DD into the number YYYYMMDD, which orders the
// same way as the date.
func dateScore(date string) (string, error) {
	digits := strings.ReplaceAll(date, "-", "")
	if len(digits) != 8 {
		return "", fmt.Errorf("date %q is not in YYYY-MM-DD form", date)
	}
	if _, err := strconv.Atoi(digits); err != nil {
		return "", fmt.Errorf("date %q is not in YYYY-MM-DD form", date)
	}
	return digits, nil
}

type redisExerciseRepository struct {
	rdb *redis.Client
}

// NewExerciseRepository creates a new Redis-based ExerciseRepository.
func NewExerciseRepository(rdb *redis.Client) apirepository.ExerciseRepository {
	return &redisExerciseRepository{rdb: rdb}
}

// CreateExercise stores the exercise hash and indexes it under its user by date.
func (r *redisExerciseRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.CreateExercise")
	defer span.End()

	score, err := dateScore(exercise.Date)
	if err != nil {
		return fail(span, err)
	}
	scoreValue, _ := strconv.ParseFloat(score, 64)

	id := uuid.NewString()
	indexKey := userExercisesKey(exercise.UserID)

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, exerciseKey(id),
		FieldUserID, exercise.UserID,
		FieldUsername, exercise.Username,
		FieldDescription, exercise.Description,
		FieldDuration, exercise.Duration,
		FieldDate, exercise.Date,
	)
	pipe.ZAdd(ctx, indexKey, &redis.Z{Score: scoreValue, Member: id})
	pipe.SAdd(ctx, exercisesKey, id)
	pipe.SAdd(ctx, exerciseIndexesKey, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fail(span, fmt.Errorf("failed to create exercise in redis: %w", err))
	}
	exercise.ID = id
	return nil
}

// FindExercises range-scans the user's date index and loads the hashes.
func (r *redisExerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.FindExercises")
	defer span.End()
	span.SetAttributes(
		attribute.String("exercise.from", filter.From),
		attribute.String("exercise.to", filter.To),
		attribute.Int("exercise.limit", filter.Limit),
	)

	lo, err := dateScore(filter.From)
	if err != nil {
		return nil, fail(span, err)
	}
	hi, err := dateScore(filter.To)
	if err != nil {
		return nil, fail(span, err)
	}

	ids, err := r.rdb.ZRangeByScore(ctx, userExercisesKey(filter.UserID), &redis.ZRangeBy{
		Min:    lo,
		Max:    hi,
		Offset: 0,
		Count:  int64(filter.Limit),
	}).Result()
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to scan exercise index: %w", err))
	}

	exercises := make([]models.Exercise, 0, len(ids))
	if len(ids) == 0 {
		return exercises, nil
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, exerciseKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fail(span, fmt.Errorf("failed to load exercises: %w", err))
	}

	for i, cmd := range cmds {
		data := cmd.Val()
		if len(data) == 0 {
			continue
		}
		duration, err := strconv.Atoi(data[FieldDuration])
		if err != nil {
			return nil, fail(span, fmt.Errorf("corrupt duration on exercise %s: %w", ids[i], err))
		}
		exercises = append(exercises, models.Exercise{
			ID:          ids[i],
			UserID:      data[FieldUserID],
			Username:    data[FieldUsername],
			Description: data[FieldDescription],
			Duration:    duration,
			Date:        data[FieldDate],
		})
	}
	return exercises, nil
}

// DeleteAllExercises drops every exercise hash and every per-user index.
func (r *redisExerciseRepository) DeleteAllExercises(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.DeleteAllExercises")
	defer span.End()

	ids, err := r.rdb.SMembers(ctx, exercisesKey).Result()
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to list exercise ids: %w", err))
	}
	indexKeys, err := r.rdb.SMembers(ctx, exerciseIndexesKey).Result()
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to list exercise indexes: %w", err))
	}
	if len(ids) == 0 && len(indexKeys) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, exerciseKey(id))
	}

	pipe := r.rdb.TxPipeline()
	var deleted *redis.IntCmd
	if len(keys) > 0 {
		deleted = pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, append(indexKeys, exercisesKey, exerciseIndexesKey)...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete exercises: %w", err))
	}
	if deleted == nil {
		return 0, nil
	}
	return deleted.Val(), nil
}
