package repository

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=exercise_repository.go -destination=mocks/exercise_repository_mock.go -package=mocks

// ExerciseRepository defines the interface for exercise data operations.
type ExerciseRepository interface {
	// CreateExercise stores exercise and sets its ID. exercise.Date must
	// already be in YYYY-MM-DD form.
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	// FindExercises returns at most filter.Limit exercises of filter.UserID
	// dated within [filter.From, filter.To].
	FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error)
	DeleteAllExercises(ctx context.Context) (int64, error)
}

type sqliteExerciseRepository struct {
	db *sqlx.DB
}

// NewExerciseRepository creates a new SQLite-based ExerciseRepository.
func NewExerciseRepository(db *sqlx.DB) ExerciseRepository {
	return &sqliteExerciseRepository{db: db}
}

func (r *sqliteExerciseRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.CreateExercise")
	defer span.End()

	id := uuid.NewString()
	query := `INSERT INTO exercises (id, user_id, username, description, duration, date) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		id, exercise.UserID, exercise.Username, exercise.Description, exercise.Duration, exercise.Date)
	if err != nil {
		return fail(span, fmt.Errorf("failed to create exercise: %w", err))
	}
	exercise.ID = id
	return nil
}

// FindExercises compares dates as strings, which is chronological for YYYY-MM-DD.
func (r *sqliteExerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.FindExercises")
	defer span.End()
	span.SetAttributes(
		attribute.String("exercise.from", filter.From),
		attribute.String("exercise.to", filter.To),
		attribute.Int("exercise.limit", filter.Limit),
	)

	exercises := []models.Exercise{}
	query := `SELECT id, user_id, username, description, duration, date FROM exercises
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY rowid
		LIMIT ?`
	if err := r.db.SelectContext(ctx, &exercises, query, filter.UserID, filter.From, filter.To, filter.Limit); err != nil {
		return nil, fail(span, fmt.Errorf("failed to find exercises: %w", err))
	}
	return exercises, nil
}

func (r *sqliteExerciseRepository) DeleteAllExercises(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ExerciseRepository.DeleteAllExercises")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises`)
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete exercises: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to count deleted exercises: %w", err))
	}
	return n, nil
}
