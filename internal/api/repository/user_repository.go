package repository

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

var tracer = otel.Tracer("api.repository")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser stores user and sets its ID.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByID returns nil and no error when no user has the given id.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// CreateUser inserts a new user with a freshly generated id.
func (r *sqliteUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.CreateUser")
	defer span.End()

	id := uuid.NewString()
	query := `INSERT INTO users (id, username) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id, user.Username); err != nil {
		return fail(span, fmt.Errorf("failed to create user: %w", err))
	}
	user.ID = id
	return nil
}

// GetUserByID retrieves a user from the database by id.
func (r *sqliteUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetUserByID")
	defer span.End()

	var user models.User
	query := `SELECT id, username FROM users WHERE id = ?`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No user found is not an application error
		}
		return nil, fail(span, fmt.Errorf("failed to get user by id: %w", err))
	}
	return &user, nil
}

// ListUsers returns every user in insertion order.
func (r *sqliteUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.ListUsers")
	defer span.End()

	users := []models.User{}
	query := `SELECT id, username FROM users ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fail(span, fmt.Errorf("failed to list users: %w", err))
	}
	return users, nil
}

// DeleteAllUsers removes every user and reports how many were deleted.
func (r *sqliteUserRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.DeleteAllUsers")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to delete users: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fail(span, fmt.Errorf("failed to count deleted users: %w", err))
	}
	return n, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
