package service

import (
	"context"
	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/repository"
	"ctchen222/exercise-tracker/internal/validator"
	"ctchen222/exercise-tracker/pkg/proto"
	"log/slog"
	"strings"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*proto.UserResponse, error)
	ListUsers(ctx context.Context) ([]proto.UserResponse, error)
	DeleteAllUsers(ctx context.Context) (*proto.DeleteResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser stores a new user. Usernames are not required to be unique.
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*proto.UserResponse, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return nil, fromValidator(err)
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, invalid("username", "is required")
	}

	user := &models.User{Username: req.Username}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "User created", "user_id", user.ID)
	return &proto.UserResponse{Username: user.Username, ID: user.ID}, nil
}

// ListUsers returns every user in store order.
func (s *userService) ListUsers(ctx context.Context) ([]proto.UserResponse, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]proto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, proto.UserResponse{Username: u.Username, ID: u.ID})
	}
	return out, nil
}

// DeleteAllUsers purges the user collection. Exercises are left in place.
func (s *userService) DeleteAllUsers(ctx context.Context) (*proto.DeleteResponse, error) {
	n, err := s.userRepo.DeleteAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	slog.WarnContext(ctx, "All users deleted", "count", n)
	return &proto.DeleteResponse{
		Message: "All users deleted",
		Result:  proto.DeleteResult{Acknowledged: true, DeletedCount: n},
	}, nil
}
