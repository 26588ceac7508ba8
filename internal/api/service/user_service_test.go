package service

import (
	"context"
	"errors"
	"testing"

	"ctchen222/exercise-tracker/internal/api/models"
	"ctchen222/exercise-tracker/internal/api/repository/mocks"
	"ctchen222/exercise-tracker/pkg/proto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().
		CreateUser(gomock.Any(), &models.User{Username: "fcc_test"}).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = "5fb5853f734231456ccb3b05"
			return nil
		})

	got, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Username: "fcc_test"})
	require.NoError(t, err)
	assert.Equal(t, &proto.UserResponse{Username: "fcc_test", ID: "5fb5853f734231456ccb3b05"}, got)
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{name: "empty", username: ""},
		{name: "blank", username: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewUserService(mocks.NewMockUserRepository(ctrl))

			_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Username: tt.username})

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "username", verr.Field)
		})
	}
}

func TestUserService_CreateUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo)

	storeErr := errors.New("connection refused")
	userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(storeErr)

	_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Username: "fcc_test"})
	assert.ErrorIs(t, err, storeErr)
}

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{ID: "1", Username: "alice"},
		{ID: "2", Username: "alice"},
	}, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []proto.UserResponse{
		{Username: "alice", ID: "1"},
		{Username: "alice", ID: "2"},
	}, got)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUserService_DeleteAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().DeleteAllUsers(gomock.Any()).Return(int64(3), nil)

	got, err := svc.DeleteAllUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "All users deleted", got.Message)
	assert.Equal(t, proto.DeleteResult{Acknowledged: true, DeletedCount: 3}, got.Result)
}
