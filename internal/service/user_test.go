package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_go/internal/core/config"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
)

func newTestUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, &config.JWTConfig{Secret: "test-secret", Expiry: 3600}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "anna",
		Email:    "anna@example.com",
		Password: "hunter22",
		FullName: "Anna Lindqvist",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)

	token, err := svc.Login(ctx, "anna", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "anna", Email: "anna@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{
		Username: "anna", Email: "other@example.com", Password: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDuplicateUsername, err.(*apperr.AppError).Code)

	_, err = svc.Register(ctx, &model.RegisterRequest{
		Username: "bo", Email: "anna@example.com", Password: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDuplicateEmail, err.(*apperr.AppError).Code)
}

func TestLoginOpaqueFailure(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: "anna", Email: "anna@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, badPass := svc.Login(ctx, "anna", "wrong")
	_, noUser := svc.Login(ctx, "nobody", "wrong")

	require.Error(t, badPass)
	require.Error(t, noUser)
	// the message must not reveal which part was wrong
	assert.Equal(t, badPass.Error(), noUser.Error())
	assert.Equal(t, apperr.CodeBadCredentials, badPass.(*apperr.AppError).Code)
}

func TestToggleAdmin(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	repo.users[9] = &model.User{ID: 9, Username: "bo"}

	user, err := svc.ToggleAdmin(ctx, 9)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	user, err = svc.ToggleAdmin(ctx, 9)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	repo.users[1] = &model.User{ID: 1, Username: "anna", Email: "anna@example.com"}
	repo.users[2] = &model.User{ID: 2, Username: "bo", Email: "bo@example.com"}

	taken := "anna@example.com"
	_, err := svc.Update(ctx, 2, &model.UserUpdateRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDuplicateEmail, err.(*apperr.AppError).Code)

	// updating to your own current email is fine
	same := "bo@example.com"
	_, err = svc.Update(ctx, 2, &model.UserUpdateRequest{Email: &same})
	assert.NoError(t, err)
}
