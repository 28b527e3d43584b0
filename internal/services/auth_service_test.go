package services_test

import (
	"strings"
	"testing"

	"devconnect_backend/internal/auth"
	"devconnect_backend/internal/services/dto"
	"devconnect_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newServices()

	resp, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.User.ID)
	assert.True(t, strings.HasPrefix(resp.User.Avatar, "https://www.gravatar.com/avatar/"))
	assert.NotEqual(t, "super_password123", resp.User.PasswordHash)

	// The issued token identifies the new account.
	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newServices()

	req := &dto.RegisterRequest{
		Name:     "User One",
		Email:    "duplicate@test.com",
		Password: "super_password123",
	}
	_, err := svc.AuthService.Register(db, req)
	require.NoError(t, err)

	req.Name = "User Two"
	_, err = svc.AuthService.Register(db, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newServices()

	reg, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	resp, err := svc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "ada@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newServices()

	_, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "ada@test.com",
		Password: "wrong_password",
	})
	_, unknownEmail := svc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "super_password123",
	})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := newServices()

	user := registerUser(t, svc, db, "Ada")

	got, err := svc.AuthService.GetCurrentUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.AuthService.GetCurrentUser(db, "00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)
}
