package services

import (
	"fmt"
	"testing"
	"time"

	"canteen/internal/auth"
	"canteen/internal/errs"
	"canteen/internal/models"
	"canteen/internal/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func notFoundUser(username string) error {
	return fmt.Errorf("user %q: %w", username, errs.ErrNotFound)
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, new(MockSessionStore), testSecret, time.Minute)

		userRepo.On("GetByUsername", "alice").Return(nil, notFoundUser("alice"))
		userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.Register("alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, string(models.RoleUser), user.Role)
		assert.True(t, auth.CheckPasswordHash("hunter2", user.PasswordHash))
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, new(MockSessionStore), testSecret, time.Minute)

		userRepo.On("GetByUsername", "alice").Return(&models.User{Username: "alice"}, nil)

		_, err := svc.Register("alice", "hunter2")
		assert.ErrorIs(t, err, ErrUsernameTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), new(MockSessionStore), testSecret, time.Minute)

		_, err := svc.Register("  ", "hunter2")
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		_, err = svc.Register("alice", "")
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	alice := &models.User{ID: 1, Username: "alice", PasswordHash: hash, Role: string(models.RoleUser)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessions := new(MockSessionStore)
		svc := NewAuthService(userRepo, sessions, testSecret, time.Minute)

		userRepo.On("GetByUsername", "alice").Return(alice, nil)
		sessions.On("SetSession", mock.AnythingOfType("string"), mock.AnythingOfType("*redis.SessionData"), time.Minute).Return(nil)

		tokenStr, user, err := svc.Login("alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		claims, err := auth.ParseToken(testSecret, tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, string(models.RoleUser), claims.Role)

		// The session is keyed by the token id.
		sessions.AssertCalled(t, "SetSession", claims.ID, mock.MatchedBy(func(s *redis.SessionData) bool {
			return s.Username == "alice" && s.Role == string(models.RoleUser)
		}), time.Minute)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessions := new(MockSessionStore)
		svc := NewAuthService(userRepo, sessions, testSecret, time.Minute)

		userRepo.On("GetByUsername", "alice").Return(alice, nil)

		_, _, err := svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "SetSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, new(MockSessionStore), testSecret, time.Minute)

		userRepo.On("GetByUsername", "mallory").Return(nil, notFoundUser("mallory"))

		_, _, err := svc.Login("mallory", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	sessions := new(MockSessionStore)
	svc := NewAuthService(new(MockUserRepository), sessions, testSecret, time.Minute)

	sessions.On("DeleteSession", "session-1").Return(nil)

	assert.NoError(t, svc.Logout("session-1"))
	sessions.AssertExpectations(t)
}
