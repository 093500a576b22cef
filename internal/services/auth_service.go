package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen/internal/auth"
	"canteen/internal/errs"
	"canteen/internal/logger"
	"canteen/internal/models"
	"canteen/internal/redis"
	"canteen/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// SessionStore is the slice of the Redis client the auth service needs.
type SessionStore interface {
	SetSession(sessionID string, data *redis.SessionData, ttl time.Duration) error
	DeleteSession(sessionID string) error
}

type AuthService interface {
	Register(username, password string) (*models.User, error)
	Login(username, password string) (string, *models.User, error)
	Logout(sessionID string) error
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   SessionStore
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", errs.ErrInvalidInput)
	}

	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         string(models.RoleUser),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.L().Info("user registered", zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials, issues an access token and opens the backing
// Redis session keyed by the token id.
func (s *authService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	tokenStr, sessionID, err := auth.GenerateToken(s.jwtSecret, user.Username, user.Role, s.sessionTTL)
	if err != nil {
		return "", nil, err
	}

	session := &redis.SessionData{
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(sessionID, session, s.sessionTTL); err != nil {
		return "", nil, err
	}

	logger.L().Info("user logged in",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
	return tokenStr, user, nil
}

// Logout revokes the session; the matching token stops working even though
// it has not expired yet.
func (s *authService) Logout(sessionID string) error {
	return s.sessions.DeleteSession(sessionID)
}
