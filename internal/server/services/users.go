// Package services holds the server's business logic between the HTTP
// handlers and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"moodflow/internal/common"
	"moodflow/internal/server/auth"
	"moodflow/internal/server/config"
	"moodflow/internal/server/models"
	"moodflow/internal/server/repositories/users"
)

// UserService registers accounts and authenticates sessions.
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account with a bcrypt-hashed password. A duplicate
// username yields common.ErrorUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns the user along with a signed
// session token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", fmt.Errorf("error fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("token generation error: %w", err)
	}

	return user, token, nil
}

// UserFromToken resolves a session token back to its user. Invalid or expired
// tokens, and tokens whose user no longer exists, yield
// common.ErrorInvalidToken.
func (s *UserService) UserFromToken(ctx context.Context, token string) (*models.User, error) {

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidToken
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}
