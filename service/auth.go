package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/taskforge/auth"
	apperrors "github.com/taskforge/taskforge/errors"
	"github.com/taskforge/taskforge/models"
	"github.com/taskforge/taskforge/store"
)

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users  store.UserStore
	tokens *auth.TokenManager
}

func NewAuthService(users store.UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register hashes the password and persists a new user. The returned
// user carries no hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, apperrors.Validation("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperrors.Unexpected("hash password", err)
	}

	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a signed token. An unknown
// username and a wrong password produce the same error so the caller
// cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.Validation("username and password are required")
	}

	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return "", apperrors.Authentication("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.Authentication("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", apperrors.Unexpected("sign token", err)
	}
	return token, nil
}
