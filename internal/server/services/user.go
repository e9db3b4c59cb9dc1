// Package services contains server-side business logic on top of the
// repositories: account management and token issuance, listing management,
// and the purchase flow.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/randx"
	"github.com/dmitrijs2005/gophmarket/internal/server/auth"
	"github.com/dmitrijs2005/gophmarket/internal/server/config"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/users"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService handles registration, profile updates, login, and
// issuing/refreshing JWTs plus server-stored refresh tokens. The store only
// ever sees bcrypt hashes; plaintext passwords stop here.
type UserService struct {
	users                        users.Repository
	refreshTokens                refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:                        repo,
		refreshTokens:                refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new account. Username and email collisions surface as
// common.ErrorConflict from the identity index.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return sanitize(user), nil
}

// Login verifies the password and, on success, returns a new TokenPair.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.generateTokenPair(ctx, user.ID)
}

// RefreshToken validates a refresh token, rotates it, and returns a fresh
// TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return s.generateTokenPair(ctx, token.UserID)
}

// Logout revokes a refresh token. Revoking an unknown token succeeds.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokens.Delete(ctx, refreshToken)
}

// Update changes the profile fields that are non-nil. A new password is
// hashed here; uniqueness of a changed username or email is enforced by the
// identity index inside its own critical section.
func (s *UserService) Update(ctx context.Context, userID string, username, email, password *string) (*models.User, error) {
	upd := users.Update{Username: username, Email: email}

	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	user, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// List returns all registered users without credential material.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*models.User, 0, len(all))
	for _, u := range all {
		result = append(result, sanitize(u))
	}
	return result, nil
}

func sanitize(u *models.User) *models.User {
	out := *u
	out.PasswordHash = ""
	return &out
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := randx.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.refreshTokens.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
