package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/refreshtokens"
)

// RefreshTokenRepository stores refresh tokens in the shared volatile store;
// a restart logs everyone out, which matches the rest of the state.
type RefreshTokenRepository struct {
	s *Store
}

var _ refreshtokens.Repository = (*RefreshTokenRepository)(nil)

func NewRefreshTokenRepository(s *Store) *RefreshTokenRepository {
	return &RefreshTokenRepository{s: s}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.refreshTokens[token] = &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		Expires:   now.Add(validity),
		CreatedAt: now,
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.refreshTokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *stored
	return &out, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.refreshTokens, token)
	return nil
}
