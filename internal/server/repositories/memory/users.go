package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/users"
)

// UserRepository is the in-memory identity index.
type UserRepository struct {
	s *Store
}

var _ users.Repository = (*UserRepository)(nil)

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userIDByName[user.Username]; taken {
		return nil, common.ErrorConflict
	}
	if _, taken := s.userIDByEmail[user.Email]; taken {
		return nil, common.ErrorConflict
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	s.users[stored.ID] = &stored
	s.userOrder = append(s.userOrder, stored.ID)
	s.userIDByName[stored.Username] = stored.ID
	s.userIDByEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *s.users[id]
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *s.users[id]
	return &out, nil
}

// Update re-checks uniqueness of a changed username or email under the same
// lock that swaps the index entries, so two racing updates cannot both claim
// the same key. Either everything is applied or nothing is.
func (r *UserRepository) Update(ctx context.Context, id string, upd users.Update) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	newUsername := user.Username
	if upd.Username != nil && *upd.Username != user.Username {
		if _, taken := s.userIDByName[*upd.Username]; taken {
			return nil, common.ErrorConflict
		}
		newUsername = *upd.Username
	}
	newEmail := user.Email
	if upd.Email != nil && *upd.Email != user.Email {
		if _, taken := s.userIDByEmail[*upd.Email]; taken {
			return nil, common.ErrorConflict
		}
		newEmail = *upd.Email
	}

	if newUsername != user.Username {
		delete(s.userIDByName, user.Username)
		s.userIDByName[newUsername] = id
		user.Username = newUsername
	}
	if newEmail != user.Email {
		delete(s.userIDByEmail, user.Email)
		s.userIDByEmail[newEmail] = id
		user.Email = newEmail
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}

	out := *user
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out := *s.users[id]
		result = append(result, &out)
	}
	return result, nil
}
