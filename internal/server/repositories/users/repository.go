// Package users declares the identity index contract: canonical user
// records plus the username and email uniqueness indices.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

// Update describes a partial profile change. Nil fields are left untouched.
type Update struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// Repository owns user records and their secondary indices. Implementations
// must keep the id, username, and email indices consistent with each other:
// no reader may ever observe a user reachable under one key but not another.
type Repository interface {
	// Create stores a new user and indexes it by username and email in one
	// atomic step. Returns common.ErrorConflict when either key is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns the user or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername resolves a username through the uniqueness index.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByEmail resolves an email through the uniqueness index.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update applies upd to the stored record. A changed username or email is
	// re-checked for uniqueness and re-indexed under the same critical
	// section, so two racing updates can never both claim one key. Returns
	// common.ErrorNotFound for an unknown id and common.ErrorConflict when a
	// new key is already taken.
	Update(ctx context.Context, id string, upd Update) (*models.User, error)

	// List returns all users in registration order.
	List(ctx context.Context) ([]*models.User, error)
}
