// Package posts declares the listing catalog contract: canonical listing
// records plus the per-seller index.
package posts

import (
	"context"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

// Repository owns listing records. A listing leaves the catalog either by
// owner removal or by being retired when purchased; retirement is reachable
// only through the transaction ledger and can succeed at most once.
type Repository interface {
	// Create assigns a fresh id, forces Seller to ownerID regardless of the
	// supplied value, and stores the listing. Returns the stored record.
	Create(ctx context.Context, post *models.Post, ownerID string) (*models.Post, error)

	// Update fully replaces the listing's content, preserving id and seller
	// from the stored record. Returns common.ErrorNotFound for an unknown id
	// and common.ErrorForbidden when ownerID is not the seller.
	Update(ctx context.Context, postID, ownerID string, upd *models.Post) (*models.Post, error)

	// Delete removes the listing under the same not-found/forbidden rules.
	Delete(ctx context.Context, postID, ownerID string) error

	// GetByID returns the listing or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// List returns all active listings in insertion order.
	List(ctx context.Context) ([]*models.Post, error)

	// ListByOwner returns ownerID's active listings in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Post, error)
}
