// Package transactions declares the transaction ledger contract: immutable
// purchase records plus the per-participant index.
package transactions

import (
	"context"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

// Repository owns transaction records keyed by the retired listing's id.
type Repository interface {
	// CreateForPost retires the listing and records its transaction as one
	// indivisible step: the existence check, the catalog removal, the post
	// snapshot, and the buyer/seller index insertions all happen inside a
	// single critical section. Returns common.ErrorNotFound when the listing
	// is absent or already retired, which is what makes "at most one purchase
	// per listing" hold under racing calls.
	CreateForPost(ctx context.Context, postID, buyerID, code string) (*models.Transaction, error)

	// GetByPostID returns the transaction or common.ErrorNotFound.
	GetByPostID(ctx context.Context, postID string) (*models.Transaction, error)

	// ListByUser returns every transaction the user participates in, as buyer
	// or seller, in creation order. Users with none get an empty slice.
	ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error)
}
