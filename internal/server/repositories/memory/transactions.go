package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/transactions"
)

// TransactionRepository is the in-memory transaction ledger.
type TransactionRepository struct {
	s *Store
}

var _ transactions.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{s: s}
}

// CreateForPost holds the store lock across the retire-and-record step: the
// listing leaves the catalog and the transaction appears in the ledger as
// one indivisible change. Of two racing purchases of the same listing,
// exactly one finds the listing present; the other gets ErrorNotFound.
func (r *TransactionRepository) CreateForPost(ctx context.Context, postID, buyerID, code string) (*models.Transaction, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	snapshot := *post
	s.removePostLocked(post)

	tx := &models.Transaction{
		PostID:           postID,
		Seller:           snapshot.Seller,
		Buyer:            buyerID,
		VerificationCode: code,
		Post:             snapshot,
		CreatedAt:        time.Now(),
	}
	s.transactions[postID] = tx
	s.txByUser[buyerID] = append(s.txByUser[buyerID], postID)
	if snapshot.Seller != buyerID {
		s.txByUser[snapshot.Seller] = append(s.txByUser[snapshot.Seller], postID)
	}

	out := *tx
	return &out, nil
}

func (r *TransactionRepository) GetByPostID(ctx context.Context, postID string) (*models.Transaction, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[postID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *tx
	return &out, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.txByUser[userID]
	result := make([]*models.Transaction, 0, len(ids))
	for _, id := range ids {
		out := *s.transactions[id]
		result = append(result, &out)
	}
	return result, nil
}
