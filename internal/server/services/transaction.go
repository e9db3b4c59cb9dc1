package services

import (
	"context"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/config"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/transactions"
)

// CodeGenerator produces the verification code accompanying a transaction.
// Must draw from a source suitable for secrets.
type CodeGenerator func(size int) (string, error)

// TransactionService converts listings into purchase transactions.
type TransactionService struct {
	transactions transactions.Repository
	generateCode CodeGenerator
	codeBytes    int
}

func NewTransactionService(repo transactions.Repository, gen CodeGenerator, cfg *config.Config) *TransactionService {
	return &TransactionService{
		transactions: repo,
		generateCode: gen,
		codeBytes:    cfg.VerificationCodeBytes,
	}
}

// Purchase retires the listing and records the transaction. A listing that
// is gone, for whatever reason and however narrowly, yields ErrorNotFound;
// the ledger guarantees at most one caller ever succeeds per listing.
func (s *TransactionService) Purchase(ctx context.Context, postID, buyerID string) (*models.Transaction, error) {
	code, err := s.generateCode(s.codeBytes)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return s.transactions.CreateForPost(ctx, postID, buyerID, code)
}

// ListByParticipant returns the user's transactions as buyer or seller.
// A user with none gets an empty slice, not an error.
func (s *TransactionService) ListByParticipant(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

// VerificationCode returns the code only to the transaction's buyer or
// seller. Anyone else gets ErrorNotFound, indistinguishable from a
// transaction that does not exist.
func (s *TransactionService) VerificationCode(ctx context.Context, postID, requesterID string) (string, error) {
	tx, err := s.transactions.GetByPostID(ctx, postID)
	if err != nil {
		return "", err
	}
	if requesterID != tx.Buyer && requesterID != tx.Seller {
		return "", common.ErrorNotFound
	}
	return tx.VerificationCode, nil
}
