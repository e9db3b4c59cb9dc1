package repomanager

import (
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out repositories backed by one shared
// memory.Store, which is what lets the catalog and the ledger change
// together during a purchase.
type InMemoryRepositoryManager struct {
	users         *memory.UserRepository
	posts         *memory.PostRepository
	transactions  *memory.TransactionRepository
	refreshTokens *memory.RefreshTokenRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	store := memory.NewStore()
	return &InMemoryRepositoryManager{
		users:         memory.NewUserRepository(store),
		posts:         memory.NewPostRepository(store),
		transactions:  memory.NewTransactionRepository(store),
		refreshTokens: memory.NewRefreshTokenRepository(store),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func (m *InMemoryRepositoryManager) Transactions() transactions.Repository {
	return m.transactions
}

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}
