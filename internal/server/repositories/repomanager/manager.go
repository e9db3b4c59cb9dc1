// Package repomanager aggregates the per-entity repositories behind one
// construction point, so the application wires a single manager instead of
// four repositories.
package repomanager

import (
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/posts"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Posts() posts.Repository
	Transactions() transactions.Repository
	RefreshTokens() refreshtokens.Repository
}
