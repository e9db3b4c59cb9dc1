// Package memory implements every repository contract over a single
// volatile store. One lock guards all records and secondary indices, so each
// operation is a critical section and no reader can observe a record indexed
// under one key but not another. The purchase path needs the catalog and the
// ledger to change together, which is why all implementations share a Store
// instead of owning maps of their own.
package memory

import (
	"sync"

	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

// Store holds every record kind and index. All fields are guarded by mu;
// nothing outside this package ever receives a reference into the maps,
// repositories hand out copies only.
type Store struct {
	mu sync.RWMutex

	users         map[string]*models.User
	userOrder     []string
	userIDByName  map[string]string
	userIDByEmail map[string]string

	posts        map[string]*models.Post
	postOrder    []string
	postsByOwner map[string][]string

	transactions map[string]*models.Transaction
	txByUser     map[string][]string

	refreshTokens map[string]*models.RefreshToken
}

// NewStore returns an empty store. State lives for the process lifetime only.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*models.User),
		userIDByName:  make(map[string]string),
		userIDByEmail: make(map[string]string),
		posts:         make(map[string]*models.Post),
		postsByOwner:  make(map[string][]string),
		transactions:  make(map[string]*models.Transaction),
		txByUser:      make(map[string][]string),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

// removePostLocked retires a listing: primary record, insertion order, and
// the seller's index entry go together. Caller must hold mu for writing and
// must have checked that the post exists.
func (s *Store) removePostLocked(post *models.Post) {
	delete(s.posts, post.ID)

	for i, id := range s.postOrder {
		if id == post.ID {
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			break
		}
	}

	owned := s.postsByOwner[post.Seller]
	for i, id := range owned {
		if id == post.ID {
			owned = append(owned[:i], owned[i+1:]...)
			break
		}
	}
	if len(owned) == 0 {
		delete(s.postsByOwner, post.Seller)
	} else {
		s.postsByOwner[post.Seller] = owned
	}
}
