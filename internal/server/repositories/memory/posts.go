package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/posts"
)

// PostRepository is the in-memory listing catalog.
type PostRepository struct {
	s *Store
}

var _ posts.Repository = (*PostRepository)(nil)

func NewPostRepository(s *Store) *PostRepository {
	return &PostRepository{s: s}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post, ownerID string) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *post
	stored.ID = uuid.NewString()
	// Seller is never taken from the caller-supplied record.
	stored.Seller = ownerID

	s.posts[stored.ID] = &stored
	s.postOrder = append(s.postOrder, stored.ID)
	s.postsByOwner[ownerID] = append(s.postsByOwner[ownerID], stored.ID)

	out := stored
	return &out, nil
}

func (r *PostRepository) Update(ctx context.Context, postID, ownerID string, upd *models.Post) (*models.Post, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if post.Seller != ownerID {
		return nil, common.ErrorForbidden
	}

	stored := *upd
	stored.ID = post.ID
	stored.Seller = post.Seller
	s.posts[postID] = &stored

	out := stored
	return &out, nil
}

func (r *PostRepository) Delete(ctx context.Context, postID, ownerID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return common.ErrorNotFound
	}
	if post.Seller != ownerID {
		return common.ErrorForbidden
	}

	s.removePostLocked(post)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *post
	return &out, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		out := *s.posts[id]
		result = append(result, &out)
	}
	return result, nil
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Post, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.postsByOwner[ownerID]
	result := make([]*models.Post, 0, len(owned))
	for _, id := range owned {
		out := *s.posts[id]
		result = append(result, &out)
	}
	return result, nil
}
