package services

import (
	"context"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/posts"
)

// PostService manages listings. The acting user id always comes from the
// identity assertion layer; ownership checks happen in the catalog.
type PostService struct {
	posts posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{posts: repo}
}

func validatePost(post *models.Post) error {
	if post.ProductType == "" || post.Units <= 0 || post.PricePerUnit < 0 {
		return common.ErrorValidation
	}
	return nil
}

// Create stores a new listing for ownerID. Any caller-supplied id or seller
// is discarded by the catalog.
func (s *PostService) Create(ctx context.Context, ownerID string, post *models.Post) (*models.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, post, ownerID)
}

// Edit replaces the listing's content. Only the owning seller may edit.
func (s *PostService) Edit(ctx context.Context, postID, ownerID string, post *models.Post) (*models.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}
	return s.posts.Update(ctx, postID, ownerID, post)
}

// Remove deletes the listing. Only the owning seller may remove.
func (s *PostService) Remove(ctx context.Context, postID, ownerID string) error {
	return s.posts.Delete(ctx, postID, ownerID)
}

// List returns all active listings.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.posts.List(ctx)
}

// ListByOwner returns the acting user's own listings.
func (s *PostService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Post, error) {
	return s.posts.ListByOwner(ctx, ownerID)
}
