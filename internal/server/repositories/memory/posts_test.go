package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
)

func wheat(units int) *models.Post {
	return &models.Post{ProductType: "wheat", PricePerUnit: 10, Units: units, Location: "barn"}
}

func TestPostCreateAssignsIDAndSeller(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	post := wheat(5)
	post.ID = "caller-supplied"
	post.Seller = "impostor"

	created, err := repo.Create(ctx, post, "owner-1")
	require.NoError(t, err)
	assert.NotEqual(t, "caller-supplied", created.ID)
	assert.Equal(t, "owner-1", created.Seller)
	assert.Equal(t, "wheat", created.ProductType)
}

func TestPostListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	first, err := repo.Create(ctx, wheat(1), "owner-1")
	require.NoError(t, err)
	second, err := repo.Create(ctx, wheat(2), "owner-2")
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestPostUpdatePreservesIDAndSeller(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	created, err := repo.Create(ctx, wheat(5), "owner-1")
	require.NoError(t, err)

	upd := &models.Post{ID: "other", ProductType: "rye", PricePerUnit: 12, Units: 3, Seller: "impostor", Location: "silo"}
	updated, err := repo.Update(ctx, created.ID, "owner-1", upd)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "owner-1", updated.Seller)
	assert.Equal(t, "rye", updated.ProductType)
	assert.Equal(t, "silo", updated.Location)
}

func TestPostUpdateFailures(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	created, err := repo.Create(ctx, wheat(5), "owner-1")
	require.NoError(t, err)

	_, err = repo.Update(ctx, "nope", "owner-1", wheat(1))
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Update(ctx, created.ID, "stranger", wheat(1))
	assert.ErrorIs(t, err, common.ErrorForbidden)

	// The failed non-owner edit left the record unchanged.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Units)
}

func TestPostDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	created, err := repo.Create(ctx, wheat(5), "owner-1")
	require.NoError(t, err)
	kept, err := repo.Create(ctx, wheat(7), "owner-1")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID, "owner-1"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// Removed from the owner's index too, the sibling stays.
	owned, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, kept.ID, owned[0].ID)
}

func TestPostDeleteFailures(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	created, err := repo.Create(ctx, wheat(5), "owner-1")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, "nope", "owner-1"), common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID, "stranger"), common.ErrorForbidden)

	// Still listed after the forbidden attempt.
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	mine, err := repo.Create(ctx, wheat(1), "owner-1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, wheat(2), "owner-2")
	require.NoError(t, err)

	owned, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)

	none, err := repo.ListByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewStore())

	created, err := repo.Create(ctx, wheat(5), "owner-1")
	require.NoError(t, err)

	created.Units = 999
	all, err := repo.List(ctx)
	require.NoError(t, err)
	all[0].ProductType = "mutated"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Units)
	assert.Equal(t, "wheat", got.ProductType)
}
