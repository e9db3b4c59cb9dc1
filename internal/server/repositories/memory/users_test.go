package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophmarket/internal/common"
	"github.com/dmitrijs2005/gophmarket/internal/server/models"
	"github.com/dmitrijs2005/gophmarket/internal/server/repositories/users"
)

func newUserRepo() *UserRepository {
	return NewUserRepository(NewStore())
}

func strptr(s string) *string { return &s }

func TestUserCreateAndLookups(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	created, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Every index resolves to the same record.
	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, byName.ID)
	assert.Equal(t, byID.ID, byEmail.ID)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserCreateConflict(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	first, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name string
		user *models.User
	}{
		{"same username different email", &models.User{Username: "alice", Email: "other@x.com"}},
		{"same email different username", &models.User{Username: "other", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.user)
			assert.ErrorIs(t, err, common.ErrorConflict)
		})
	}

	// The first registration stays queryable and unchanged.
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestUserGetUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByUsername(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByEmail(ctx, "nope@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserUpdateReindexes(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	created, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, users.Update{
		Username:     strptr("alice2"),
		Email:        strptr("a2@x.com"),
		PasswordHash: strptr("h2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a2@x.com", updated.Email)
	assert.Equal(t, "h2", updated.PasswordHash)

	// Old index entries are gone, new ones resolve.
	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	byName, err := repo.GetByUsername(ctx, "alice2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestUserUpdateConflictLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	_, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, &models.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	// Username free, email taken: nothing may be applied.
	_, err = repo.Update(ctx, bob.ID, users.Update{
		Username: strptr("bob2"),
		Email:    strptr("a@x.com"),
	})
	assert.ErrorIs(t, err, common.ErrorConflict)

	got, err := repo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "b@x.com", got.Email)
}

func TestUserUpdateUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	_, err := repo.Update(ctx, "nope", users.Update{Username: strptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserUpdateSameValuesIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	created, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, users.Update{
		Username: strptr("alice"),
		Email:    strptr("a@x.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

// Two racing updates to the same new username: at most one may win the key.
func TestUserUpdateRaceOnUsername(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	alice, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := repo.Create(ctx, &models.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{alice.ID, bob.ID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = repo.Update(ctx, id, users.Update{Username: strptr("winner")})
		}(i, id)
	}
	wg.Wait()

	var conflicts int
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, common.ErrorConflict)
			conflicts++
		}
	}
	require.Equal(t, 1, conflicts, "exactly one update must lose")

	winner, err := repo.GetByUsername(ctx, "winner")
	require.NoError(t, err)
	assert.Contains(t, []string{alice.ID, bob.ID}, winner.ID)
}

func TestUserListOrder(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, &models.User{Username: name, Email: name + "@x.com"})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Username)
	assert.Equal(t, "b", all[1].Username)
	assert.Equal(t, "c", all[2].Username)
}

func TestUserReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	created, err := repo.Create(ctx, &models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	created.Username = "mutated"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}
