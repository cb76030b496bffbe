package repository

import (
	"context"
	"testing"
	"time"

	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewWishlistRepository(pool, zerolog.Nop())
	ctx := context.Background()
	seedProducts(t, pool, testCatalog())
	user := seedUser(t, pool, "saver@example.com")
	other := seedUser(t, pool, "other@example.com")

	require.NoError(t, repo.Add(ctx, &model.WishlistItem{ID: uuid.New(), UserID: user.ID, ProductID: "P004"}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Add(ctx, &model.WishlistItem{ID: uuid.New(), UserID: user.ID, ProductID: "P005"}))
	require.NoError(t, repo.Add(ctx, &model.WishlistItem{ID: uuid.New(), UserID: other.ID, ProductID: "P004"}))

	t.Run("list is scoped to the user, newest first", func(t *testing.T) {
		items, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "P005", items[0].ProductID)
		assert.Equal(t, "P004", items[1].ProductID)
		assert.False(t, items[0].CreatedAt.IsZero())
	})

	t.Run("one entry per product", func(t *testing.T) {
		err := repo.Add(ctx, &model.WishlistItem{ID: uuid.New(), UserID: user.ID, ProductID: "P004"})
		assert.ErrorIs(t, err, model.ErrWishlistExists)
	})

	t.Run("unknown product", func(t *testing.T) {
		err := repo.Add(ctx, &model.WishlistItem{ID: uuid.New(), UserID: user.ID, ProductID: "P999"})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		removed, err := repo.Remove(ctx, user.ID, "P004")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Remove(ctx, user.ID, "P004")
		require.NoError(t, err)
		assert.False(t, removed)

		items, err := repo.ListByUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("deleting a product drops it from wishlists", func(t *testing.T) {
		removed, err := NewProductRepository(pool, zerolog.Nop()).Delete(ctx, "P005")
		require.NoError(t, err)
		assert.True(t, removed)

		items, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
