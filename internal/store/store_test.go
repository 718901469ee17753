package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karigar-api/internal/model"
	"karigar-api/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(repository.NewMemoryKVRepository())
	require.NotNil(t, s)
	return s
}

func sampleFields() model.ProductFields {
	return model.ProductFields{
		Title:       "Clay Pot",
		Description: "Hand-thrown terracotta pot",
		Price:       "299",
		Category:    "Pottery & Ceramics",
		Keywords:    []string{},
		Hashtags:    []string{},
		PricingTips: []string{},
	}
}

func TestSaveProductLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	product, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 0, product.Views)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)

	analytics, err := s.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.TotalProducts)
	require.Len(t, analytics.WeeklyStats, 1)
	assert.Equal(t, 1, analytics.WeeklyStats[0].Products)
	assert.Equal(t, weekLabel(time.Now()), analytics.WeeklyStats[0].Week)
}

func TestGetProductsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.SaveProduct(ctx, sampleFields())
		require.NoError(t, err)
	}

	first, err := s.GetProducts(ctx)
	require.NoError(t, err)
	second, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductIDsUnique(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		product, err := s.SaveProduct(ctx, sampleFields())
		require.NoError(t, err)
		assert.False(t, seen[product.ID], "duplicate identifier %q", product.ID)
		seen[product.ID] = true
	}
}

func TestIncrementProductViews(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	product, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, s.IncrementProductViews(ctx, product.ID))
	}

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, n, products[0].Views)

	// A patch without views leaves the counter unchanged.
	title := "Terracotta Planter"
	updated, err := s.UpdateProduct(ctx, product.ID, model.ProductPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, n, updated.Views)
	assert.Equal(t, title, updated.Title)

	analytics, err := s.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, analytics.TotalViews)
}

func TestIncrementViewsUnknownIDNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.IncrementProductViews(ctx, "missing"))

	analytics, err := s.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, analytics.TotalViews)
}

func TestUpdateProductNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	title := "nope"
	product, err := s.UpdateProduct(ctx, "missing", model.ProductPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestUpdateProductRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	product, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(time.Hour) }
	price := "350"
	updated, err := s.UpdateProduct(ctx, product.ID, model.ProductPatch{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, product.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt > updated.CreatedAt)
	assert.Equal(t, "350", updated.Price)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	product, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)

	removed, err := s.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	removed, err = s.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestChatClearKeepsTotals(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	chat, err := s.SaveChatMessage(ctx, "hi", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, chat.ID)

	chats, err := s.GetChats(ctx)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	require.NoError(t, s.ClearChats(ctx))

	chats, err = s.GetChats(ctx)
	require.NoError(t, err)
	assert.Empty(t, chats)

	analytics, err := s.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.TotalChats)
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, s.SetUser(ctx, model.User{
		ID:       "u1",
		Username: "asha",
		Email:    "asha@example.com",
		Name:     "Asha",
		Language: "hi",
	}))

	user, err = s.GetUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "asha", user.Username)

	require.NoError(t, s.Logout(ctx))
	user, err = s.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCorruptedCollectionResets(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryKVRepository()
	s := New(repo)

	require.NoError(t, repo.Set(ctx, keyProducts, []byte("{not json")))

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// The corrupted blob is gone; subsequent writes start clean.
	raw, err := repo.Get(ctx, keyProducts)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
