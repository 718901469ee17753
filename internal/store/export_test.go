package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karigar-api/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SetUser(ctx, model.User{ID: "u1", Username: "asha"}))
	product, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)
	_, err = s.SaveChatMessage(ctx, "hi", "hello")
	require.NoError(t, err)

	data, err := s.ExportData(ctx)
	require.NoError(t, err)

	var snapshot Export
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.NotNil(t, snapshot.User)
	assert.Equal(t, "asha", snapshot.User.Username)
	assert.NotEmpty(t, snapshot.ExportedAt)

	// Wipe and restore into a fresh namespace.
	fresh := newTestStore(t)
	require.NoError(t, fresh.ImportData(ctx, data))

	products, err := fresh.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)

	chats, err := fresh.GetChats(ctx)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	analytics, err := fresh.GetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.TotalProducts)
	assert.Equal(t, 1, analytics.TotalChats)

	// The profile is never restored from a snapshot.
	user, err := fresh.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.SaveProduct(ctx, sampleFields())
	require.NoError(t, err)

	require.Error(t, s.ImportData(ctx, []byte("{broken")))

	// Nothing was overwritten.
	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestImportAppliesOnlyPresentCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.SaveChatMessage(ctx, "keep", "me")
	require.NoError(t, err)

	payload := []byte(`{"products":[{"id":"p1","title":"Basket","keywords":[],"hashtags":[],"pricingTips":[]}]}`)
	require.NoError(t, s.ImportData(ctx, payload))

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Basket", products[0].Title)

	chats, err := s.GetChats(ctx)
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}
