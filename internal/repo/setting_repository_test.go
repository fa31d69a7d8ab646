package repo

import (
	"context"
	"testing"

	"LiveAuction/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingRepository_GetActivePicksLowestID(t *testing.T) {
	db := newTestDB(t)
	r := NewSettingRepository(db)
	ctx := context.Background()

	// нет активных: nil без ошибки
	got, err := r.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, r.Create(ctx, &model.AuctionSetting{Title: "inactive", Active: false}))
	require.NoError(t, r.Create(ctx, &model.AuctionSetting{Title: "spring gala", Active: true}))
	require.NoError(t, r.Create(ctx, &model.AuctionSetting{Title: "summer fair", Active: true}))

	got, err = r.GetActive(ctx)
	require.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "spring gala", got.Title)
	}

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
