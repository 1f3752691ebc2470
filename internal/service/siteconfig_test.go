package service

import (
	"context"
	"testing"

	"minecoin/internal/model"
	"minecoin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigService(t *testing.T) {
	runWithBackends(t, "Should merge partial updates onto the singleton", func(t *testing.T, repos *repository.Repositories) {
		cfg := NewSiteConfigService(repos.Config)
		ctx := context.Background()

		before, err := cfg.Get(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(10000), before.CoinPrice)

		price := int64(15000)
		holder := "NewCo Ltd."
		updated, err := cfg.Update(ctx, &model.SiteConfigUpdate{
			CoinPrice:          &price,
			AdminAccountHolder: &holder,
		})
		require.NoError(t, err)

		assert.Equal(t, price, updated.CoinPrice)
		assert.Equal(t, holder, updated.AdminAccountHolder)
		// Untouched keys keep their prior values.
		assert.Equal(t, before.AdminBankName, updated.AdminBankName)
		assert.Equal(t, before.TechContent, updated.TechContent)

		persisted, err := cfg.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, updated, persisted)
	})
}

func TestNewsService(t *testing.T) {
	runWithBackends(t, "Should append and remove announcements newest first", func(t *testing.T, repos *repository.Repositories) {
		news := NewNewsService(repos.News)
		ctx := context.Background()

		item, err := news.Add(ctx, &model.NewsRequest{
			Title:    "Wallet release",
			Category: model.NewsUpdate,
			Content:  "The official wallet is out.",
		})
		require.NoError(t, err)

		items, err := news.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2) // seed item + new one
		assert.Equal(t, item.ID, items[0].ID)

		deleted, err := news.Delete(ctx, item.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = news.Delete(ctx, item.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
