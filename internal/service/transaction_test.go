package service

import (
	"context"
	"testing"

	"minecoin/internal/model"
	"minecoin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Create(t *testing.T) {
	runWithBackends(t, "Should freeze the price captured at creation time", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		cfg := NewSiteConfigService(repos.Config)
		ctx := context.Background()

		tx, err := txs.Create(ctx, "user-1", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), tx.PriceAtPurchase)
		assert.Equal(t, int64(50000), tx.TotalCost)
		assert.Equal(t, model.TxPending, tx.Status)
		assert.False(t, tx.IsDeleted)

		// A later price change must not touch the existing order.
		newPrice := int64(20000)
		_, err = cfg.Update(ctx, &model.SiteConfigUpdate{CoinPrice: &newPrice})
		require.NoError(t, err)

		all, err := txs.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(10000), all[0].PriceAtPurchase)
		assert.Equal(t, int64(50000), all[0].TotalCost)

		// New orders pick up the new price.
		tx2, err := txs.Create(ctx, "user-1", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), tx2.PriceAtPurchase)
		assert.Equal(t, int64(40000), tx2.TotalCost)
	})

	runWithBackends(t, "Should reject a non-positive amount", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		_, err := txs.Create(context.Background(), "user-1", 0)
		assert.Error(t, err)
	})
}

func TestTransactionService_SoftDelete(t *testing.T) {
	runWithBackends(t, "Should round-trip soft delete and restore", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		ctx := context.Background()

		tx, err := txs.Create(ctx, "user-1", 3)
		require.NoError(t, err)

		before, err := txs.ListAll(ctx)
		require.NoError(t, err)

		require.NoError(t, txs.SoftDelete(ctx, tx.ID))

		// Hidden from the user view, flagged in the admin view.
		mine, err := txs.ListForUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, mine)

		all, err := txs.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].IsDeleted)

		require.NoError(t, txs.Restore(ctx, model.RoleMaster, tx.ID))

		after, err := txs.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	runWithBackends(t, "Should refuse restore for non-MASTER actors", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		ctx := context.Background()

		tx, err := txs.Create(ctx, "user-1", 1)
		require.NoError(t, err)
		require.NoError(t, txs.SoftDelete(ctx, tx.ID))

		assert.ErrorIs(t, txs.Restore(ctx, model.RoleAdmin, tx.ID), ErrForbidden)
		assert.ErrorIs(t, txs.Restore(ctx, model.RoleUser, tx.ID), ErrForbidden)

		all, err := txs.ListAll(ctx)
		require.NoError(t, err)
		assert.True(t, all[0].IsDeleted)
	})

	runWithBackends(t, "Should treat missing ids as silent no-ops", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		ctx := context.Background()

		assert.NoError(t, txs.SoftDelete(ctx, "no-such-id"))
		assert.NoError(t, txs.UpdateStatus(ctx, "no-such-id", model.TxApproved))
	})
}

func TestTransactionService_ApprovedCoinTotal(t *testing.T) {
	runWithBackends(t, "Should sum exactly the approved non-deleted orders", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		ctx := context.Background()

		mk := func(userID string, amount int64, status model.TransactionStatus, deleted bool) {
			tx, err := txs.Create(ctx, userID, amount)
			require.NoError(t, err)
			require.NoError(t, txs.UpdateStatus(ctx, tx.ID, status))
			if deleted {
				require.NoError(t, txs.SoftDelete(ctx, tx.ID))
			}
		}

		mk("alice", 3, model.TxApproved, false)
		mk("alice", 7, model.TxApproved, false)
		mk("alice", 11, model.TxApproved, true) // deleted, excluded
		mk("alice", 5, model.TxPending, false)
		mk("alice", 2, model.TxRejected, false)
		mk("bob", 100, model.TxApproved, false) // other user

		total, err := txs.ApprovedCoinTotal(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
	})
}

func TestTransactionService_Listing(t *testing.T) {
	runWithBackends(t, "Should order lists by date descending", func(t *testing.T, repos *repository.Repositories) {
		txs := NewTransactionService(repos.Transactions, repos.Config)
		ctx := context.Background()

		first, err := txs.Create(ctx, "alice", 1)
		require.NoError(t, err)
		second, err := txs.Create(ctx, "alice", 2)
		require.NoError(t, err)
		third, err := txs.Create(ctx, "alice", 3)
		require.NoError(t, err)

		mine, err := txs.ListForUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, mine, 3)
		assert.False(t, mine[0].Date.Before(mine[1].Date))
		assert.False(t, mine[1].Date.Before(mine[2].Date))

		ids := []string{mine[0].ID, mine[1].ID, mine[2].ID}
		assert.ElementsMatch(t, ids, []string{first.ID, second.ID, third.ID})
	})
}
