package service

import (
	"context"
	"fmt"
	"time"

	"minecoin/internal/model"
	"minecoin/internal/repository"
	"minecoin/internal/store"
	"minecoin/pkg/util"

	"github.com/charmbracelet/log"
)

// TransactionService handles coin buy orders.
type TransactionService struct {
	txs    repository.TransactionRepository
	config repository.ConfigRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txs repository.TransactionRepository, config repository.ConfigRepository) *TransactionService {
	return &TransactionService{txs: txs, config: config}
}

// Create records a buy order at the coin price stored in the site config at
// this moment. The price and total cost are frozen on the record and never
// recomputed from a later price change. Client-sent prices are never
// consulted.
func (s *TransactionService) Create(ctx context.Context, userID string, amount int64) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	price := int64(store.DefaultCoinPrice)
	if cfg != nil && cfg.CoinPrice > 0 {
		price = cfg.CoinPrice
	}

	tx := &model.Transaction{
		ID:              util.NewID(),
		UserID:          userID,
		Amount:          amount,
		PriceAtPurchase: price,
		TotalCost:       amount * price,
		Date:            time.Now().UTC(),
		Status:          model.TxPending,
		IsDeleted:       false,
	}
	if err := s.txs.Insert(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Info("buy order created", "user", userID, "amount", amount, "totalCost", tx.TotalCost)
	return tx, nil
}

// UpdateStatus sets an order's status unconditionally. Re-transitions are
// not blocked; a missing id is a silent no-op.
func (s *TransactionService) UpdateStatus(ctx context.Context, id string, status model.TransactionStatus) error {
	tx, err := s.txs.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up order: %w", err)
	}
	if tx == nil {
		return nil
	}
	tx.Status = status
	if err := s.txs.Replace(ctx, tx); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// SoftDelete flags an order as deleted. The record stays in the store and
// can be restored; hard deletion is never exposed.
func (s *TransactionService) SoftDelete(ctx context.Context, id string) error {
	return s.setDeleted(ctx, id, true)
}

// Restore clears an order's deleted flag. MASTER only; the role check lives
// here rather than in the HTTP layer so no caller can bypass it.
func (s *TransactionService) Restore(ctx context.Context, actor model.Role, id string) error {
	if actor != model.RoleMaster {
		return ErrForbidden
	}
	return s.setDeleted(ctx, id, false)
}

func (s *TransactionService) setDeleted(ctx context.Context, id string, deleted bool) error {
	tx, err := s.txs.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up order: %w", err)
	}
	if tx == nil {
		return nil
	}
	tx.IsDeleted = deleted
	if err := s.txs.Replace(ctx, tx); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// ListForUser returns a user's non-deleted orders, newest first.
func (s *TransactionService) ListForUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	return s.txs.ListByUser(ctx, userID)
}

// ListAll returns every order including soft-deleted ones, newest first.
// Role-based visibility is the caller's concern.
func (s *TransactionService) ListAll(ctx context.Context) ([]model.Transaction, error) {
	return s.txs.List(ctx)
}

// ApprovedCoinTotal sums the coin amounts of a user's approved, non-deleted
// orders.
func (s *TransactionService) ApprovedCoinTotal(ctx context.Context, userID string) (int64, error) {
	txs, err := s.txs.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, tx := range txs {
		if tx.Status == model.TxApproved {
			total += tx.Amount
		}
	}
	return total, nil
}

// PendingCount reports the number of pending, non-deleted orders for the
// change-notification layer.
func (s *TransactionService) PendingCount(ctx context.Context) (int, error) {
	return s.txs.CountPending(ctx)
}
