package service

import (
	"context"
	"fmt"

	"minecoin/internal/model"
	"minecoin/internal/repository"

	"github.com/charmbracelet/log"
)

// ResetSummary reports what a user-data reset removed.
type ResetSummary struct {
	DeletedUsers        int64 `json:"deletedUsers"`
	DeletedTransactions int64 `json:"deletedTransactions"`
}

// AdminService handles the destructive master-tier operations.
type AdminService struct {
	users    repository.UserRepository
	txs      repository.TransactionRepository
	resetter repository.Resetter
}

// NewAdminService creates a new admin service.
func NewAdminService(users repository.UserRepository, txs repository.TransactionRepository, resetter repository.Resetter) *AdminService {
	return &AdminService{users: users, txs: txs, resetter: resetter}
}

// ResetUserData deletes every account except MASTER (ADMIN accounts
// included) and every transaction. News and site config are untouched.
// MASTER only.
func (s *AdminService) ResetUserData(ctx context.Context, actor model.Role) (*ResetSummary, error) {
	if actor != model.RoleMaster {
		return nil, ErrForbidden
	}

	deletedUsers, err := s.users.DeleteWhereRoleNot(ctx, model.RoleMaster)
	if err != nil {
		return nil, fmt.Errorf("failed to purge accounts: %w", err)
	}
	deletedTxs, err := s.txs.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to purge transactions: %w", err)
	}

	log.Warn("user data reset", "deletedUsers", deletedUsers, "deletedTransactions", deletedTxs)
	return &ResetSummary{DeletedUsers: deletedUsers, DeletedTransactions: deletedTxs}, nil
}

// ResetAll wipes the entire dataset back to bootstrap defaults: seed
// accounts, seed news, default config. More destructive than ResetUserData.
// MASTER only.
func (s *AdminService) ResetAll(ctx context.Context, actor model.Role) error {
	if actor != model.RoleMaster {
		return ErrForbidden
	}
	if err := s.resetter.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	log.Warn("full store reset to bootstrap defaults")
	return nil
}
