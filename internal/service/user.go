package service

import (
	"context"
	"fmt"
	"time"

	"minecoin/internal/model"
	"minecoin/internal/repository"
	"minecoin/pkg/util"

	"github.com/charmbracelet/log"
)

// UserService handles account registration, login and administration.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a USER account in PENDING state. The username must be
// unique across all existing accounts regardless of role (case-sensitive).
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	return s.register(ctx, req, model.RoleUser, model.UserPending)
}

// RegisterAdmin creates an ADMIN account. Admin-created accounts bypass the
// approval workflow and start APPROVED.
func (s *UserService) RegisterAdmin(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	return s.register(ctx, req, model.RoleAdmin, model.UserApproved)
}

func (s *UserService) register(ctx context.Context, req *model.RegisterRequest, role model.Role, status model.UserStatus) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	user := &model.User{
		ID:            util.NewID(),
		Username:      req.Username,
		Password:      req.Password,
		Name:          req.Name,
		Phone:         req.Phone,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Role:          role,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("account registered", "username", user.Username, "role", user.Role, "status", user.Status)
	return user, nil
}

// Login authenticates a user. PENDING and REJECTED accounts fail with
// distinct errors so the UI can show the right message. On success the full
// record is returned; callers must not leak the credential further.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !util.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	switch user.Status {
	case model.UserPending:
		return nil, ErrPendingApproval
	case model.UserRejected:
		return nil, ErrRejected
	}
	return user, nil
}

// UpdateStatus sets a user's approval status unconditionally. Any transition
// is permitted; a missing id is a silent no-op.
func (s *UserService) UpdateStatus(ctx context.Context, id string, status model.UserStatus) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil
	}
	user.Status = status
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// Update merges the provided self-service fields onto an existing record.
// Username and name are immutable and not part of the update shape.
func (s *UserService) Update(ctx context.Context, id string, update *model.UserUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.BankName != nil {
		user.BankName = *update.BankName
	}
	if update.AccountNumber != nil {
		user.AccountNumber = *update.AccountNumber
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes an account. The MASTER account can never be deleted; the
// attempt returns false and leaves the user list unchanged. False is also
// returned when the id does not exist.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return false, nil
	}
	if user.Role == model.RoleMaster {
		return false, nil
	}
	return s.users.Delete(ctx, id)
}

// Get returns one user by id, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns all accounts for the admin member view.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
