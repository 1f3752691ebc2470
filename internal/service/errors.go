package service

import "errors"

// Validation errors returned as typed results for direct display.
// Infrastructure errors (store.ErrWriteFailure, repository.ErrBackendUnavailable)
// pass through wrapped and are converted to a generic retry message at the
// handler boundary.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPendingApproval    = errors.New("signup is awaiting admin approval")
	ErrRejected           = errors.New("signup application was rejected")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("operation not permitted for this role")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
