package repository

import (
	"context"
	"errors"
)

// ErrBackendUnavailable signals that the remote store could not serve a
// request. The service layer converts it to a user-visible retry message.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Collection names. Document IDs equal the record's id field.
const (
	UsersCollection        = "users"
	TransactionsCollection = "transactions"
	NewsCollection         = "news"
	ConfigCollection       = "config"
)

// ConfigDocID identifies the singleton site-config document.
const ConfigDocID = "site"

// ChangePublisher receives a signal after every successful write so the
// change-notification layer can fan it out to live subscribers.
type ChangePublisher interface {
	Publish(collection string)
}

// NopPublisher discards change signals (polling deployments, tests).
type NopPublisher struct{}

func (NopPublisher) Publish(string) {}

// Resetter wipes the whole dataset back to bootstrap defaults.
type Resetter interface {
	ResetAll(ctx context.Context) error
}

// Repositories bundles the per-entity repositories for one backend.
type Repositories struct {
	Users        UserRepository
	Transactions TransactionRepository
	News         NewsRepository
	Config       ConfigRepository
	Resetter     Resetter
}
