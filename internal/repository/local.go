package repository

import (
	"context"
	"sort"

	"minecoin/internal/model"
	"minecoin/internal/store"
)

// ResettableAdapter is a local store that can be wiped back to defaults.
type ResettableAdapter interface {
	store.Adapter
	Reset() error
}

// NewLocalRepositories builds the repository set over a local aggregate
// store (file or memory). Every operation is a whole-aggregate
// read-modify-write; the adapter self-heals on each load.
func NewLocalRepositories(adapter ResettableAdapter, pub ChangePublisher) *Repositories {
	base := &localBase{adapter: adapter, pub: pub}
	return &Repositories{
		Users:        &localUserRepository{base},
		Transactions: &localTransactionRepository{base},
		News:         &localNewsRepository{base},
		Config:       &localConfigRepository{base},
		Resetter:     &localResetter{base},
	}
}

type localBase struct {
	adapter ResettableAdapter
	pub     ChangePublisher
}

// mutate runs one read-modify-write cycle. The function returns the
// collection to publish a change for, or "" when nothing was written.
func (b *localBase) mutate(fn func(data *model.SiteData) (string, error)) error {
	data, err := b.adapter.LoadAll()
	if err != nil {
		return err
	}
	collection, err := fn(data)
	if err != nil {
		return err
	}
	if collection == "" {
		return nil
	}
	if err := b.adapter.SaveAll(data); err != nil {
		return err
	}
	b.pub.Publish(collection)
	return nil
}

type localUserRepository struct{ *localBase }

func (r *localUserRepository) List(_ context.Context) ([]model.User, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	return data.Users, nil
}

func (r *localUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range data.Users {
		if data.Users[i].ID == id {
			return &data.Users[i], nil
		}
	}
	return nil, nil
}

func (r *localUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range data.Users {
		if data.Users[i].Username == username {
			return &data.Users[i], nil
		}
	}
	return nil, nil
}

func (r *localUserRepository) Insert(_ context.Context, user *model.User) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		data.Users = append(data.Users, *user)
		return UsersCollection, nil
	})
}

func (r *localUserRepository) Replace(_ context.Context, user *model.User) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		for i := range data.Users {
			if data.Users[i].ID == user.ID {
				data.Users[i] = *user
				return UsersCollection, nil
			}
		}
		return "", nil // silent no-op on missing id
	})
}

func (r *localUserRepository) Delete(_ context.Context, id string) (bool, error) {
	deleted := false
	err := r.mutate(func(data *model.SiteData) (string, error) {
		for i := range data.Users {
			if data.Users[i].ID == id {
				data.Users = append(data.Users[:i], data.Users[i+1:]...)
				deleted = true
				return UsersCollection, nil
			}
		}
		return "", nil
	})
	return deleted, err
}

func (r *localUserRepository) DeleteWhereRoleNot(_ context.Context, keep model.Role) (int64, error) {
	var removed int64
	err := r.mutate(func(data *model.SiteData) (string, error) {
		kept := data.Users[:0]
		for _, u := range data.Users {
			if u.Role == keep {
				kept = append(kept, u)
			} else {
				removed++
			}
		}
		if removed == 0 {
			return "", nil
		}
		data.Users = kept
		return UsersCollection, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

type localTransactionRepository struct{ *localBase }

func (r *localTransactionRepository) List(_ context.Context) ([]model.Transaction, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	txs := data.Transactions
	sortByDateDesc(txs)
	return txs, nil
}

func (r *localTransactionRepository) ListByUser(_ context.Context, userID string) ([]model.Transaction, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	var txs []model.Transaction
	for _, tx := range data.Transactions {
		if tx.UserID == userID && !tx.IsDeleted {
			txs = append(txs, tx)
		}
	}
	sortByDateDesc(txs)
	return txs, nil
}

func (r *localTransactionRepository) FindByID(_ context.Context, id string) (*model.Transaction, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range data.Transactions {
		if data.Transactions[i].ID == id {
			return &data.Transactions[i], nil
		}
	}
	return nil, nil
}

func (r *localTransactionRepository) Insert(_ context.Context, tx *model.Transaction) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		data.Transactions = append(data.Transactions, *tx)
		return TransactionsCollection, nil
	})
}

func (r *localTransactionRepository) Replace(_ context.Context, tx *model.Transaction) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		for i := range data.Transactions {
			if data.Transactions[i].ID == tx.ID {
				data.Transactions[i] = *tx
				return TransactionsCollection, nil
			}
		}
		return "", nil
	})
}

func (r *localTransactionRepository) DeleteAll(_ context.Context) (int64, error) {
	var removed int64
	err := r.mutate(func(data *model.SiteData) (string, error) {
		removed = int64(len(data.Transactions))
		if removed == 0 {
			return "", nil
		}
		data.Transactions = []model.Transaction{}
		return TransactionsCollection, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *localTransactionRepository) CountPending(_ context.Context) (int, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, tx := range data.Transactions {
		if tx.Status == model.TxPending && !tx.IsDeleted {
			n++
		}
	}
	return n, nil
}

type localNewsRepository struct{ *localBase }

func (r *localNewsRepository) List(_ context.Context) ([]model.NewsItem, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	items := data.News
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func (r *localNewsRepository) Insert(_ context.Context, item *model.NewsItem) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		data.News = append(data.News, *item)
		return NewsCollection, nil
	})
}

func (r *localNewsRepository) Delete(_ context.Context, id string) (bool, error) {
	deleted := false
	err := r.mutate(func(data *model.SiteData) (string, error) {
		for i := range data.News {
			if data.News[i].ID == id {
				data.News = append(data.News[:i], data.News[i+1:]...)
				deleted = true
				return NewsCollection, nil
			}
		}
		return "", nil
	})
	return deleted, err
}

type localConfigRepository struct{ *localBase }

func (r *localConfigRepository) Get(_ context.Context) (*model.SiteConfig, error) {
	data, err := r.adapter.LoadAll()
	if err != nil {
		return nil, err
	}
	return data.Config, nil
}

func (r *localConfigRepository) Save(_ context.Context, cfg *model.SiteConfig) error {
	return r.mutate(func(data *model.SiteData) (string, error) {
		data.Config = cfg
		return ConfigCollection, nil
	})
}

type localResetter struct{ *localBase }

func (r *localResetter) ResetAll(_ context.Context) error {
	if err := r.adapter.Reset(); err != nil {
		return err
	}
	r.pub.Publish(UsersCollection)
	r.pub.Publish(TransactionsCollection)
	r.pub.Publish(NewsCollection)
	r.pub.Publish(ConfigCollection)
	return nil
}

func sortByDateDesc(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
}
