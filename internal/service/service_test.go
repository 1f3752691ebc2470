package service

import (
	"path/filepath"
	"testing"

	"minecoin/internal/repository"
	"minecoin/internal/store"

	"github.com/stretchr/testify/require"
)

// runWithBackends runs a test body against both local store adapters so
// every service behavior is verified on the file-backed slot as well as the
// in-memory one.
func runWithBackends(t *testing.T, name string, fn func(t *testing.T, repos *repository.Repositories)) {
	t.Helper()

	t.Run(name+"/memory", func(t *testing.T) {
		fn(t, repository.NewLocalRepositories(store.NewMemoryStore(), repository.NopPublisher{}))
	})
	t.Run(name+"/file", func(t *testing.T) {
		fs, err := store.OpenFileStore(filepath.Join(t.TempDir(), "db.json"))
		require.NoError(t, err)
		fn(t, repository.NewLocalRepositories(fs, repository.NopPublisher{}))
	})
}
